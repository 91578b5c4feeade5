package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyboardBarRows is the height of the open input bar.
const KeyboardBarRows = 3

// KeyboardBar is the on-screen input that plays the part of a soft
// keyboard: while it is open it covers the bottom of the body.
type KeyboardBar struct {
	input   textinput.Model
	width   int
	rows    int
	visible bool
}

// NewKeyboardBar creates a closed input bar that is rows tall when open.
func NewKeyboardBar(rows int) *KeyboardBar {
	if rows < 1 {
		rows = KeyboardBarRows
	}
	ti := textinput.New()
	ti.Placeholder = "Search places..."
	ti.CharLimit = 120
	ti.Prompt = "/ "

	return &KeyboardBar{input: ti, rows: rows}
}

// SetWidth sets the bar width.
func (k *KeyboardBar) SetWidth(width int) {
	k.width = width
	k.input.SetWidth(max(width-6, 1))
}

// Open shows and focuses the bar.
func (k *KeyboardBar) Open() tea.Cmd {
	k.visible = true
	return k.input.Focus()
}

// Close hides the bar and clears its text.
func (k *KeyboardBar) Close() {
	k.visible = false
	k.input.Blur()
	k.input.Reset()
}

// Visible reports whether the bar is open.
func (k *KeyboardBar) Visible() bool { return k.visible }

// Height is the number of body rows the bar covers.
func (k *KeyboardBar) Height() int {
	if !k.visible {
		return 0
	}
	return k.rows
}

// Value returns the typed text.
func (k *KeyboardBar) Value() string { return k.input.Value() }

// Update passes input to the text field.
func (k *KeyboardBar) Update(msg tea.Msg) tea.Cmd {
	if !k.visible {
		return nil
	}
	var cmd tea.Cmd
	k.input, cmd = k.input.Update(msg)
	return cmd
}

// View renders the bar, or nothing when closed.
func (k *KeyboardBar) View() string {
	if !k.visible || k.width <= 0 {
		return ""
	}
	title := KeyboardTitleStyle.Render("keyboard")
	field := ansi.Truncate(k.input.View(), max(k.width-2, 0), "")
	rendered := KeyboardBarStyle.Width(k.width).Render(title + "\n" + field)

	// Pin the block to exactly rows lines so the sheet above lines up.
	lines := strings.Split(rendered, "\n")
	blank := strings.Repeat(" ", k.width)
	for len(lines) < k.rows {
		lines = append(lines, blank)
	}
	lines = lines[:k.rows]
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, k.width, "")
	}
	return strings.Join(lines, "\n")
}
