package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// FlashMessage is a transient message shown in place of the key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically so expired flash messages get cleared
type FlashTickMsg time.Time

// FlashTick returns a command that sends a FlashTickMsg after FlashTickInterval
func FlashTick() tea.Cmd {
	return tea.Tick(FlashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	keyboardOpen bool // Whether the input bar has focus
	dragging     bool // Whether a drag gesture is in progress
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "j/k", Desc: "close/open"},
			{Key: "1-9", Desc: "snap"},
			{Key: "g", Desc: "expand"},
			{Key: "h", Desc: "hide"},
			{Key: "/", Desc: "search"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "t", Desc: "theme"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(keyboardOpen, dragging bool) {
	f.keyboardOpen = keyboardOpen
	f.dragging = dragging
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the showing flash message, or nil.
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearIfExpired removes the flash message if it has expired.
// Returns true if a message was cleared.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return f.renderFlash()
	}

	bindings := f.bindings
	switch {
	case f.keyboardOpen:
		bindings = []KeyBinding{
			{Key: "enter", Desc: "submit"},
			{Key: "esc", Desc: "close keyboard"},
		}
	case f.dragging:
		bindings = []KeyBinding{
			{Key: "release", Desc: "snap to nearest"},
		}
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	content = ansi.Truncate(content, max(f.width-2, 0), "…")
	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	var icon string
	var color = ColorInfo
	switch f.flashMessage.Type {
	case FlashError:
		icon, color = "✕", ColorError
	case FlashWarning:
		icon, color = "⚠", ColorWarning
	case FlashInfo:
		icon, color = "ℹ", ColorInfo
	case FlashSuccess:
		icon, color = "✓", ColorSuccess
	}

	text := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " " + f.flashMessage.Text)
	text = ansi.Truncate(text, max(f.width-2, 0), "…")
	return FooterStyle.Width(f.width).Render(text)
}
