package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

const headerTitle = " roamly"

// Header is the top bar: the title on the left, the sheet status on the right.
type Header struct {
	width int
	snap  string // committed snap label, e.g. "50%" or "hidden"
	state string // sheet state, drawn muted

	// Snap meter: one dot per visible snap point, the committed one filled.
	// meterIndex is -1 while the sheet is hidden.
	meterCount int
	meterIndex int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{meterIndex: -1}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSnap sets the committed snap label to display
func (h *Header) SetSnap(label string) {
	h.snap = label
}

// SetState sets the sheet state to display
func (h *Header) SetState(state string) {
	h.state = state
}

// SetMeter sets the number of snap points and the committed one, or -1 when
// hidden.
func (h *Header) SetMeter(count, index int) {
	h.meterCount = count
	h.meterIndex = index
}

// meter renders the snap dots, least open first.
func (h *Header) meter() string {
	if h.meterCount <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < h.meterCount; i++ {
		if i == h.meterIndex {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	return b.String()
}

// status is the right hand text, with the byte offset where the muted state
// starts (-1 without a state).
func (h *Header) status() (string, int) {
	if h.snap == "" {
		return "", -1
	}
	s := h.snap
	if m := h.meter(); m != "" {
		s = m + " " + s
	}
	muted := -1
	if h.state != "" {
		s += " "
		muted = len(s)
		s += "· " + h.state
	}
	return s + " ", muted
}

// View renders the header
func (h *Header) View() string {
	right, mutedAt := h.status()

	pad := h.width - runewidth.StringWidth(headerTitle) - runewidth.StringWidth(right)
	if pad < 0 {
		pad = 0
	}
	line := headerTitle + strings.Repeat(" ", pad) + right
	line = runewidth.Truncate(line, h.width, "")

	if mutedAt >= 0 {
		mutedAt += len(headerTitle) + pad
	}
	return h.render(line, mutedAt)
}

// gradient returns n background colors fading from the theme's primary
// color into its background.
func gradient(n int) []colorful.Color {
	theme := CurrentTheme()
	from, err := colorful.Hex(theme.Primary)
	if err != nil {
		from = colorful.Color{}
	}
	to, err := colorful.Hex(theme.Bg)
	if err != nil {
		to = colorful.Color{}
	}

	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = from.BlendLab(to, float64(i)/float64(n)).Clamped()
	}
	return out
}

// render draws line over the gradient. Text from byte offset mutedAt on is
// drawn muted; the title is bold.
func (h *Header) render(line string, mutedAt int) string {
	if line == "" {
		return ""
	}

	theme := CurrentTheme()
	text := lipgloss.Color(theme.Text)
	muted := lipgloss.Color(theme.TextMuted)

	runes := []rune(line)
	bgs := gradient(len(runes))
	titleRunes := len([]rune(headerTitle))

	var b strings.Builder
	offset := 0
	for i, r := range runes {
		style := lipgloss.NewStyle().
			Background(bgs[i]).
			Foreground(text).
			Bold(i < titleRunes)
		if mutedAt >= 0 && offset >= mutedAt {
			style = style.Foreground(muted)
		}
		b.WriteString(style.Render(string(r)))
		offset += len(string(r))
	}
	return b.String()
}
