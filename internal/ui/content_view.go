package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/roamly/roamly/internal/content"
)

// ContentRenderer draws whatever the sheet hosts. The sheet only decides how
// much room it gets.
type ContentRenderer interface {
	Render(width, height int) string
	Update(msg tea.Msg) tea.Cmd
}

// TripContent renders the sample trip in a scrollable viewport.
type TripContent struct {
	sections []content.Section
	viewport viewport.Model
	width    int // Width the content was last laid out for
}

// NewTripContent creates a renderer for the given sections.
func NewTripContent(sections []content.Section) *TripContent {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = ContentWheelDelta

	return &TripContent{
		sections: sections,
		viewport: vp,
	}
}

// Render lays the trip out for width and shows the rows that fit in height.
func (c *TripContent) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width != c.width {
		c.width = width
		c.viewport.SetWidth(width)
		c.viewport.SetContent(c.styledLines(width))
	}
	c.viewport.SetHeight(height)
	return c.viewport.View()
}

// Update forwards scroll input to the viewport.
func (c *TripContent) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return cmd
}

// ScrollTop returns to the first line.
func (c *TripContent) ScrollTop() {
	c.viewport.GotoTop()
}

func (c *TripContent) styledLines(width int) string {
	// One column of padding on each side.
	inner := width - 2
	lines := content.Layout(c.sections, inner)

	var sb strings.Builder
	for i, l := range lines {
		var row string
		switch l.Kind {
		case content.LineHeading:
			row = SheetHeadingStyle.Render(l.Text)
		case content.LineTitle:
			row = SheetTimeStyle.Render(content.PadTime(l.Time)) + SheetTitleStyle.Render(l.Text)
		case content.LineDetail:
			row = SheetDetailStyle.Render(content.PadTime("") + l.Text)
		}
		row = ansi.Truncate(" "+row, width, "")
		sb.WriteString(SheetStyle.Width(width).Render(row))
		if i < len(lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
