package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/roamly/roamly/internal/sheet"
	"github.com/roamly/roamly/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 || m.sheetView == nil {
		return "Loading..."
	}

	m.updateHeaderAndFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.renderBody(),
		m.footer.View(),
	)
}

// renderBody layers the map, the sheet at its live position and the open
// input bar.
func (m *Model) renderBody() string {
	body := m.bodyHeight()
	top := m.sheetView.Top()
	kh := m.keyboard.Height()

	return ui.Compose(m.width, body,
		ui.Layer{Content: m.mapView.Render(m.width, body), Y: 0, Height: body},
		ui.Layer{Content: m.sheetView.View(), Y: top, Height: body - top},
		ui.Layer{Content: m.keyboard.View(), Y: body - kh, Height: kh},
	)
}

// updateHeaderAndFooter refreshes the sheet status and conditional bindings
func (m *Model) updateHeaderAndFooter() {
	s := m.sheetView.Sheet()
	m.header.SetSnap(ui.SnapLabel(s))
	m.header.SetMeter(ui.SnapMeter(s))
	m.header.SetState(s.State().String())
	m.footer.SetContext(m.keyboard.Visible(), s.State() == sheet.StateDragging)
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.keyboard.SetWidth(ctx.TerminalWidth)
}
