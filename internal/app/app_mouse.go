package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/roamly/roamly/internal/ui"
)

// routeMouseEvent moves mouse events into body coordinates and hands them to
// the sheet. Presses and wheel notches on the open input bar are dropped so
// they never start a gesture; motion and release always pass through so a
// drag that wanders over the bar still ends.
func (m *Model) routeMouseEvent(msg tea.Msg) tea.Cmd {
	if m.sheetView == nil {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		mouse := m.toBody(msg.Mouse())
		if m.overKeyboard(mouse.Y) {
			return nil
		}
		return m.sheetView.Update(tea.MouseClickMsg{X: mouse.X, Y: mouse.Y, Button: mouse.Button, Mod: mouse.Mod})

	case tea.MouseMotionMsg:
		mouse := m.toBody(msg.Mouse())
		return m.sheetView.Update(tea.MouseMotionMsg{X: mouse.X, Y: mouse.Y, Button: mouse.Button, Mod: mouse.Mod})

	case tea.MouseReleaseMsg:
		mouse := m.toBody(msg.Mouse())
		return m.sheetView.Update(tea.MouseReleaseMsg{X: mouse.X, Y: mouse.Y, Button: mouse.Button, Mod: mouse.Mod})

	case tea.MouseWheelMsg:
		mouse := m.toBody(msg.Mouse())
		if m.overKeyboard(mouse.Y) {
			return nil
		}
		return m.sheetView.Update(tea.MouseWheelMsg{X: mouse.X, Y: mouse.Y, Button: mouse.Button, Mod: mouse.Mod})
	}
	return nil
}

// toBody converts terminal coordinates to body coordinates.
func (m *Model) toBody(mouse tea.Mouse) tea.Mouse {
	mouse.Y = ui.GetViewContext().BodyRow(mouse.Y)
	return mouse
}

// overKeyboard reports whether body row y is covered by the open input bar.
func (m *Model) overKeyboard(y int) bool {
	kh := m.keyboard.Height()
	return kh > 0 && y >= m.bodyHeight()-kh
}
