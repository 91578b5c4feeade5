package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/roamly/roamly/internal/errors"
	"github.com/roamly/roamly/internal/keys"
	"github.com/roamly/roamly/internal/logger"
	"github.com/roamly/roamly/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.handleResize()

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case ui.SheetFrameMsg:
		if m.sheetView == nil {
			return m, nil
		}
		return m, m.sheetView.Update(msg)

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m, m.routeMouseEvent(msg)
	}

	return m, nil
}

// handleResize applies a new terminal size. The first size creates the
// sheet; later ones are published through the viewport provider.
func (m *Model) handleResize() tea.Cmd {
	m.updateSizes()
	body := m.bodyHeight()

	if m.sheetView == nil {
		if err := m.ensureSheet(body); err != nil {
			logger.Error("App: Failed to create sheet: %v", err)
			return m.flash("Failed to create sheet: "+errors.Message(err), ui.FlashError)
		}
		m.sheetView.SetSize(m.width, body)
		return nil
	}

	m.sheetView.SetSize(m.width, body)
	m.vpHost.SetHeight(ui.GetViewContext().Viewport())
	return m.sheetView.Animate()
}

// handleKeyPress handles all keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		m.Close()
		return m, tea.Quit
	}

	// While the input bar is open it takes every other key.
	if m.keyboard.Visible() {
		return m.handleKeyboardKey(msg)
	}

	if key == "q" {
		m.Close()
		return m, tea.Quit
	}

	if key == "/" {
		return m, m.openKeyboard()
	}

	if key == "t" {
		return m, m.cycleTheme()
	}

	if m.sheetView == nil {
		return m, nil
	}
	s := m.sheetView.Sheet()

	var err error
	if idx, ok := keys.SnapIndex(key); ok {
		err = s.SnapTo(idx)
	} else {
		switch keys.SheetAction(key) {
		case keys.ActionOpen:
			err = s.Step(1)
		case keys.ActionClose:
			err = s.Step(-1)
		case keys.ActionExpand:
			err = s.Expand()
		case keys.ActionHide:
			err = s.Hide()
		case keys.ActionToggle:
			if s.Hidden() {
				err = s.Step(1)
			} else {
				err = s.Hide()
			}
		case keys.ActionScroll:
			return m, m.sheetView.Update(msg)
		default:
			return m, nil
		}
	}

	if err != nil {
		logger.Debug("App: Key %q rejected: %v", key, err)
		return m, m.flashErr(err)
	}
	return m, m.sheetView.Animate()
}

// handleKeyboardKey handles keys while the input bar has focus.
func (m *Model) handleKeyboardKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		return m, m.closeKeyboard()
	case keys.Enter:
		query := m.keyboard.Value()
		cmd := m.closeKeyboard()
		if query == "" {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.flash(fmt.Sprintf("Searching for %q", query), ui.FlashInfo))
	}
	return m, m.keyboard.Update(msg)
}

// openKeyboard shows the input bar and reports its height as the keyboard.
func (m *Model) openKeyboard() tea.Cmd {
	focus := m.keyboard.Open()
	m.kbHost.Show(float64(m.keyboard.Height()))
	if m.sheetView == nil {
		return focus
	}
	return tea.Batch(focus, m.sheetView.Animate())
}

// closeKeyboard hides the input bar and restores the full usable height.
func (m *Model) closeKeyboard() tea.Cmd {
	m.keyboard.Close()
	m.kbHost.Hide()
	if m.sheetView == nil {
		return nil
	}
	return m.sheetView.Animate()
}

// cycleTheme switches to the next built-in theme and persists the choice.
func (m *Model) cycleTheme() tea.Cmd {
	names := ui.ThemeNames()
	current := ui.CurrentThemeName()
	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}

	ui.SetTheme(next)
	m.config.SetTheme(string(next))
	if cmd := m.saveConfigOrFlash(); cmd != nil {
		return cmd
	}
	return m.flash("Theme: "+ui.GetTheme(next).Name, ui.FlashSuccess)
}
