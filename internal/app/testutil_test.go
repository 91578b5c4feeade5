package app

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/roamly/roamly/internal/config"
	"github.com/roamly/roamly/internal/keys"
	"github.com/roamly/roamly/internal/ui"
)

// testConfig creates a default config bound to a temp file.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SetPath(filepath.Join(t.TempDir(), "config.yaml"))
	return cfg
}

// testModel creates a test Model with the given config.
func testModel(t *testing.T, cfg *config.Config) *Model {
	t.Helper()
	m := New(cfg, "0.0.0-test")
	t.Cleanup(func() {
		m.Close()
		ui.SetTheme(ui.DefaultTheme)
	})
	return m
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, cfg *config.Config, width, height int) *Model {
	t.Helper()
	m := testModel(t, cfg)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// runFrames delivers frame messages until the sheet's frame loop stops.
func runFrames(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; m.sheetView.Ticking(); i++ {
		if i > 2000 {
			t.Fatal("frame loop did not settle")
		}
		m.Update(ui.SheetFrameMsg{SheetID: m.Sheet().ID(), Generation: m.sheetView.Generation()})
	}
}
