package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/roamly/roamly/internal/errors"
	"github.com/roamly/roamly/internal/logger"
	"github.com/roamly/roamly/internal/ui"
)

// flash shows text in the footer and starts its dismiss timer.
func (m *Model) flash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// flashErr shows err without its operation prefix. Requests the user can
// correct, like an out of range snap index, are warnings; the rest are errors.
func (m *Model) flashErr(err error) tea.Cmd {
	flashType := ui.FlashError
	switch errors.GetKind(err) {
	case errors.KindInvalid, errors.KindConfig:
		flashType = ui.FlashWarning
	}
	return m.flash(errors.Message(err), flashType)
}

// saveConfigOrFlash saves the config and returns an error flash command on failure
func (m *Model) saveConfigOrFlash() tea.Cmd {
	if err := m.config.Save(); err != nil {
		logger.Error("App: Failed to save config: %v", err)
		return m.flash("Failed to save config", ui.FlashError)
	}
	return nil
}
