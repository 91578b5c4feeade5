package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/roamly/roamly/internal/config"
	"github.com/roamly/roamly/internal/content"
	"github.com/roamly/roamly/internal/host"
	"github.com/roamly/roamly/internal/logger"
	"github.com/roamly/roamly/internal/sheet"
	"github.com/roamly/roamly/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	options sheet.Options

	header   *ui.Header
	footer   *ui.Footer
	mapView  *ui.MapView
	keyboard *ui.KeyboardBar
	content  *ui.TripContent

	// sheetView is created on the first WindowSizeMsg, once the body height
	// is known, so the sheet starts at rest on its default snap point.
	sheetView *ui.SheetView

	// Host providers the sheet subscribes to.
	kbHost *host.Keyboard
	vpHost *host.Viewport

	width  int
	height int

	// startupWarning is flashed by Init when the configured options were rejected.
	startupWarning string
}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:   cfg,
		version:  version,
		options:  cfg.SheetOptions(),
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		mapView:  ui.NewMapView(),
		keyboard: ui.NewKeyboardBar(cfg.GetKeyboardRows()),
		content:  ui.NewTripContent(content.Trip()),
		kbHost:   host.NewKeyboard(),
		vpHost:   host.NewViewport(0),
	}

	if err := cfg.Validate(); err != nil {
		logger.Warn("App: Invalid config, using defaults: %v", err)
		m.startupWarning = fmt.Sprintf("Invalid config, using defaults: %v", err)
		if m.options.Validate() != nil {
			m.options = config.Default().SheetOptions()
		}
	}

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	if m.startupWarning != "" {
		return m.flash(m.startupWarning, ui.FlashWarning)
	}
	return nil
}

// Sheet returns the hosted sheet, or nil before the first window size.
func (m *Model) Sheet() *sheet.Sheet {
	if m.sheetView == nil {
		return nil
	}
	return m.sheetView.Sheet()
}

// bodyHeight is the sheet's viewport: the rows between header and footer.
func (m *Model) bodyHeight() int {
	return ui.GetViewContext().BodyHeight
}

// ensureSheet creates and attaches the sheet the first time the body size is known.
func (m *Model) ensureSheet(body int) error {
	if m.sheetView != nil {
		return nil
	}

	viewport := ui.GetViewContext().Viewport()
	m.vpHost.SetHeight(viewport)
	s, err := sheet.New(m.options, viewport)
	if err != nil {
		return err
	}
	if err := s.Attach(m.kbHost, m.vpHost); err != nil {
		s.Close()
		return err
	}
	if m.kbHost.Visible() {
		s.KeyboardShown(m.kbHost.Height())
	}
	s.OnChange(m.onSheetChange)

	m.sheetView = ui.NewSheetView(s, m.content, m.options.FPS)
	m.header.SetSnap(ui.SnapLabel(s))
	m.header.SetMeter(ui.SnapMeter(s))
	logger.Info("App: Sheet %s created, body=%d, fractions=%v", s.ID(), body, s.Fractions())
	return nil
}

// onSheetChange runs when the committed snap point changes.
func (m *Model) onSheetChange(ch sheet.Change) {
	s := m.sheetView.Sheet()
	m.header.SetSnap(ui.SnapLabel(s))
	m.header.SetMeter(ui.SnapMeter(s))
	logger.Debug("App: Snap changed to %d (hidden=%v, position=%.2f)", ch.Index, ch.Hidden, ch.Position)
}

// Close releases the sheet and stops its frame loop.
func (m *Model) Close() {
	if m.sheetView == nil {
		return
	}
	m.sheetView.Stop()
	m.sheetView.Sheet().Close()
}
