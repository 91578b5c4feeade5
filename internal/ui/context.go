package ui

import (
	"sync"

	"github.com/roamly/roamly/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight int
	FooterHeight int
	BodyHeight   int // Rows between header and footer; the sheet's viewport

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.ComponentLogger("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// It is called from the main event loop when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.BodyHeight = height - v.HeaderHeight - v.FooterHeight

	logger.ComponentLogger("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"bodyHeight", v.BodyHeight,
	)
}

// BodyTop is the terminal row where the body starts.
func (v *ViewContext) BodyTop() int {
	return v.HeaderHeight
}

// BodyRow converts a terminal row into a body row. Rows above the body come
// back negative.
func (v *ViewContext) BodyRow(terminalY int) int {
	return terminalY - v.HeaderHeight
}

// Viewport is the sheet's viewport height: the body rows.
func (v *ViewContext) Viewport() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return float64(v.BodyHeight)
}
