// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// MinTerminalWidth and MinTerminalHeight are the smallest sizes laid out;
	// anything smaller is treated as this size.
	MinTerminalWidth  = 20
	MinTerminalHeight = 6

	// HandleRows is the height of the sheet's drag handle
	HandleRows = 1

	// ContentWheelDelta is how many lines one wheel notch scrolls the sheet content
	ContentWheelDelta = 3
)

// Flash message timing
const (
	// DefaultFlashDuration is how long a flash message stays in the footer
	DefaultFlashDuration = 4 * time.Second

	// FlashTickInterval is how often expired flash messages are checked
	FlashTickInterval = time.Second
)
