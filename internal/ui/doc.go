// Package ui provides the terminal components for roamly.
//
// # Overview
//
// The ui package renders a map with a draggable bottom sheet over it using
// the Bubble Tea framework and Lipgloss styling library. Components follow
// the Model-Update-View pattern established by Bubble Tea.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Map                                                 │
//	│                                                     │
//	│ ━━━━━━━━━━━━━━━━━ Sheet handle ━━━━━━━━━━━━━━━━━━━━ │
//	│ Sheet content                                       │
//	├─────────────────────────────────────────────────────┤
//	│ Keyboard bar (only while open)                      │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The body between header and footer is the sheet's viewport. Row 0 is the
// first body row; the sheet's live position is the body row of its handle.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Application title plus the committed snap and sheet state, drawn
// over a gradient of the primary color.
//
// Footer: Context-aware shortcuts, replaced by flash messages when set.
//
// SheetView: Maps mouse rows to sheet pointer events and runs the frame loop
// while the sheet settles. Frames carry the sheet ID and a generation so
// ticks from an abandoned loop are dropped.
//
// TripContent: The scrollable itinerary shown inside the sheet.
//
// MapView: The backdrop the sheet slides over.
//
// KeyboardBar: A text input that stands in for a soft keyboard. Opening it
// shrinks the usable height the sheet's snap points are computed from.
//
// Compose: Layers rendered blocks onto one cell buffer.
//
// # Styles
//
// All styles are built in styles.go from the active Theme (theme.go).
// SetTheme regenerates them.
package ui
