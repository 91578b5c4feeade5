package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type mapCell int

const (
	cellLand mapCell = iota
	cellRoad
	cellWater
	cellPin
)

// MapView draws the backdrop the sheet slides over: a few streets, a river
// and some pins. The picture depends only on its size.
type MapView struct {
	pins []mapPin
}

type mapPin struct {
	x, y float64 // Fractions of width and height
}

// NewMapView creates the backdrop.
func NewMapView() *MapView {
	return &MapView{
		pins: []mapPin{
			{0.18, 0.22}, {0.42, 0.35}, {0.71, 0.18},
			{0.63, 0.58}, {0.27, 0.71}, {0.85, 0.80},
		},
	}
}

// Render returns height lines of exactly width columns.
func (m *MapView) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := make([]string, height)
	for y := 0; y < height; y++ {
		lines[y] = m.renderRow(y, width, height)
	}
	return strings.Join(lines, "\n")
}

func (m *MapView) cellAt(x, y, width, height int) mapCell {
	for _, p := range m.pins {
		if x == int(p.x*float64(width)) && y == int(p.y*float64(height)) {
			return cellPin
		}
	}

	// River runs diagonally across the lower half.
	river := height/2 + (x*height)/(3*width)
	if y == river || y == river+1 {
		return cellWater
	}

	if x%12 == 5 || y%5 == 2 {
		return cellRoad
	}
	return cellLand
}

func (m *MapView) renderRow(y, width, height int) string {
	var sb strings.Builder
	var run strings.Builder
	kind := m.cellAt(0, y, width, height)

	flush := func() {
		sb.WriteString(mapStyle(kind).Render(run.String()))
		run.Reset()
	}

	for x := 0; x < width; x++ {
		c := m.cellAt(x, y, width, height)
		if c != kind {
			flush()
			kind = c
		}
		run.WriteString(mapGlyph(c, x, y))
	}
	flush()
	return sb.String()
}

func mapGlyph(c mapCell, x, y int) string {
	switch c {
	case cellRoad:
		if x%12 == 5 {
			return "│"
		}
		return "─"
	case cellWater:
		return "~"
	case cellPin:
		return "●"
	}
	if (x*7+y*13)%23 == 0 {
		return "·"
	}
	return " "
}

func mapStyle(c mapCell) lipgloss.Style {
	switch c {
	case cellRoad:
		return MapRoadStyle
	case cellWater:
		return MapWaterStyle
	case cellPin:
		return MapPinStyle
	}
	return MapLandStyle
}
