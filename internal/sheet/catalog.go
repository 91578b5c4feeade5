package sheet

import "math"

// Catalog is the set of absolute resting positions for one layout.
// Positions are distances from the top of the viewport: smaller is more open.
// A Catalog is a value; layout changes build a new one.
type Catalog struct {
	fractions []float64
	viewport  float64
	keyboard  float64
	handle    float64
	usable    float64
	clamped   bool
	positions []float64
}

// NewCatalog computes the snap positions for fractions (ascending) in a
// viewport partly covered by a keyboard. The hidden position is appended last.
func NewCatalog(fractions []float64, viewport, keyboard, handle float64) Catalog {
	c := Catalog{
		fractions: fractions,
		viewport:  viewport,
		keyboard:  keyboard,
		handle:    handle,
	}

	if c.viewport < MinUsableHeight {
		c.viewport = MinUsableHeight
		c.clamped = true
	}
	c.usable = c.viewport - keyboard
	if c.usable < MinUsableHeight {
		c.usable = MinUsableHeight
		c.clamped = true
	}

	c.positions = make([]float64, 0, len(fractions)+1)
	leastOpen := 0.0
	for _, f := range fractions {
		p := c.usable - c.usable*f
		c.positions = append(c.positions, p)
		leastOpen = math.Max(leastOpen, p)
	}

	// Hidden must never sit above a visible snap point.
	hidden := c.viewport - handle
	if hidden < leastOpen {
		hidden = leastOpen
	}
	c.positions = append(c.positions, hidden)
	return c
}

// Positions returns a copy of all positions, hidden last.
func (c Catalog) Positions() []float64 {
	return append([]float64(nil), c.positions...)
}

// Len is the number of positions including hidden.
func (c Catalog) Len() int { return len(c.positions) }

// At returns the position at index i.
func (c Catalog) At(i int) float64 { return c.positions[i] }

// HiddenIndex is the index of the hidden position.
func (c Catalog) HiddenIndex() int { return len(c.positions) - 1 }

// Fraction returns the configured fraction for snap index i; hidden has none.
func (c Catalog) Fraction(i int) (float64, bool) {
	if i < 0 || i >= len(c.fractions) {
		return 0, false
	}
	return c.fractions[i], true
}

// Usable is the viewport height minus the keyboard, after clamping.
func (c Catalog) Usable() float64 { return c.usable }

// Viewport is the viewport height the catalog was built for.
func (c Catalog) Viewport() float64 { return c.viewport }

// Keyboard is the keyboard height the catalog was built for.
func (c Catalog) Keyboard() float64 { return c.keyboard }

// Clamped reports whether the layout was degenerate and had to be clamped.
func (c Catalog) Clamped() bool { return c.clamped }

// Min is the most open position.
func (c Catalog) Min() float64 {
	m := c.positions[0]
	for _, p := range c.positions[1:] {
		m = math.Min(m, p)
	}
	return m
}

// Max is the most closed position, normally the hidden one.
func (c Catalog) Max() float64 {
	m := c.positions[0]
	for _, p := range c.positions[1:] {
		m = math.Max(m, p)
	}
	return m
}

// Clamp restricts p to [Min, Max].
func (c Catalog) Clamp(p float64) float64 {
	return math.Max(c.Min(), math.Min(c.Max(), p))
}

// Nearest returns the index and value of the position closest to p.
// An exact tie goes to the more open position.
func (c Catalog) Nearest(p float64) (int, float64) {
	best := 0
	bestDist := math.Abs(c.positions[0] - p)
	for i := 1; i < len(c.positions); i++ {
		d := math.Abs(c.positions[i] - p)
		if d < bestDist || (d == bestDist && c.positions[i] < c.positions[best]) {
			best, bestDist = i, d
		}
	}
	return best, c.positions[best]
}

// Equal reports whether two catalogs have identical positions.
func (c Catalog) Equal(other Catalog) bool {
	if len(c.positions) != len(other.positions) {
		return false
	}
	for i := range c.positions {
		if c.positions[i] != other.positions[i] {
			return false
		}
	}
	return true
}
