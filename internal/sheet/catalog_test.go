package sheet

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestNewCatalog_Scenario(t *testing.T) {
	c := NewCatalog([]float64{0.25, 0.5, 0.9}, 800, 0, 40)

	want := []float64{600, 400, 80, 760}
	got := c.Positions()
	if len(got) != len(want) {
		t.Fatalf("Positions() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("Positions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if c.HiddenIndex() != 3 {
		t.Errorf("HiddenIndex() = %d, want 3", c.HiddenIndex())
	}
	if c.Usable() != 800 {
		t.Errorf("Usable() = %v, want 800", c.Usable())
	}
	if c.Clamped() {
		t.Error("Clamped() should be false for a normal layout")
	}
}

func TestNewCatalog_Keyboard(t *testing.T) {
	c := NewCatalog([]float64{0.25, 0.5, 0.9}, 800, 300, 40)

	want := []float64{375, 250, 50, 760}
	for i, w := range want {
		if !approx(c.At(i), w) {
			t.Errorf("At(%d) = %v, want %v", i, c.At(i), w)
		}
	}
	if c.Usable() != 500 {
		t.Errorf("Usable() = %v, want 500", c.Usable())
	}
}

func TestNewCatalog_SortedAndInRange(t *testing.T) {
	configs := [][]float64{
		{1},
		{0.1, 0.2},
		{0.25, 0.5, 0.9},
		{0.05, 0.33, 0.34, 0.75, 1},
		{0.001, 0.999},
	}
	heights := []float64{1, 7.5, 24, 100, 800, 2048}
	keyboards := []float64{0, 3, 300}

	for _, fractions := range configs {
		for _, vh := range heights {
			for _, kb := range keyboards {
				c := NewCatalog(fractions, vh, kb, 2)
				for i := 0; i < len(fractions); i++ {
					p := c.At(i)
					if math.IsNaN(p) || p < 0 || p > c.Usable() {
						t.Errorf("fractions=%v vh=%v kb=%v: position %d = %v outside [0, %v]", fractions, vh, kb, i, p, c.Usable())
					}
					if i > 0 && !(p < c.At(i-1)) {
						t.Errorf("fractions=%v vh=%v kb=%v: positions not strictly sorted at %d: %v", fractions, vh, kb, i, c.Positions())
					}
				}
				if c.At(c.HiddenIndex()) < c.Max()-tolerance || c.At(c.HiddenIndex()) < c.At(0) {
					t.Errorf("fractions=%v vh=%v kb=%v: hidden %v above a visible snap %v", fractions, vh, kb, c.At(c.HiddenIndex()), c.Positions())
				}
			}
		}
	}
}

func TestNewCatalog_Pure(t *testing.T) {
	a := NewCatalog([]float64{0.2, 0.6}, 613, 127, 3)
	b := NewCatalog([]float64{0.2, 0.6}, 613, 127, 3)
	if !a.Equal(b) {
		t.Errorf("identical inputs gave %v and %v", a.Positions(), b.Positions())
	}
	c := NewCatalog([]float64{0.2, 0.6}, 613, 0, 3)
	if a.Equal(c) {
		t.Error("different keyboard heights should give different catalogs")
	}
}

func TestNewCatalog_HiddenClampedBelowSnaps(t *testing.T) {
	// The handle is taller than the viewport so the raw hidden position is negative.
	c := NewCatalog([]float64{0.25, 0.5}, 30, 0, 40)
	hidden := c.At(c.HiddenIndex())
	if hidden < c.At(0) {
		t.Errorf("hidden = %v, must not be above least-open snap %v", hidden, c.At(0))
	}
}

func TestNewCatalog_KeyboardTallerThanViewport(t *testing.T) {
	c := NewCatalog([]float64{0.25, 0.5, 0.9}, 800, 900, 40)
	if !c.Clamped() {
		t.Error("Clamped() should be true when the keyboard covers the viewport")
	}
	if c.Usable() != MinUsableHeight {
		t.Errorf("Usable() = %v, want %v", c.Usable(), float64(MinUsableHeight))
	}
	for i, p := range c.Positions() {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			t.Errorf("position %d = %v, want a finite non-negative value", i, p)
		}
	}
}

func TestCatalog_Nearest(t *testing.T) {
	c := NewCatalog([]float64{0.25, 0.5, 0.9}, 800, 0, 40) // 600 400 80 760

	tests := []struct {
		name      string
		p         float64
		wantIndex int
		wantValue float64
	}{
		{"exact snap", 400, 1, 400},
		{"drag scenario", 350, 1, 400},
		{"near top", 10, 2, 80},
		{"near hidden", 740, 3, 760},
		{"tie between 600 and 400 prefers more open", 500, 1, 400},
		{"tie between 400 and 80 prefers more open", 240, 2, 80},
		{"tie between 600 and 760 prefers more open", 680, 0, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, val := c.Nearest(tt.p)
			if idx != tt.wantIndex || !approx(val, tt.wantValue) {
				t.Errorf("Nearest(%v) = (%d, %v), want (%d, %v)", tt.p, idx, val, tt.wantIndex, tt.wantValue)
			}
		})
	}
}

func TestCatalog_NearestMinimizesDistance(t *testing.T) {
	c := NewCatalog([]float64{0.1, 0.35, 0.6, 0.95}, 731, 113, 5)
	for p := c.Min(); p <= c.Max(); p += 0.37 {
		_, val := c.Nearest(p)
		best := math.Abs(val - p)
		for _, q := range c.Positions() {
			if math.Abs(q-p) < best {
				t.Fatalf("Nearest(%v) = %v but %v is closer", p, val, q)
			}
		}
	}
}

func TestCatalog_Clamp(t *testing.T) {
	c := NewCatalog([]float64{0.25, 0.5, 0.9}, 800, 0, 40)

	if got := c.Clamp(-100); !approx(got, 80) {
		t.Errorf("Clamp(-100) = %v, want 80", got)
	}
	if got := c.Clamp(1000); !approx(got, 760) {
		t.Errorf("Clamp(1000) = %v, want 760", got)
	}
	if got := c.Clamp(350); got != 350 {
		t.Errorf("Clamp(350) = %v, want 350", got)
	}
}

func TestCatalog_Fraction(t *testing.T) {
	c := NewCatalog([]float64{0.25, 0.5}, 100, 0, 1)
	if f, ok := c.Fraction(1); !ok || f != 0.5 {
		t.Errorf("Fraction(1) = (%v, %v), want (0.5, true)", f, ok)
	}
	if _, ok := c.Fraction(c.HiddenIndex()); ok {
		t.Error("hidden index should have no fraction")
	}
}
