package sheet

import (
	"sort"

	"github.com/roamly/roamly/internal/errors"
)

// Engine defaults. Positions are in abstract length units; the terminal host
// passes rows and overrides HandleHeight and DeadZone accordingly.
const (
	DefaultHandleHeight = 40
	DefaultDeadZone     = 5
	DefaultFPS          = 60
	DefaultFrequency    = 7.0
	DefaultDamping      = 0.85

	// MinUsableHeight is substituted when the keyboard covers the whole viewport.
	MinUsableHeight = 1

	// SettleEpsilon is how close position and velocity must get before a settle lands.
	SettleEpsilon = 0.01
)

// Options is the construction-time configuration of a sheet.
// It is immutable once passed to New.
type Options struct {
	// Fractions of usable height left visible at each snap point, each in (0,1].
	Fractions []float64
	// DefaultIndex selects the initial snap point, indexing Fractions as given.
	DefaultIndex int
	// HandleHeight is how much of the sheet stays visible when hidden.
	HandleHeight float64
	// DeadZone is the cumulative pointer travel that must be exceeded before a drag begins.
	DeadZone float64
	// Frequency and Damping shape the settle spring.
	Frequency float64
	Damping   float64
	// FPS is the frame rate the host drives Frame at.
	FPS int
}

// DefaultOptions returns the fallback configuration used when the host's
// configuration is rejected.
func DefaultOptions() Options {
	return Options{
		Fractions:    []float64{0.25, 0.5, 0.9},
		DefaultIndex: 0,
		HandleHeight: DefaultHandleHeight,
		DeadZone:     DefaultDeadZone,
		Frequency:    DefaultFrequency,
		Damping:      DefaultDamping,
		FPS:          DefaultFPS,
	}
}

// Validate reports the first configuration error in o.
func (o Options) Validate() error {
	if len(o.Fractions) == 0 {
		return errors.NoSnapPoints()
	}
	seen := make(map[float64]bool, len(o.Fractions))
	for _, f := range o.Fractions {
		if !(f > 0 && f <= 1) {
			return errors.SnapFractionOutOfRange(f)
		}
		if seen[f] {
			return errors.DuplicateSnapFraction(f)
		}
		seen[f] = true
	}
	if o.DefaultIndex < 0 || o.DefaultIndex >= len(o.Fractions) {
		return errors.DefaultIndexOutOfRange(o.DefaultIndex, len(o.Fractions))
	}
	if o.HandleHeight <= 0 {
		return errors.OptionInvalid("handle height", o.HandleHeight)
	}
	if o.DeadZone < 0 {
		return errors.OptionInvalid("dead zone", o.DeadZone)
	}
	if o.Frequency <= 0 {
		return errors.OptionInvalid("spring frequency", o.Frequency)
	}
	if o.Damping <= 0 {
		return errors.OptionInvalid("spring damping", o.Damping)
	}
	if o.FPS <= 0 {
		return errors.OptionInvalid("fps", float64(o.FPS))
	}
	return nil
}

// normalized returns the fractions sorted ascending and the default index
// remapped onto that order.
func (o Options) normalized() ([]float64, int) {
	fractions := append([]float64(nil), o.Fractions...)
	want := o.Fractions[o.DefaultIndex]
	sort.Float64s(fractions)
	for i, f := range fractions {
		if f == want {
			return fractions, i
		}
	}
	return fractions, 0
}
