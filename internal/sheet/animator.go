package sheet

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Animator owns the live position. It either pins the position to a value
// (direct mode) or springs it toward a target one frame at a time (settle).
type Animator struct {
	spring   harmonica.Spring
	pos      float64
	vel      float64
	target   float64
	settling bool
}

// NewAnimator creates an animator resting at pos.
func NewAnimator(pos float64, fps int, frequency, damping float64) *Animator {
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		pos:    pos,
		target: pos,
	}
}

// Position is the live position for the current frame.
func (a *Animator) Position() float64 { return a.pos }

// Target is where the current settle is heading, or the pinned position.
func (a *Animator) Target() float64 { return a.target }

// Settling reports whether a settle is in flight.
func (a *Animator) Settling() bool { return a.settling }

// Set pins the live position with no easing and cancels any settle.
func (a *Animator) Set(p float64) {
	a.pos = p
	a.vel = 0
	a.target = p
	a.settling = false
}

// SettleTo starts (or retargets) a settle toward p, keeping current velocity.
// It returns false when the position is already at rest on p.
func (a *Animator) SettleTo(p float64) bool {
	a.target = p
	if a.atRest() {
		a.pos = p
		a.vel = 0
		a.settling = false
		return false
	}
	a.settling = true
	return true
}

// Stop freezes the position where it is and drops the settle.
func (a *Animator) Stop() {
	a.vel = 0
	a.target = a.pos
	a.settling = false
}

// Step advances the settle by one frame and reports whether it is still running.
func (a *Animator) Step() bool {
	if !a.settling {
		return false
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if a.atRest() {
		a.pos = a.target
		a.vel = 0
		a.settling = false
	}
	return a.settling
}

func (a *Animator) atRest() bool {
	return math.Abs(a.pos-a.target) < SettleEpsilon && math.Abs(a.vel) < SettleEpsilon
}
