package sheet

import "math"

// Tracker turns a press/move/release pointer stream into drag deltas.
// It knows nothing about positions beyond the origin a drag started from.
type Tracker struct {
	deadZone float64

	pressed bool
	began   bool
	startY  float64
	delta   float64
	origin  float64
}

// NewTracker creates a tracker that ignores travel up to deadZone.
func NewTracker(deadZone float64) *Tracker {
	return &Tracker{deadZone: deadZone}
}

// Press records the start of a pointer gesture.
func (t *Tracker) Press(y float64) {
	t.pressed = true
	t.began = false
	t.startY = y
	t.delta = 0
}

// Move updates the cumulative delta. begin is true on the one move that
// first carries the gesture past the dead zone.
func (t *Tracker) Move(y float64) (delta float64, begin bool) {
	if !t.pressed {
		return 0, false
	}
	t.delta = y - t.startY
	if !t.began && math.Abs(t.delta) > t.deadZone {
		t.began = true
		return t.delta, true
	}
	return t.delta, false
}

// Release ends the gesture. drag reports whether it counts as a drag, which
// includes a release that lands past the dead zone with no move in between.
// A release that never left the dead zone is a tap.
func (t *Tracker) Release(y float64) (delta float64, drag bool) {
	if !t.pressed {
		return 0, false
	}
	delta = y - t.startY
	drag = t.began || math.Abs(delta) > t.deadZone
	t.Cancel()
	return delta, drag
}

// Cancel forgets the gesture without producing a release.
func (t *Tracker) Cancel() {
	t.pressed = false
	t.began = false
	t.delta = 0
}

// Begin fixes the position the drag is measured from.
func (t *Tracker) Begin(origin float64) { t.origin = origin }

// Candidate is the unclamped position for a cumulative delta.
func (t *Tracker) Candidate(delta float64) float64 { return t.origin + delta }

// Pressed reports whether a gesture is open.
func (t *Tracker) Pressed() bool { return t.pressed }

// Dragging reports whether the open gesture has left the dead zone.
func (t *Tracker) Dragging() bool { return t.pressed && t.began }
