package sheet

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/roamly/roamly/internal/errors"
	"github.com/roamly/roamly/internal/host"
	"github.com/roamly/roamly/internal/logger"
)

// Sheet is a draggable panel that rests on one of a fixed set of snap points.
//
// A Sheet is not safe for concurrent use. Every method must be called from
// the single goroutine that owns the UI event loop.
type Sheet struct {
	id        string
	opts      Options
	fractions []float64

	catalog   Catalog
	committed int
	state     State

	tracker *Tracker
	anim    *Animator

	scope    host.Scope
	attached bool
	closed   bool

	onChange []func(Change)
	log      *slog.Logger
}

// New validates opts and creates a sheet for a viewport of the given height,
// resting on the default snap point with no keyboard.
func New(opts Options, viewport float64) (*Sheet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	fractions, def := opts.normalized()
	s := &Sheet{
		id:        uuid.NewString(),
		opts:      opts,
		fractions: fractions,
		committed: def,
		tracker:   NewTracker(opts.DeadZone),
	}
	s.log = logger.WithSheet(s.id)
	s.catalog = NewCatalog(fractions, viewport, 0, opts.HandleHeight)
	s.anim = NewAnimator(s.catalog.At(def), opts.FPS, opts.Frequency, opts.Damping)

	s.log.Debug("Sheet created",
		"fractions", fractions,
		"defaultIndex", def,
		"viewport", viewport,
		"positions", s.catalog.positions,
	)
	return s, nil
}

// Attach subscribes the sheet to keyboard and viewport events and adopts the
// viewport's current height. Either provider may be nil. The subscriptions
// are released by Close, or immediately if Attach fails.
func (s *Sheet) Attach(kb host.KeyboardProvider, vp host.ViewportProvider) (err error) {
	if s.closed {
		return errors.SheetClosed("sheet.Attach")
	}
	if s.attached {
		return errors.AlreadyAttached()
	}

	defer func() {
		if err != nil {
			s.scope.Release()
			s.scope = host.Scope{}
		}
	}()

	if vp != nil {
		s.Resize(vp.ViewportHeight())
		s.scope.Acquire(vp.SubscribeResize(s.Resize))
	}
	if kb != nil {
		s.scope.Acquire(kb.SubscribeKeyboard(func(ev host.KeyboardEvent) {
			if ev.Visible {
				s.KeyboardShown(ev.Height)
			} else {
				s.KeyboardHidden()
			}
		}))
	}

	s.attached = true
	s.log.Debug("Sheet attached", "listeners", s.scope.Held())
	return nil
}

// Close releases every listener, stops any animation and makes all later
// events no-ops. It is safe to call more than once.
func (s *Sheet) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.scope.Release()
	s.tracker.Cancel()
	s.anim.Stop()
	s.state = StateIdle
	s.onChange = nil
	s.log.Debug("Sheet closed")
}

// OnChange registers fn to run whenever the committed snap point changes.
func (s *Sheet) OnChange(fn func(Change)) {
	if s.closed || fn == nil {
		return
	}
	s.onChange = append(s.onChange, fn)
}

// Accessors

// ID identifies this sheet instance in logs and frame messages.
func (s *Sheet) ID() string { return s.id }

// State is the current gesture/animation state.
func (s *Sheet) State() State { return s.state }

// Catalog is the current set of snap positions.
func (s *Sheet) Catalog() Catalog { return s.catalog }

// Fractions are the snap fractions in index order.
func (s *Sheet) Fractions() []float64 { return append([]float64(nil), s.fractions...) }

// SnapCount is the number of visible snap points, excluding hidden.
func (s *Sheet) SnapCount() int { return len(s.fractions) }

// CommittedIndex is the snap point the sheet rests on or is settling toward.
func (s *Sheet) CommittedIndex() int { return s.committed }

// CommittedPosition is the absolute position of the committed snap point.
func (s *Sheet) CommittedPosition() float64 { return s.catalog.At(s.committed) }

// LivePosition is the position to render this frame.
func (s *Sheet) LivePosition() float64 { return s.anim.Position() }

// ContentHeight is the height available to the content at the live position.
func (s *Sheet) ContentHeight() float64 { return ContentHeight(s.catalog, s.anim.Position()) }

// Hidden reports whether the committed snap point is the hidden one.
func (s *Sheet) Hidden() bool { return s.committed == s.catalog.HiddenIndex() }

// Animating reports whether frames are needed.
func (s *Sheet) Animating() bool { return s.state == StateSettling }

// Closed reports whether Close has run.
func (s *Sheet) Closed() bool { return s.closed }

// Pointer input

// PointerDown starts a gesture at vertical coordinate y.
func (s *Sheet) PointerDown(y float64) {
	if s.closed {
		return
	}
	if s.state == StateDragging {
		// The previous release never arrived; settle that drag where it is.
		s.finishDrag(s.anim.Position())
	}
	s.tracker.Press(y)
}

// PointerMove follows the pointer. Nothing happens until the gesture leaves
// the dead zone; from then on the live position tracks the pointer directly.
func (s *Sheet) PointerMove(y float64) {
	if s.closed {
		return
	}
	delta, begin := s.tracker.Move(y)
	if begin {
		s.begin()
	}
	if s.state != StateDragging {
		return
	}
	s.anim.Set(s.catalog.Clamp(s.tracker.Candidate(delta)))
}

// PointerUp ends the gesture and settles on the nearest snap point.
// A tap changes nothing.
func (s *Sheet) PointerUp(y float64) {
	if s.closed {
		return
	}
	delta, drag := s.tracker.Release(y)
	if !drag {
		return
	}
	if s.state != StateDragging {
		s.begin()
	}
	s.finishDrag(s.tracker.Candidate(delta))
}

// PointerCancel abandons the gesture and settles back on the committed snap point.
func (s *Sheet) PointerCancel() {
	if s.closed || !s.tracker.Pressed() {
		return
	}
	s.tracker.Cancel()
	if s.state == StateDragging {
		s.settle()
	}
}

// begin takes over the live position for a drag. A settle in flight is
// cancelled and the drag continues from where it had got to.
func (s *Sheet) begin() {
	origin := s.catalog.At(s.committed)
	if s.anim.Settling() {
		origin = s.anim.Position()
	}
	s.anim.Stop()
	s.tracker.Begin(origin)
	s.setState(StateDragging)
}

func (s *Sheet) finishDrag(candidate float64) {
	live := s.catalog.Clamp(candidate)
	idx, _ := s.catalog.Nearest(live)
	s.anim.Set(live)
	s.log.Debug("Drag released", "candidate", candidate, "live", live, "index", idx)
	s.commit(idx)
	s.settle()
}

// Programmatic control

// SnapTo commits snap index i and settles there. Index SnapCount() is hidden.
func (s *Sheet) SnapTo(i int) error {
	if s.closed {
		return errors.SheetClosed("sheet.SnapTo")
	}
	if i < 0 || i >= s.catalog.Len() {
		return errors.SnapIndexOutOfRange(i, s.catalog.Len())
	}
	if s.state == StateDragging {
		return errors.GestureInProgress("sheet.SnapTo")
	}
	s.commit(i)
	s.settle()
	return nil
}

// Hide collapses the sheet to its handle.
func (s *Sheet) Hide() error {
	return s.SnapTo(s.catalog.HiddenIndex())
}

// Expand opens the sheet to its most open snap point.
func (s *Sheet) Expand() error {
	return s.SnapTo(len(s.fractions) - 1)
}

// Step moves delta snap points more open (positive) or more closed
// (negative), stopping at the ends. Hidden is the most closed.
func (s *Sheet) Step(delta int) error {
	rank := s.committed
	if s.Hidden() {
		rank = -1
	}
	rank += delta
	if rank < -1 {
		rank = -1
	}
	if rank > len(s.fractions)-1 {
		rank = len(s.fractions) - 1
	}
	if rank == -1 {
		return s.Hide()
	}
	return s.SnapTo(rank)
}

// Layout input

// KeyboardShown shrinks the usable height by h.
func (s *Sheet) KeyboardShown(h float64) {
	s.relayout(s.catalog.Viewport(), h)
}

// KeyboardHidden restores the full usable height.
func (s *Sheet) KeyboardHidden() {
	s.relayout(s.catalog.Viewport(), 0)
}

// Resize adopts a new viewport height.
func (s *Sheet) Resize(viewport float64) {
	s.relayout(viewport, s.catalog.Keyboard())
}

// relayout rebuilds the catalog. A drag in progress keeps its live position
// and clamps against the new catalog on its next move; otherwise the sheet
// re-homes to the same snap index in the new catalog.
func (s *Sheet) relayout(viewport, keyboard float64) {
	if s.closed {
		return
	}
	if viewport == s.catalog.viewport && keyboard == s.catalog.keyboard {
		return
	}
	next := NewCatalog(s.fractions, viewport, keyboard, s.opts.HandleHeight)
	s.catalog = next

	if next.Clamped() {
		s.log.Warn("Usable height clamped",
			"viewport", viewport,
			"keyboard", keyboard,
			"usable", next.Usable(),
		)
	}
	s.log.Debug("Catalog rebuilt",
		"viewport", viewport,
		"keyboard", keyboard,
		"positions", next.positions,
		"state", s.state.String(),
	)

	if s.state == StateDragging {
		return
	}
	s.settle()
}

// Frames

// Frame advances a settle by one frame. It returns true while more frames
// are needed.
func (s *Sheet) Frame() bool {
	if s.closed || s.state != StateSettling {
		return false
	}
	if s.anim.Step() {
		return true
	}
	s.setState(StateIdle)
	return false
}

func (s *Sheet) settle() {
	if s.anim.SettleTo(s.catalog.At(s.committed)) {
		s.setState(StateSettling)
	} else {
		s.setState(StateIdle)
	}
}

func (s *Sheet) commit(i int) {
	if i == s.committed {
		return
	}
	prev := s.committed
	s.committed = i
	s.log.Debug("Snap committed", "from", prev, "to", i, "position", s.catalog.At(i))

	ch := Change{Index: i, Hidden: s.Hidden(), Position: s.catalog.At(i)}
	for _, fn := range s.onChange {
		fn(ch)
	}
}

// setState transitions to a new state with logging
func (s *Sheet) setState(next State) {
	if s.state != next {
		s.log.Debug("State transition", "from", s.state.String(), "to", next.String())
		s.state = next
	}
}
