package host

import "github.com/roamly/roamly/internal/logger"

type listener[T any] struct {
	id int
	fn func(T)
}

// emitter delivers values to listeners in subscription order.
type emitter[T any] struct {
	next      int
	listeners []listener[T]
}

func (e *emitter[T]) subscribe(fn func(T)) func() {
	id := e.next
	e.next++
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})

	released := false
	return func() {
		if released {
			return
		}
		released = true
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

func (e *emitter[T]) emit(v T) {
	// Copy so a listener may release itself while being called.
	snapshot := append([]listener[T](nil), e.listeners...)
	for _, l := range snapshot {
		l.fn(v)
	}
}

func (e *emitter[T]) count() int { return len(e.listeners) }

// Keyboard is an in-process KeyboardProvider. The terminal host drives it
// from its input bar; tests drive it directly.
type Keyboard struct {
	visible bool
	height  float64
	events  emitter[KeyboardEvent]
}

// NewKeyboard creates a hidden keyboard.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// SubscribeKeyboard implements KeyboardProvider.
func (k *Keyboard) SubscribeKeyboard(fn func(KeyboardEvent)) func() {
	return k.events.subscribe(fn)
}

// Show reports the keyboard as visible at height h. Repeating the same
// height is not re-emitted.
func (k *Keyboard) Show(h float64) {
	if k.visible && k.height == h {
		return
	}
	k.visible = true
	k.height = h
	logger.ComponentLogger("host").Debug("Keyboard shown", "height", h, "listeners", k.events.count())
	k.events.emit(KeyboardEvent{Visible: true, Height: h})
}

// Hide reports the keyboard as hidden.
func (k *Keyboard) Hide() {
	if !k.visible {
		return
	}
	k.visible = false
	k.height = 0
	logger.ComponentLogger("host").Debug("Keyboard hidden", "listeners", k.events.count())
	k.events.emit(KeyboardEvent{})
}

// Visible reports whether the keyboard is showing.
func (k *Keyboard) Visible() bool { return k.visible }

// Height is the current keyboard height, zero when hidden.
func (k *Keyboard) Height() float64 { return k.height }

// Listeners is the number of live subscriptions.
func (k *Keyboard) Listeners() int { return k.events.count() }

// Viewport is an in-process ViewportProvider.
type Viewport struct {
	height float64
	events emitter[float64]
}

// NewViewport creates a viewport of the given height.
func NewViewport(height float64) *Viewport {
	return &Viewport{height: height}
}

// ViewportHeight implements ViewportProvider.
func (v *Viewport) ViewportHeight() float64 { return v.height }

// SubscribeResize implements ViewportProvider.
func (v *Viewport) SubscribeResize(fn func(float64)) func() {
	return v.events.subscribe(fn)
}

// SetHeight changes the height and notifies listeners when it differs.
func (v *Viewport) SetHeight(h float64) {
	if v.height == h {
		return
	}
	v.height = h
	v.events.emit(h)
}

// Listeners is the number of live subscriptions.
func (v *Viewport) Listeners() int { return v.events.count() }
