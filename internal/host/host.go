// Package host defines what a sheet needs from the environment it runs in:
// the viewport height, keyboard visibility, and a disciplined way to hold and
// release the listeners it registers with them.
//
// All providers deliver events synchronously on the caller's goroutine. The
// terminal host calls them from the Bubble Tea update loop, which keeps every
// sheet transition on a single goroutine.
package host

// KeyboardEvent reports the on-screen keyboard appearing or disappearing.
type KeyboardEvent struct {
	Visible bool
	Height  float64
}

// KeyboardProvider emits keyboard show/hide events.
type KeyboardProvider interface {
	// SubscribeKeyboard registers fn and returns the function that releases it.
	SubscribeKeyboard(fn func(KeyboardEvent)) (release func())
}

// ViewportProvider reports the viewport height and its changes.
type ViewportProvider interface {
	ViewportHeight() float64
	// SubscribeResize registers fn and returns the function that releases it.
	SubscribeResize(fn func(height float64)) (release func())
}
