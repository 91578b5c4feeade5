// Package errors provides structured error types for roamly.
// These errors carry the operation that failed and a category so the host
// can decide whether to fall back, flash a message, or abort.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindIO
	KindConfig
	KindLayout
	KindLifecycle
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindLayout:
		return "layout error"
	case KindLifecycle:
		return "lifecycle error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for roamly.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns err's text without the operation prefix, for display.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Context != "" {
			return e.Context + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	return err.Error()
}

// ErrClosed is wrapped by every operation attempted on a sheet after Close.
var ErrClosed = errors.New("sheet is closed")

// Sheet configuration errors
func NoSnapPoints() error {
	return E(Op("sheet.Validate"), KindConfig, "at least one snap point is required")
}

func SnapFractionOutOfRange(fraction float64) error {
	return E(Op("sheet.Validate"), KindConfig, fmt.Sprintf("snap fraction %g is outside (0, 1]", fraction))
}

func DuplicateSnapFraction(fraction float64) error {
	return E(Op("sheet.Validate"), KindConfig, fmt.Sprintf("snap fraction %g appears more than once", fraction))
}

func DefaultIndexOutOfRange(index, count int) error {
	return E(Op("sheet.Validate"), KindConfig, fmt.Sprintf("default index %d out of range for %d snap points", index, count))
}

func OptionInvalid(name string, value float64) error {
	return E(Op("sheet.Validate"), KindConfig, fmt.Sprintf("%s must be positive, got %g", name, value))
}

// Sheet runtime errors
func SnapIndexOutOfRange(index, count int) error {
	return E(Op("sheet.SnapTo"), KindInvalid, fmt.Sprintf("snap index %d out of range [0, %d]", index, count-1))
}

func GestureInProgress(op string) error {
	return E(Op(op), KindInvalid, "a drag gesture is in progress")
}

func SheetClosed(op string) error {
	return E(Op(op), KindLifecycle, ErrClosed)
}

func AlreadyAttached() error {
	return E(Op("sheet.Attach"), KindLifecycle, "host listeners are already attached")
}

// Config file errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindIO, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindIO, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindConfig, reason)
}
