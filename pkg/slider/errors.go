package slider

import "errors"

var (
	// ErrInvalidStep is returned when a slider is configured with a step size
	// that is zero, negative or NaN.
	ErrInvalidStep = errors.New("step size must be positive")

	// ErrNilListener is returned when subscribing a nil listener.
	ErrNilListener = errors.New("listener cannot be nil")

	// ErrListenerNotComparable is returned when subscribing a listener whose
	// dynamic type cannot be compared by identity (e.g. a struct holding funcs).
	ErrListenerNotComparable = errors.New("listener must be comparable, pass a pointer")
)

// ErrLoopStopped is returned when posting to a Loop whose Run has returned.
var ErrLoopStopped = errors.New("loop stopped")
