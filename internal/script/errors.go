package script

import "errors"

// Errors for script operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs past its timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrNoTransform is returned when a script does not define transform.
	ErrNoTransform = errors.New("script does not define function transform(state)")

	// ErrBadResult is returned when transform returns something other than a
	// table or nil.
	ErrBadResult = errors.New("transform must return a table or nil")
)
