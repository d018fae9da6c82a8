package lua

import "errors"

// Errors returned by the Lua runtime wrapper.
var (
	// ErrStateClosed indicates the Lua state has been closed.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrNotFunction indicates the named global is missing or not callable.
	ErrNotFunction = errors.New("not a lua function")
)
