package app

import "errors"

// Errors returned by the engine.
var (
	// ErrQuit signals a user-requested shutdown; not a failure.
	ErrQuit = errors.New("quit requested")

	// ErrNoBackend indicates Run was called without a display backend.
	ErrNoBackend = errors.New("no display backend configured")

	// ErrShutdown indicates the engine has already been shut down.
	ErrShutdown = errors.New("engine is shut down")
)
