package engine

import "errors"

var (
	// ErrNilApp indicates Run was called without an application.
	ErrNilApp = errors.New("engine: app is nil")

	// ErrInit wraps a failure from App.Init.
	ErrInit = errors.New("engine: init failed")

	// ErrUpdate wraps a failure from App.Update.
	ErrUpdate = errors.New("engine: update failed")

	// ErrRender wraps a failure while writing a frame to the terminal.
	ErrRender = errors.New("engine: render failed")

	// ErrTerminalUnusable indicates a capability probe ruled out
	// rendering on this terminal.
	ErrTerminalUnusable = errors.New("engine: terminal unusable")
)
