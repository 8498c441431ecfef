package termio

import "errors"

// Sentinel errors for terminal sessions.
var (
	// ErrNotTerminal is returned when stdin or stdout is not a TTY.
	ErrNotTerminal = errors.New("termio: not a terminal")

	// ErrSessionClosed is returned when a restored session is used.
	ErrSessionClosed = errors.New("termio: session already restored")
)
