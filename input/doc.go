// Package input decodes keyboard events from a raw-mode terminal
// stream.
//
// A terminal in raw mode delivers keystrokes as bytes: printable keys
// arrive as UTF-8 sequences, control keys as bytes below 0x20, and
// special keys (arrows, Home, Delete) as ANSI escape sequences. The
// Reader turns that stream into KeyEvent values on a channel:
//
//	r := input.NewReader(ctx, session.Input())
//	for ev := range r.Events() {
//	    // ...
//	}
//
// The channel closes when the underlying stream returns an error or
// reaches EOF, or when the context is canceled.
package input
