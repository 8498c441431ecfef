package termio

import (
	"fmt"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/emberterm/ember/geom"
)

// Session holds the terminal in raw mode on the alternate screen with
// the cursor hidden. Restore undoes everything and is safe to call
// more than once; every exit path, including panics, must reach it.
type Session struct {
	in     *os.File
	out    *os.File
	output *termenv.Output
	state  *term.State

	mu       sync.Mutex
	restored bool
}

// Open prepares the terminal for rendering. It fails with
// ErrNotTerminal when stdin or stdout is not a TTY.
func Open() (*Session, error) {
	return open(os.Stdin, os.Stdout)
}

func open(in, out *os.File) (*Session, error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("termio: enabling raw mode: %w", err)
	}

	s := &Session{
		in:     in,
		out:    out,
		output: termenv.NewOutput(out),
		state:  state,
	}
	s.output.AltScreen()
	s.output.HideCursor()
	return s, nil
}

// Restore leaves the alternate screen, shows the cursor, and disables
// raw mode. It is idempotent.
func (s *Session) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return nil
	}
	s.restored = true

	s.output.ShowCursor()
	s.output.ExitAltScreen()
	if err := term.Restore(int(s.in.Fd()), s.state); err != nil {
		return fmt.Errorf("termio: restoring terminal: %w", err)
	}
	return nil
}

// Input returns the terminal input stream.
func (s *Session) Input() *os.File {
	return s.in
}

// Output returns the terminal output stream.
func (s *Session) Output() *os.File {
	return s.out
}

// Profile returns the detected color profile of the output.
func (s *Session) Profile() termenv.Profile {
	return s.output.Profile
}

// Size returns the terminal grid in cells.
func (s *Session) Size() (geom.Point, error) {
	s.mu.Lock()
	restored := s.restored
	s.mu.Unlock()
	if restored {
		return geom.Point{}, ErrSessionClosed
	}

	cols, rows, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return geom.Point{}, fmt.Errorf("termio: querying size: %w", err)
	}
	return geom.P(cols, rows), nil
}
