package termio

import (
	"context"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/emberterm/ember/geom"
)

// Status grades a capability check.
type Status int

const (
	// StatusOK means the capability is fully present.
	StatusOK Status = iota
	// StatusDegraded means rendering works but with reduced quality.
	StatusDegraded
	// StatusUnusable means rendering cannot work.
	StatusUnusable
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDegraded:
		return "degraded"
	case StatusUnusable:
		return "unusable"
	default:
		return "unknown"
	}
}

// Result is the outcome of a capability check.
type Result struct {
	// Status grades the capability.
	Status Status

	// Message provides context about the status.
	Message string

	// Details contains arbitrary metadata about the check.
	Details map[string]any

	// Err is set when the check itself failed.
	Err error
}

// OK creates a passing result.
func OK(message string) Result {
	return Result{Status: StatusOK, Message: message}
}

// Degraded creates a degraded result.
func Degraded(message string) Result {
	return Result{Status: StatusDegraded, Message: message}
}

// Unusable creates a failing result.
func Unusable(message string, err error) Result {
	return Result{Status: StatusUnusable, Message: message, Err: err}
}

// WithDetails attaches metadata to a result.
func (r Result) WithDetails(details map[string]any) Result {
	r.Details = details
	return r
}

// Checker is a single terminal capability check.
type Checker interface {
	// Name identifies this checker.
	Name() string

	// Check probes the capability.
	Check(ctx context.Context) Result
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc struct {
	name string
	fn   func(context.Context) Result
}

// NewCheckerFunc creates a checker from a function.
func NewCheckerFunc(name string, fn func(context.Context) Result) *CheckerFunc {
	return &CheckerFunc{name: name, fn: fn}
}

// Name identifies this checker.
func (f *CheckerFunc) Name() string { return f.name }

// Check probes the capability.
func (f *CheckerFunc) Check(ctx context.Context) Result { return f.fn(ctx) }

// TTYChecker verifies stdin and stdout are terminals.
type TTYChecker struct {
	In  *os.File
	Out *os.File
}

// Name identifies this checker.
func (c TTYChecker) Name() string { return "tty" }

// Check probes both streams.
func (c TTYChecker) Check(_ context.Context) Result {
	in, out := c.In, c.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if !term.IsTerminal(int(in.Fd())) {
		return Unusable("stdin is not a terminal", ErrNotTerminal)
	}
	if !term.IsTerminal(int(out.Fd())) {
		return Unusable("stdout is not a terminal", ErrNotTerminal)
	}
	return OK("stdin and stdout are terminals")
}

// SizeChecker verifies the grid is at least MinCols x MinRows cells.
type SizeChecker struct {
	Out     *os.File
	MinCols int
	MinRows int
}

// Name identifies this checker.
func (c SizeChecker) Name() string { return "size" }

// Check queries the terminal size.
func (c SizeChecker) Check(_ context.Context) Result {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	cols, rows, err := term.GetSize(int(out.Fd()))
	if err != nil {
		return Unusable("cannot query terminal size", err)
	}

	details := map[string]any{"cols": cols, "rows": rows}
	if cols < c.MinCols || rows < c.MinRows {
		msg := fmt.Sprintf("terminal %dx%d below minimum %dx%d", cols, rows, c.MinCols, c.MinRows)
		return Unusable(msg, nil).WithDetails(details)
	}
	return OK("terminal size sufficient").WithDetails(details)
}

// MinSize reports the minimum pixel grid the checker requires.
func (c SizeChecker) MinSize() geom.Point {
	return geom.P(c.MinCols, c.MinRows*2)
}

// ProfileChecker grades color support. An ASCII-only terminal is
// degraded, not unusable: glyphs still render, colors do not.
type ProfileChecker struct {
	// Profile overrides detection when non-nil, for tests.
	Profile *termenv.Profile
}

// Name identifies this checker.
func (c ProfileChecker) Name() string { return "color" }

// Check grades the color profile.
func (c ProfileChecker) Check(_ context.Context) Result {
	profile := termenv.ColorProfile()
	if c.Profile != nil {
		profile = *c.Profile
	}

	details := map[string]any{"profile": profileName(profile)}
	if profile == termenv.Ascii {
		return Degraded("terminal reports no color support").WithDetails(details)
	}
	return OK("color supported").WithDetails(details)
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	case termenv.Ascii:
		return "ascii"
	default:
		return "unknown"
	}
}

// Probe runs every checker and returns the per-check results along
// with the worst status seen. Checkers run in registration order.
func Probe(ctx context.Context, checkers ...Checker) (map[string]Result, Status) {
	results := make(map[string]Result, len(checkers))
	worst := StatusOK
	for _, c := range checkers {
		r := c.Check(ctx)
		results[c.Name()] = r
		if r.Status > worst {
			worst = r.Status
		}
	}
	return results, worst
}

// DefaultCheckers returns the probes an engine runs before rendering.
func DefaultCheckers() []Checker {
	return []Checker{
		TTYChecker{},
		SizeChecker{MinCols: 20, MinRows: 5},
		ProfileChecker{},
	}
}
