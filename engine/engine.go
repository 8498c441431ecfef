package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/emberterm/ember/canvas"
	"github.com/emberterm/ember/geom"
	"github.com/emberterm/ember/input"
	"github.com/emberterm/ember/observe"
	"github.com/emberterm/ember/termio"
)

// App is implemented by applications driven by the engine loop.
//
// Contract:
//   - Concurrency: all three callbacks run on the loop goroutine,
//     never concurrently.
//   - Errors: an error from Init or Update stops the loop and is
//     returned from Run; OnKey cannot fail.
type App interface {
	// Init runs once before the first frame.
	Init(s *State) error

	// Update advances the application by one frame.
	Update(s *State) error

	// OnKey handles one keystroke. It runs before the engine's own
	// quit-key handling, so an app sees q and Escape too.
	OnKey(s *State, ev input.KeyEvent)
}

// Config tunes the engine loop. The zero value runs full screen on
// the controlling terminal at around 60 frames per second.
type Config struct {
	// Meta labels telemetry emitted by this run.
	Meta observe.AppMeta

	// FrameInterval is the pacing interval between frames.
	// Default: 16ms
	FrameInterval time.Duration

	// Observer receives per-frame telemetry when set.
	Observer observe.Observer

	// Output redirects frames away from the terminal. Setting it puts
	// the engine in headless mode: no raw mode, no alternate screen,
	// no resize handling. Intended for tests.
	Output io.Writer

	// Input supplies the keystroke stream in headless mode. The loop
	// sees no input when nil.
	Input io.Reader

	// Size is the cell grid in headless mode.
	// Default: 80x24
	Size geom.Point

	// Profile forces a color profile in headless mode.
	// Default: TrueColor
	Profile termenv.Profile
}

// Run drives app until it exits or fails. The quit keys q, Escape,
// and Ctrl+C stop the loop after the app has seen the keystroke.
func Run(app App, config ...Config) error {
	if app == nil {
		return ErrNilApp
	}

	cfg := Config{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = 16 * time.Millisecond
	}
	if cfg.Size.X <= 0 || cfg.Size.Y <= 0 {
		cfg.Size = geom.P(80, 24)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		session  *termio.Session
		events   <-chan input.KeyEvent
		resizeCh chan geom.Point
		cells    = cfg.Size
		profile  = cfg.Profile
		out      = cfg.Output
	)

	headless := cfg.Output != nil
	if !headless {
		if err := probeTerminal(ctx, termio.DefaultCheckers()...); err != nil {
			return err
		}

		var err error
		session, err = termio.Open()
		if err != nil {
			return err
		}
		// Restore runs even when the app panics, so the shell is
		// never left in raw mode.
		defer session.Restore()

		cells, err = session.Size()
		if err != nil {
			return err
		}
		profile = session.Profile()
		out = session.Output()
		events = input.NewReader(ctx, session.Input()).Events()

		resizeCh = make(chan geom.Point, 1)
	} else if cfg.Input != nil {
		events = input.NewReader(ctx, cfg.Input).Events()
	}

	cvs, err := canvas.New(canvas.Config{
		Writer:  out,
		Size:    cells,
		Profile: profile,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	if session != nil {
		g.Go(func() error {
			return watchResize(gctx, func() {
				size, err := session.Size()
				if err != nil {
					return
				}
				select {
				case resizeCh <- size:
				default:
				}
			})
		})
	}
	defer g.Wait()
	defer cancel()

	frame := func(ctx context.Context) (int, error) {
		return cvs.Render()
	}
	if cfg.Observer != nil {
		mw, err := observe.MiddlewareFromObserver(cfg.Observer)
		if err != nil {
			return err
		}
		frame = mw.Wrap(cfg.Meta, frame)
	}

	state := &State{canvas: cvs}
	if err := app.Init(state); err != nil {
		return fmt.Errorf("%w: %w", ErrInit, err)
	}

	pacer := NewPacer(PacerConfig{Interval: cfg.FrameInterval})
	start := time.Now()

	for !state.quit {
		drainEvents(app, state, &events, resizeCh, cvs)
		if state.quit {
			break
		}

		dt, err := pacer.Wait(ctx)
		if err != nil {
			return nil
		}
		state.dt = dt
		state.elapsed = time.Since(start)

		if err := app.Update(state); err != nil {
			return fmt.Errorf("%w: %w", ErrUpdate, err)
		}
		if _, err := frame(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrRender, err)
		}
	}
	return nil
}

// drainEvents dispatches every pending keystroke and resize without
// blocking. A closed event stream is parked as nil so the select never
// spins on it.
func drainEvents(app App, state *State, events *<-chan input.KeyEvent, resizeCh chan geom.Point, cvs *canvas.Canvas) {
	for {
		select {
		case ev, ok := <-*events:
			if !ok {
				*events = nil
				return
			}
			app.OnKey(state, ev)
			if isQuitKey(ev) {
				state.Exit()
				return
			}
		case size := <-resizeCh:
			cvs.Resize(size)
		default:
			return
		}
	}
}

func isQuitKey(ev input.KeyEvent) bool {
	return ev.Is('q') || ev.Code == input.KeyEscape || ev.IsCtrl('c')
}

// probeTerminal runs the capability checks before the session touches
// the terminal. A degraded terminal (no color) still renders; an
// unusable one fails with the check that ruled it out.
func probeTerminal(ctx context.Context, checkers ...termio.Checker) error {
	results, status := termio.Probe(ctx, checkers...)
	if status != termio.StatusUnusable {
		return nil
	}
	for name, r := range results {
		if r.Status != termio.StatusUnusable {
			continue
		}
		if r.Err != nil {
			return fmt.Errorf("%w: %s: %s: %w", ErrTerminalUnusable, name, r.Message, r.Err)
		}
		return fmt.Errorf("%w: %s: %s", ErrTerminalUnusable, name, r.Message)
	}
	return ErrTerminalUnusable
}
