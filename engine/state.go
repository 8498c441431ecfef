package engine

import (
	"time"

	"github.com/emberterm/ember/canvas"
	"github.com/emberterm/ember/geom"
	"github.com/emberterm/ember/style"
)

// State is the per-frame view of the running engine handed to every
// App callback. It exposes frame timing and the drawing surface.
type State struct {
	canvas  *canvas.Canvas
	quit    bool
	dt      time.Duration
	elapsed time.Duration
}

// Exit requests a clean shutdown after the current frame.
func (s *State) Exit() {
	s.quit = true
}

// Delta returns the duration of the previous frame.
func (s *State) Delta() time.Duration {
	return s.dt
}

// DeltaSeconds returns the previous frame duration in seconds, the
// form most movement math wants.
func (s *State) DeltaSeconds() float64 {
	return s.dt.Seconds()
}

// Elapsed returns the time since the loop started.
func (s *State) Elapsed() time.Duration {
	return s.elapsed
}

// ElapsedMilliseconds returns the time since the loop started in
// milliseconds.
func (s *State) ElapsedMilliseconds() int64 {
	return s.elapsed.Milliseconds()
}

// Canvas returns the drawing surface for direct access.
func (s *State) Canvas() *canvas.Canvas {
	return s.canvas
}

// Size returns the pixel grid dimensions.
func (s *State) Size() geom.Point {
	return s.canvas.Size()
}

// SetBackground changes the canvas background color.
func (s *State) SetBackground(color style.Color) {
	s.canvas.SetBackground(color)
}

// Set turns on the pixel at p in the default foreground.
func (s *State) Set(p geom.Point) {
	s.canvas.Set(p)
}

// SetColor turns on the pixel at p in the given color.
func (s *State) SetColor(p geom.Point, color style.Color) {
	s.canvas.SetColor(p, color)
}

// Erase turns off the pixel at p.
func (s *State) Erase(p geom.Point) {
	s.canvas.Erase(p)
}

// At reports the color of the pixel at p and whether it is set.
func (s *State) At(p geom.Point) (style.Color, bool) {
	return s.canvas.At(p)
}

// AALine draws an anti-aliased line in the default foreground.
func (s *State) AALine(a, b geom.Vec2) {
	s.canvas.AALine(a, b)
}

// AALineColor draws an anti-aliased line in the given color.
func (s *State) AALineColor(a, b geom.Vec2, color style.Color) {
	s.canvas.AALineColor(a, b, color)
}

// AACircle draws an anti-aliased circle.
func (s *State) AACircle(center geom.Vec2, circle canvas.Circle) {
	s.canvas.AACircle(center, circle)
}

// Print draws styled text onto the cell grid.
func (s *State) Print(t style.Text) {
	s.canvas.Print(t)
}
