package canvas

import (
	"bufio"
	"errors"
	"io"

	"github.com/muesli/termenv"

	"github.com/emberterm/ember/geom"
	"github.com/emberterm/ember/style"
)

// ErrBadSize is returned when a canvas is created with a non-positive
// cell grid.
var ErrBadSize = errors.New("canvas: size must be positive in both dimensions")

// Config configures a Canvas.
type Config struct {
	// Writer receives the escape output. Required.
	Writer io.Writer

	// Size is the cell grid (columns x rows). Required.
	Size geom.Point

	// Profile is the color profile used to degrade colors for the
	// target terminal. Default: truecolor.
	Profile termenv.Profile
}

// Canvas is a half-block pixel drawing surface over a cell grid.
// It is not safe for concurrent use; the engine drives it from a
// single goroutine, which is also how the render loop stays ordered.
type Canvas struct {
	buf        *buffer
	out        *bufio.Writer
	profile    termenv.Profile
	seqs       *seqCache
	background style.Color
	redraw     bool
}

// New creates a canvas over the given writer and cell grid.
func New(cfg Config) (*Canvas, error) {
	if cfg.Writer == nil {
		return nil, errors.New("canvas: writer is required")
	}
	if cfg.Size.X <= 0 || cfg.Size.Y <= 0 {
		return nil, ErrBadSize
	}
	profile := cfg.Profile
	if profile == 0 {
		profile = termenv.TrueColor
	}
	c := &Canvas{
		out:     bufio.NewWriterSize(cfg.Writer, 1<<15),
		profile: profile,
		seqs:    newSeqCache(profile),
	}
	c.buf = newBuffer(cfg.Size, blankCell(c.background))
	return c, nil
}

// Size returns the pixel dimensions of the canvas: columns wide and
// twice the rows tall.
func (c *Canvas) Size() geom.Point {
	return geom.P(c.buf.size.X, c.buf.size.Y*2)
}

// CellSize returns the underlying cell grid dimensions.
func (c *Canvas) CellSize() geom.Point {
	return c.buf.size
}

// Resize reallocates both buffers for a new cell grid and forces a
// full redraw on the next Render.
func (c *Canvas) Resize(cells geom.Point) {
	if cells.X <= 0 || cells.Y <= 0 {
		return
	}
	c.buf.resize(cells, blankCell(c.background))
	c.redraw = true
}

// SetBackground sets the color cleared cells take between frames and
// the base color anti-aliased strokes blend against. Blank cells
// already pending in the hidden buffer pick up the new color, so the
// forced redraw never flushes a frame of the old background.
func (c *Canvas) SetBackground(color style.Color) {
	if color == c.background {
		return
	}
	old := blankCell(c.background)
	c.background = color
	c.buf.replace(old, blankCell(color))
	c.redraw = true
}

// Background returns the configured background color.
func (c *Canvas) Background() style.Color {
	return c.background
}

// cellFor maps a pixel position to its cell and half.
func (c *Canvas) cellFor(p geom.Point) (*Cell, bool) {
	if !p.In(c.Size()) {
		return nil, false
	}
	cell := c.buf.at(geom.P(p.X, p.Y/2))
	if cell == nil {
		return nil, false
	}
	return cell, p.Y%2 == 0
}

// Set paints the pixel at p white.
func (c *Canvas) Set(p geom.Point) {
	c.SetColor(p, style.White)
}

// SetColor paints the pixel at p. Out-of-bounds positions are ignored.
func (c *Canvas) SetColor(p geom.Point, color style.Color) {
	cell, top := c.cellFor(p)
	if cell == nil {
		return
	}
	if top {
		cell.setTop(color)
	} else {
		cell.setBottom(color)
	}
}

// Erase clears the pixel at p, leaving its cell partner intact.
func (c *Canvas) Erase(p geom.Point) {
	cell, top := c.cellFor(p)
	if cell == nil {
		return
	}
	if top {
		cell.unsetTop()
	} else {
		cell.unsetBottom()
	}
}

// At reports the color currently drawn at pixel p in the hidden
// buffer, if any.
func (c *Canvas) At(p geom.Point) (style.Color, bool) {
	cell, top := c.cellFor(p)
	if cell == nil {
		return style.Color{}, false
	}
	if top {
		return cell.topColor()
	}
	return cell.bottomColor()
}
