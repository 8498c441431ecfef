package canvas

import "github.com/emberterm/ember/style"

const (
	upperHalf = '▀'
	lowerHalf = '▄'
	fullBlock = '█'
)

// Cell is one terminal cell. Half-block pixels are encoded in the
// glyph: '▀' shows the foreground color on top, '▄' on the bottom,
// '█' covers both halves with the foreground.
type Cell struct {
	Rune  rune
	Fg    style.Color
	Bg    style.Color
	Attrs style.AttrMask
}

func blankCell(bg style.Color) Cell {
	return Cell{Rune: ' ', Bg: bg}
}

// topColor returns the color shown by the upper half of the cell.
func (c Cell) topColor() (style.Color, bool) {
	switch c.Rune {
	case upperHalf, fullBlock:
		return c.Fg, c.Fg.IsSet()
	case lowerHalf:
		return c.Bg, c.Bg.IsSet()
	}
	return style.Color{}, false
}

// bottomColor returns the color shown by the lower half of the cell.
func (c Cell) bottomColor() (style.Color, bool) {
	switch c.Rune {
	case lowerHalf, fullBlock:
		return c.Fg, c.Fg.IsSet()
	case upperHalf:
		return c.Bg, c.Bg.IsSet()
	}
	return style.Color{}, false
}

// setTop paints the upper half of the cell, preserving whatever the
// lower half shows. Glyphs outside the block set are overwritten.
func (c *Cell) setTop(color style.Color) {
	if !color.IsSet() {
		c.unsetTop()
		return
	}
	switch c.Rune {
	case ' ':
		c.Rune = upperHalf
		c.Fg = color
	case upperHalf:
		c.Fg = color
	case lowerHalf:
		c.Bg = color
	case fullBlock:
		c.Rune = lowerHalf
		c.Bg = color
	default:
		c.Rune = upperHalf
		c.Fg = color
		c.Bg = style.Color{}
	}
}

// setBottom paints the lower half of the cell.
func (c *Cell) setBottom(color style.Color) {
	if !color.IsSet() {
		c.unsetBottom()
		return
	}
	switch c.Rune {
	case ' ':
		c.Rune = lowerHalf
		c.Fg = color
	case upperHalf:
		c.Bg = color
	case lowerHalf:
		c.Fg = color
	case fullBlock:
		c.Rune = upperHalf
		c.Bg = color
	default:
		c.Rune = lowerHalf
		c.Fg = color
		c.Bg = style.Color{}
	}
}

// unsetTop clears the upper half, keeping the lower half visible.
func (c *Cell) unsetTop() {
	switch c.Rune {
	case ' ':
		if c.Bg.IsSet() {
			c.Rune = lowerHalf
			c.Fg = c.Bg
			c.Bg = style.Color{}
		}
	case upperHalf:
		if c.Bg.IsSet() {
			c.Rune = lowerHalf
			c.Fg = c.Bg
			c.Bg = style.Color{}
		} else {
			c.Rune = ' '
			c.Fg = style.Color{}
		}
	case lowerHalf:
		c.Bg = style.Color{}
	case fullBlock:
		c.Rune = lowerHalf
		c.Bg = style.Color{}
	default:
		c.Rune = ' '
		c.Fg = style.Color{}
		c.Bg = style.Color{}
	}
}

// unsetBottom clears the lower half, keeping the upper half visible.
func (c *Cell) unsetBottom() {
	switch c.Rune {
	case ' ':
		if c.Bg.IsSet() {
			c.Rune = upperHalf
			c.Fg = c.Bg
			c.Bg = style.Color{}
		}
	case upperHalf:
		c.Bg = style.Color{}
	case lowerHalf:
		if c.Bg.IsSet() {
			c.Rune = upperHalf
			c.Fg = c.Bg
			c.Bg = style.Color{}
		} else {
			c.Rune = ' '
			c.Fg = style.Color{}
		}
	case fullBlock:
		c.Rune = upperHalf
		c.Bg = style.Color{}
	default:
		c.Rune = ' '
		c.Fg = style.Color{}
		c.Bg = style.Color{}
	}
}
