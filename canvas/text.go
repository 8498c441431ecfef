package canvas

import (
	"github.com/mattn/go-runewidth"

	"github.com/emberterm/ember/geom"
	"github.com/emberterm/ember/style"
)

// Print places styled text on the cell grid. The anchor comes from
// the text's alignment (default center); the decorated box is clamped
// to the canvas, padding is cleared with the content colors, and any
// colored border sides are drawn around it.
func (c *Canvas) Print(t style.Text) {
	s := t.Style
	size := c.buf.size

	contentWidth := runewidth.StringWidth(t.Content)
	const contentHeight = 1

	paddedWidth := contentWidth + s.Padding.Left + s.Padding.Right
	paddedHeight := contentHeight + s.Padding.Top + s.Padding.Bottom
	totalWidth := contentWidth + s.ExtraWidth()
	totalHeight := contentHeight + s.ExtraHeight()

	anchor := s.Align.Apply(size)

	endX := min(anchor.X+(totalWidth+1)/2, size.X)
	startX := max(endX-totalWidth, 0)
	endY := min(anchor.Y+(totalHeight+1)/2, size.Y)
	startY := max(endY-totalHeight, 0)

	padStartX := startX + s.Border.LeftWidth()
	padStartY := startY + s.Border.TopWidth()
	lineStartX := startX + s.LeftWidth()
	lineStartY := startY + s.TopWidth()

	// Clear the padded box with the content style.
	for i := 0; i < paddedHeight; i++ {
		for j := 0; j < paddedWidth; j++ {
			if cell := c.buf.at(geom.P(padStartX+j, padStartY+i)); cell != nil {
				*cell = Cell{Rune: ' ', Fg: s.Foreground, Bg: s.Background, Attrs: s.Attrs}
			}
		}
	}

	// Content row. Wide runes occupy their display width.
	col := 0
	for _, r := range t.Content {
		if cell := c.buf.at(geom.P(lineStartX+col, lineStartY)); cell != nil {
			cell.Rune = r
		}
		col += runewidth.RuneWidth(r)
	}

	c.printBorders(s, startX, startY, padStartY, paddedWidth, paddedHeight, totalWidth, totalHeight)
}

func (c *Canvas) printBorders(s style.Style, startX, startY, padStartY, paddedWidth, paddedHeight, totalWidth, totalHeight int) {
	top, bottom, left, right, tl, tr, br, bl := s.Border.Glyphs()

	if s.Border.Left.IsSet() {
		for i := 0; i < paddedHeight; i++ {
			if cell := c.buf.at(geom.P(startX, padStartY+i)); cell != nil {
				*cell = Cell{Rune: left, Fg: s.Border.Left}
			}
		}
	}
	if s.Border.Right.IsSet() {
		for i := 0; i < paddedHeight; i++ {
			if cell := c.buf.at(geom.P(startX+totalWidth-1, padStartY+i)); cell != nil {
				*cell = Cell{Rune: right, Fg: s.Border.Right}
			}
		}
	}

	if s.Border.Top.IsSet() {
		for i, bc := range borderRow(s.Border, top, tl, tr, paddedWidth, s.Border.Top) {
			if cell := c.buf.at(geom.P(startX+i, startY)); cell != nil {
				*cell = bc
			}
		}
	}
	if s.Border.Bottom.IsSet() {
		for i, bc := range borderRow(s.Border, bottom, bl, br, paddedWidth, s.Border.Bottom) {
			if cell := c.buf.at(geom.P(startX+i, startY+totalHeight-1)); cell != nil {
				*cell = bc
			}
		}
	}
}

// borderRow builds a horizontal border: corner glyphs take the color
// of the side they join.
func borderRow(b style.Border, edge, leftCorner, rightCorner rune, width int, color style.Color) []Cell {
	cells := make([]Cell, 0, width+2)
	if b.Left.IsSet() {
		cells = append(cells, Cell{Rune: leftCorner, Fg: b.Left})
	}
	for i := 0; i < width; i++ {
		cells = append(cells, Cell{Rune: edge, Fg: color})
	}
	if b.Right.IsSet() {
		cells = append(cells, Cell{Rune: rightCorner, Fg: b.Right})
	}
	return cells
}
