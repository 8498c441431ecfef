package canvas

import "github.com/emberterm/ember/geom"

// buffer is the double buffer behind a Canvas, sized in cells.
// Drawing mutates hidden; display holds what the terminal shows.
type buffer struct {
	display []Cell
	hidden  []Cell
	size    geom.Point
}

func newBuffer(size geom.Point, fill Cell) *buffer {
	n := size.X * size.Y
	b := &buffer{
		display: make([]Cell, n),
		hidden:  make([]Cell, n),
		size:    size,
	}
	b.fill(b.display, fill)
	b.fill(b.hidden, fill)
	return b
}

func (b *buffer) fill(cells []Cell, c Cell) {
	for i := range cells {
		cells[i] = c
	}
}

func (b *buffer) resize(size geom.Point, fill Cell) {
	if b.size == size {
		return
	}
	n := size.X * size.Y
	b.display = make([]Cell, n)
	b.hidden = make([]Cell, n)
	b.fill(b.display, fill)
	b.fill(b.hidden, fill)
	b.size = size
}

// swap promotes the hidden buffer to display and resets the new
// hidden buffer to the fill cell.
func (b *buffer) swap(fill Cell) {
	b.display, b.hidden = b.hidden, b.display
	b.fill(b.hidden, fill)
}

// replace swaps every hidden cell equal to old for fresh.
func (b *buffer) replace(old, fresh Cell) {
	for i := range b.hidden {
		if b.hidden[i] == old {
			b.hidden[i] = fresh
		}
	}
}

func (b *buffer) len() int {
	return len(b.hidden)
}

func (b *buffer) inBounds(p geom.Point) bool {
	return p.In(b.size)
}

// at returns the hidden cell at p, or nil when out of bounds.
func (b *buffer) at(p geom.Point) *Cell {
	if !b.inBounds(p) {
		return nil
	}
	return &b.hidden[b.posToIndex(p)]
}

func (b *buffer) indexToPos(i int) geom.Point {
	return geom.P(i%b.size.X, i/b.size.X)
}

func (b *buffer) posToIndex(p geom.Point) int {
	return b.size.X*p.Y + p.X
}
