package style

import "github.com/emberterm/ember/geom"

// Alignment anchors content on a grid. Flags combine: opposite flags
// cancel each other, and AlignCenter halves whatever offset the other
// flags produced, pulling the anchor halfway back toward the center.
type Alignment uint8

const (
	AlignCenter Alignment = 1 << iota
	AlignTop
	AlignBottom
	AlignLeft
	AlignRight
)

// Has reports whether a contains flag f.
func (a Alignment) Has(f Alignment) bool {
	return a&f != 0
}

// Apply resolves the anchor position for a on a grid of the given size.
// Offsets are half the full grid size, so bottom and right anchors can
// land one past the last addressable coordinate; placement clamps them.
// An empty alignment resolves to the center.
func (a Alignment) Apply(size geom.Point) geom.Point {
	half := size.Vec2().Scale(0.5)

	var cur geom.Vec2
	var any bool

	if a.Has(AlignTop) {
		cur = cur.Add(geom.V(0, -half.Y))
		any = true
	}
	if a.Has(AlignBottom) {
		cur = cur.Add(geom.V(0, half.Y))
		any = true
	}
	if a.Has(AlignLeft) {
		cur = cur.Add(geom.V(-half.X, 0))
		any = true
	}
	if a.Has(AlignRight) {
		cur = cur.Add(geom.V(half.X, 0))
		any = true
	}
	if a.Has(AlignCenter) && any {
		cur = cur.Scale(0.5)
	}

	return half.Add(cur).Point()
}
