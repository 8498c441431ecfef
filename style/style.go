package style

// AttrMask is a bitmask of text attributes.
type AttrMask uint16

const (
	AttrBold AttrMask = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrCrossedOut
)

// Has reports whether m contains attr.
func (m AttrMask) Has(attr AttrMask) bool {
	return m&attr != 0
}

// BorderType selects the glyph set used to draw borders.
type BorderType int

const (
	// BorderHalfBlock draws borders with half and full block glyphs.
	BorderHalfBlock BorderType = iota
	// BorderLine draws borders with box-drawing line glyphs.
	BorderLine
)

// Border holds per-side border colors. A side is drawn iff its color
// is set; each drawn side is one cell wide.
type Border struct {
	Type   BorderType
	Top    Color
	Bottom Color
	Left   Color
	Right  Color
}

// LeftWidth returns 1 if the left border is drawn, else 0.
func (b Border) LeftWidth() int {
	if b.Left.IsSet() {
		return 1
	}
	return 0
}

// RightWidth returns 1 if the right border is drawn, else 0.
func (b Border) RightWidth() int {
	if b.Right.IsSet() {
		return 1
	}
	return 0
}

// TopWidth returns 1 if the top border is drawn, else 0.
func (b Border) TopWidth() int {
	if b.Top.IsSet() {
		return 1
	}
	return 0
}

// BottomWidth returns 1 if the bottom border is drawn, else 0.
func (b Border) BottomWidth() int {
	if b.Bottom.IsSet() {
		return 1
	}
	return 0
}

// ExtraWidth is the number of columns the borders add.
func (b Border) ExtraWidth() int {
	return b.LeftWidth() + b.RightWidth()
}

// ExtraHeight is the number of rows the borders add.
func (b Border) ExtraHeight() int {
	return b.TopWidth() + b.BottomWidth()
}

// Glyphs returns the border glyph set for the type:
// top, bottom, left, right, and the four corners clockwise from top-left.
func (b Border) Glyphs() (top, bottom, left, right, tl, tr, br, bl rune) {
	switch b.Type {
	case BorderLine:
		return '─', '─', '│', '│', '┌', '┐', '┘', '└'
	default:
		return '▄', '▀', '▐', '▌', '█', '█', '█', '█'
	}
}

// Padding holds per-side padding cell counts.
type Padding struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Style is the complete look of a piece of content.
//
// The zero value renders as unstyled text centered on the canvas.
type Style struct {
	Foreground Color
	Background Color
	Attrs      AttrMask
	Border     Border
	Padding    Padding
	Align      Alignment
}

// LeftWidth is the total left decoration width (padding + border).
func (s Style) LeftWidth() int {
	return s.Padding.Left + s.Border.LeftWidth()
}

// RightWidth is the total right decoration width (padding + border).
func (s Style) RightWidth() int {
	return s.Padding.Right + s.Border.RightWidth()
}

// TopWidth is the total top decoration height (padding + border).
func (s Style) TopWidth() int {
	return s.Padding.Top + s.Border.TopWidth()
}

// BottomWidth is the total bottom decoration height (padding + border).
func (s Style) BottomWidth() int {
	return s.Padding.Bottom + s.Border.BottomWidth()
}

// ExtraWidth is the number of columns decorations add around content.
func (s Style) ExtraWidth() int {
	return s.LeftWidth() + s.RightWidth()
}

// ExtraHeight is the number of rows decorations add around content.
func (s Style) ExtraHeight() int {
	return s.TopWidth() + s.BottomWidth()
}
