package style

// Text is a string with a Style attached. All builder methods return
// modified copies, so Text values can be shared freely.
type Text struct {
	Content string
	Style   Style
}

// New wraps content in an unstyled Text.
func New(content string) Text {
	return Text{Content: content}
}

// Foreground sets the foreground color.
func (t Text) Foreground(c Color) Text {
	t.Style.Foreground = c
	return t
}

// Background sets the background color.
func (t Text) Background(c Color) Text {
	t.Style.Background = c
	return t
}

// Attr adds a text attribute.
func (t Text) Attr(a AttrMask) Text {
	t.Style.Attrs |= a
	return t
}

// Bold applies the bold attribute.
func (t Text) Bold() Text { return t.Attr(AttrBold) }

// Dim applies the dim attribute.
func (t Text) Dim() Text { return t.Attr(AttrDim) }

// Italic applies the italic attribute.
func (t Text) Italic() Text { return t.Attr(AttrItalic) }

// Underline applies the underline attribute.
func (t Text) Underline() Text { return t.Attr(AttrUnderline) }

// Blink applies the blink attribute.
func (t Text) Blink() Text { return t.Attr(AttrBlink) }

// Reverse applies the reverse-video attribute.
func (t Text) Reverse() Text { return t.Attr(AttrReverse) }

// Hidden applies the hidden attribute.
func (t Text) Hidden() Text { return t.Attr(AttrHidden) }

// CrossedOut applies the crossed-out attribute.
func (t Text) CrossedOut() Text { return t.Attr(AttrCrossedOut) }

// Align sets the canvas alignment.
func (t Text) Align(a Alignment) Text {
	t.Style.Align = a
	return t
}

// Border sets all four border sides to the given color.
func (t Text) Border(c Color) Text {
	t.Style.Border.Top = c
	t.Style.Border.Bottom = c
	t.Style.Border.Left = c
	t.Style.Border.Right = c
	return t
}

// BorderType selects the border glyph set.
func (t Text) BorderType(bt BorderType) Text {
	t.Style.Border.Type = bt
	return t
}

// TopBorder sets the top border color.
func (t Text) TopBorder(c Color) Text {
	t.Style.Border.Top = c
	return t
}

// BottomBorder sets the bottom border color.
func (t Text) BottomBorder(c Color) Text {
	t.Style.Border.Bottom = c
	return t
}

// LeftBorder sets the left border color.
func (t Text) LeftBorder(c Color) Text {
	t.Style.Border.Left = c
	return t
}

// RightBorder sets the right border color.
func (t Text) RightBorder(c Color) Text {
	t.Style.Border.Right = c
	return t
}

// Padding sets a uniform padding on all sides.
func (t Text) Padding(n int) Text {
	t.Style.Padding = Padding{Top: n, Bottom: n, Left: n, Right: n}
	return t
}

// HorizontalPadding sets the left and right padding.
func (t Text) HorizontalPadding(n int) Text {
	t.Style.Padding.Left = n
	t.Style.Padding.Right = n
	return t
}

// VerticalPadding sets the top and bottom padding.
func (t Text) VerticalPadding(n int) Text {
	t.Style.Padding.Top = n
	t.Style.Padding.Bottom = n
	return t
}

// TopPadding sets the top padding.
func (t Text) TopPadding(n int) Text {
	t.Style.Padding.Top = n
	return t
}

// BottomPadding sets the bottom padding.
func (t Text) BottomPadding(n int) Text {
	t.Style.Padding.Bottom = n
	return t
}

// LeftPadding sets the left padding.
func (t Text) LeftPadding(n int) Text {
	t.Style.Padding.Left = n
	return t
}

// RightPadding sets the right padding.
func (t Text) RightPadding(n int) Text {
	t.Style.Padding.Right = n
	return t
}
