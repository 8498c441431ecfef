package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorZeroValueUnset(t *testing.T) {
	var c Color
	if c.IsSet() {
		t.Error("zero Color should be unset")
	}
	if _, ok := c.ANSI(); ok {
		t.Error("zero Color should not report an ANSI index")
	}
}

func TestColorANSI(t *testing.T) {
	idx, ok := Red.ANSI()
	if !ok || idx != 9 {
		t.Errorf("Red.ANSI() = (%d, %v), want (9, true)", idx, ok)
	}
	if !Black.IsSet() {
		t.Error("Black must be set even though its index is 0")
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b := RGB(12, 34, 56).RGBA()
	if r != 12 || g != 34 || b != 56 {
		t.Errorf("RGBA = (%d,%d,%d), want (12,34,56)", r, g, b)
	}

	r, g, b = White.RGBA()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("White RGBA = (%d,%d,%d), want (255,255,255)", r, g, b)
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(255, 0, 170).Hex(); got != "#ff00aa" {
		t.Errorf("Hex = %q, want %q", got, "#ff00aa")
	}
}

func TestBuilderReturnsCopies(t *testing.T) {
	base := New("hello")
	styled := base.Bold().Foreground(Cyan).Padding(2)

	if base.Style.Attrs.Has(AttrBold) {
		t.Error("builder mutated the original Text")
	}
	if !styled.Style.Attrs.Has(AttrBold) {
		t.Error("Bold not applied")
	}
	if styled.Style.Foreground != Cyan {
		t.Errorf("Foreground = %v, want Cyan", styled.Style.Foreground)
	}
	want := Padding{Top: 2, Bottom: 2, Left: 2, Right: 2}
	if diff := cmp.Diff(want, styled.Style.Padding); diff != "" {
		t.Errorf("Padding mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderBorders(t *testing.T) {
	tx := New("x").Border(White).TopBorder(Red)

	b := tx.Style.Border
	if b.Top != Red {
		t.Errorf("Top = %v, want Red", b.Top)
	}
	if b.Bottom != White || b.Left != White || b.Right != White {
		t.Error("Border(White) should set the remaining sides")
	}
	if b.ExtraWidth() != 2 || b.ExtraHeight() != 2 {
		t.Errorf("ExtraWidth/Height = %d/%d, want 2/2", b.ExtraWidth(), b.ExtraHeight())
	}
}

func TestBorderWidthsUnset(t *testing.T) {
	var b Border
	if b.ExtraWidth() != 0 || b.ExtraHeight() != 0 {
		t.Error("unset border must contribute no size")
	}
}

func TestStyleTotals(t *testing.T) {
	s := Style{
		Padding: Padding{Top: 1, Bottom: 2, Left: 3, Right: 4},
		Border:  Border{Left: White, Top: White},
	}

	if got := s.LeftWidth(); got != 4 {
		t.Errorf("LeftWidth = %d, want 4", got)
	}
	if got := s.RightWidth(); got != 4 {
		t.Errorf("RightWidth = %d, want 4", got)
	}
	if got := s.ExtraHeight(); got != 4 {
		t.Errorf("ExtraHeight = %d, want 4", got)
	}
	if got := s.ExtraWidth(); got != 8 {
		t.Errorf("ExtraWidth = %d, want 8", got)
	}
}

func TestAttrMask(t *testing.T) {
	m := AttrBold | AttrUnderline
	if !m.Has(AttrBold) || !m.Has(AttrUnderline) {
		t.Error("Has should report set attributes")
	}
	if m.Has(AttrItalic) {
		t.Error("Has should not report unset attributes")
	}
}
