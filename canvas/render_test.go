package canvas

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/emberterm/ember/geom"
	"github.com/emberterm/ember/style"
)

func TestRenderWritesOnlyChangedCells(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := New(Config{Writer: buf, Size: geom.P(8, 4)})
	if err != nil {
		t.Fatal(err)
	}

	c.SetColor(geom.P(1, 1), style.Red)
	written, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	if written != 1 {
		t.Errorf("first frame wrote %d cells, want 1", written)
	}

	// Same content again: the hidden buffer was cleared by the swap,
	// so the now-blank cell is the only difference.
	written, err = c.Render()
	if err != nil {
		t.Fatal(err)
	}
	if written != 1 {
		t.Errorf("second frame wrote %d cells, want 1", written)
	}

	// Nothing changed between two blank frames.
	written, err = c.Render()
	if err != nil {
		t.Fatal(err)
	}
	if written != 0 {
		t.Errorf("blank frame wrote %d cells, want 0", written)
	}
}

func TestRenderStablePixelWritesOncePerFrame(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := New(Config{Writer: buf, Size: geom.P(8, 4)})
	if err != nil {
		t.Fatal(err)
	}

	// A pixel redrawn every frame settles: after the first flush the
	// displayed buffer matches the hidden one.
	c.SetColor(geom.P(2, 2), style.Green)
	if _, err := c.Render(); err != nil {
		t.Fatal(err)
	}

	c.SetColor(geom.P(2, 2), style.Green)
	written, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	if written != 0 {
		t.Errorf("unchanged pixel wrote %d cells, want 0", written)
	}
}

func TestRenderOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := New(Config{Writer: buf, Size: geom.P(8, 4)})
	if err != nil {
		t.Fatal(err)
	}

	// Pixel (3, 0) is the upper half of cell (3, 0): row 1, col 4.
	c.SetColor(geom.P(3, 0), style.White)
	if _, err := c.Render(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "\x1b[1;4H") {
		t.Errorf("output missing cursor move to row 1 col 4: %q", out)
	}
	if !strings.Contains(out, string(upperHalf)) {
		t.Errorf("output missing upper half glyph: %q", out)
	}
	if !strings.HasPrefix(out, "\x1b[0m") {
		t.Errorf("output should start with a reset: %q", out)
	}
}

func TestRenderProfileDegradesColors(t *testing.T) {
	buf := &bytes.Buffer{}
	c, err := New(Config{Writer: buf, Size: geom.P(4, 2), Profile: termenv.ANSI})
	if err != nil {
		t.Fatal(err)
	}

	c.SetColor(geom.P(0, 0), style.RGB(250, 5, 5))
	if _, err := c.Render(); err != nil {
		t.Fatal(err)
	}

	// An ANSI-only terminal must not receive a 24-bit sequence.
	if strings.Contains(buf.String(), "38;2;") {
		t.Errorf("truecolor sequence leaked into ANSI output: %q", buf.String())
	}
}

func TestSeqCacheMemoizes(t *testing.T) {
	cache := newSeqCache(termenv.TrueColor)

	first := cache.get(style.Red, false)
	second := cache.get(style.Red, false)
	if first != second {
		t.Errorf("cache returned different sequences: %q vs %q", first, second)
	}
	if first == "" {
		t.Error("sequence for a set color should not be empty")
	}

	fg := cache.get(style.Red, false)
	bg := cache.get(style.Red, true)
	if fg == bg {
		t.Error("foreground and background sequences must differ")
	}
}

func TestSeqCacheUnsetColorResets(t *testing.T) {
	cache := newSeqCache(termenv.TrueColor)

	if got := cache.get(style.Color{}, false); got != "\x1b[39m" {
		t.Errorf("unset fg sequence = %q, want default-foreground reset", got)
	}
	if got := cache.get(style.Color{}, true); got != "\x1b[49m" {
		t.Errorf("unset bg sequence = %q, want default-background reset", got)
	}
}

func TestAttrSeq(t *testing.T) {
	if got := attrSeq(0); got != "" {
		t.Errorf("attrSeq(0) = %q, want empty", got)
	}
	got := attrSeq(style.AttrBold | style.AttrUnderline)
	if !strings.Contains(got, "1") || !strings.Contains(got, "4") {
		t.Errorf("attrSeq = %q, want bold and underline codes", got)
	}
}
