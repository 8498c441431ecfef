package canvas

import (
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/emberterm/ember/style"
)

// look is the attribute state the terminal is currently in. Tracking
// it across cells keeps escape output to the changed parts only.
type look struct {
	fg    style.Color
	bg    style.Color
	attrs style.AttrMask
}

// seqCache memoizes the escape sequence for a (color, plane) pair.
// Profile conversion is not free and the same few colors repeat for
// thousands of cells per frame.
type seqCache struct {
	mu      sync.Mutex
	profile termenv.Profile
	seqs    map[seqKey]string
}

type seqKey struct {
	color style.Color
	bg    bool
}

func newSeqCache(profile termenv.Profile) *seqCache {
	return &seqCache{
		profile: profile,
		seqs:    make(map[seqKey]string),
	}
}

// get returns the full escape sequence selecting color on the
// foreground or background plane.
func (s *seqCache) get(color style.Color, bg bool) string {
	key := seqKey{color: color, bg: bg}

	s.mu.Lock()
	seq, ok := s.seqs[key]
	s.mu.Unlock()
	if ok {
		return seq
	}

	seq = s.compute(color, bg)

	s.mu.Lock()
	s.seqs[key] = seq
	s.mu.Unlock()
	return seq
}

func (s *seqCache) compute(color style.Color, bg bool) string {
	if !color.IsSet() {
		// Reset the plane to the terminal default.
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	body := s.profile.Convert(termenvColor(color)).Sequence(bg)
	if body == "" {
		return ""
	}
	return termenv.CSI + body + "m"
}

func termenvColor(c style.Color) termenv.Color {
	if idx, ok := c.ANSI(); ok {
		return termenv.ANSIColor(idx)
	}
	return termenv.RGBColor(c.Hex())
}

// attrSeq builds the SGR sequence enabling every attribute in m.
func attrSeq(m style.AttrMask) string {
	if m == 0 {
		return ""
	}
	parts := make([]string, 0, 4)
	if m.Has(style.AttrBold) {
		parts = append(parts, termenv.BoldSeq)
	}
	if m.Has(style.AttrDim) {
		parts = append(parts, termenv.FaintSeq)
	}
	if m.Has(style.AttrItalic) {
		parts = append(parts, termenv.ItalicSeq)
	}
	if m.Has(style.AttrUnderline) {
		parts = append(parts, termenv.UnderlineSeq)
	}
	if m.Has(style.AttrBlink) {
		parts = append(parts, termenv.BlinkSeq)
	}
	if m.Has(style.AttrReverse) {
		parts = append(parts, termenv.ReverseSeq)
	}
	if m.Has(style.AttrHidden) {
		parts = append(parts, "8")
	}
	if m.Has(style.AttrCrossedOut) {
		parts = append(parts, termenv.CrossOutSeq)
	}
	return termenv.CSI + strings.Join(parts, ";") + "m"
}

// Render flushes the difference between the hidden buffer and the
// displayed one, swaps them, and reports how many cells were written.
func (c *Canvas) Render() (int, error) {
	// Start from a known state each frame.
	if _, err := c.out.WriteString(termenv.CSI + termenv.ResetSeq + "m"); err != nil {
		return 0, err
	}
	cur := look{}

	written := 0
	for i := 0; i < c.buf.len(); i++ {
		if !c.redraw && c.buf.hidden[i] == c.buf.display[i] {
			continue
		}
		cell := c.buf.hidden[i]
		pos := c.buf.indexToPos(i)

		c.moveTo(pos.X, pos.Y)

		next := look{fg: cell.Fg, bg: cell.Bg, attrs: cell.Attrs}
		if next != cur {
			cur = c.applyLook(cur, next)
		}

		r := cell.Rune
		if r == 0 {
			r = ' '
		}
		if _, err := c.out.WriteRune(r); err != nil {
			return written, err
		}
		written++
	}

	if err := c.out.Flush(); err != nil {
		return written, err
	}
	c.redraw = false
	c.buf.swap(blankCell(c.background))
	return written, nil
}

func (c *Canvas) moveTo(x, y int) {
	c.out.WriteString(termenv.CSI)
	c.out.WriteString(strconv.Itoa(y + 1))
	c.out.WriteByte(';')
	c.out.WriteString(strconv.Itoa(x + 1))
	c.out.WriteByte('H')
}

// applyLook writes the minimal transition from cur to next. An
// attribute change resets everything first, so colors are reapplied.
func (c *Canvas) applyLook(cur, next look) look {
	if cur.attrs != next.attrs {
		c.out.WriteString(termenv.CSI + termenv.ResetSeq + "m")
		if seq := attrSeq(next.attrs); seq != "" {
			c.out.WriteString(seq)
		}
		if next.fg.IsSet() {
			c.out.WriteString(c.seqs.get(next.fg, false))
		}
		if next.bg.IsSet() {
			c.out.WriteString(c.seqs.get(next.bg, true))
		}
		return next
	}
	if cur.bg != next.bg {
		c.out.WriteString(c.seqs.get(next.bg, true))
	}
	if cur.fg != next.fg {
		c.out.WriteString(c.seqs.get(next.fg, false))
	}
	return next
}
