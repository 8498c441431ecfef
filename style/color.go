package style

import "fmt"

type colorKind uint8

const (
	colorNone colorKind = iota
	colorANSI
	colorRGB
)

// Color is a terminal color: unset, one of the 16 named ANSI colors,
// or a 24-bit RGB value. The zero value is unset.
type Color struct {
	kind colorKind
	ansi uint8
	r    uint8
	g    uint8
	b    uint8
}

// The 16 named ANSI colors. The dark variants map to the base palette
// (0-7), the bright variants to the high palette (8-15).
var (
	Black       = ansiColor(0)
	DarkRed     = ansiColor(1)
	DarkGreen   = ansiColor(2)
	DarkYellow  = ansiColor(3)
	DarkBlue    = ansiColor(4)
	DarkMagenta = ansiColor(5)
	DarkCyan    = ansiColor(6)
	Grey        = ansiColor(7)
	DarkGrey    = ansiColor(8)
	Red         = ansiColor(9)
	Green       = ansiColor(10)
	Yellow      = ansiColor(11)
	Blue        = ansiColor(12)
	Magenta     = ansiColor(13)
	Cyan        = ansiColor(14)
	White       = ansiColor(15)
)

func ansiColor(n uint8) Color {
	return Color{kind: colorANSI, ansi: n}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsSet reports whether c is a real color rather than the unset zero value.
func (c Color) IsSet() bool {
	return c.kind != colorNone
}

// ANSI reports the palette index and whether c is a named ANSI color.
func (c Color) ANSI() (uint8, bool) {
	return c.ansi, c.kind == colorANSI
}

// ansiRGB approximates the standard palette for blending; actual
// terminal rendering keeps the palette index.
var ansiRGB = [16][3]uint8{
	{0, 0, 0}, {170, 0, 0}, {0, 170, 0}, {170, 85, 0},
	{0, 0, 170}, {170, 0, 170}, {0, 170, 170}, {170, 170, 170},
	{85, 85, 85}, {255, 85, 85}, {85, 255, 85}, {255, 255, 85},
	{85, 85, 255}, {255, 85, 255}, {85, 255, 255}, {255, 255, 255},
}

// RGBA returns the 8-bit RGB components of c. Unset colors report black.
func (c Color) RGBA() (r, g, b uint8) {
	switch c.kind {
	case colorANSI:
		v := ansiRGB[c.ansi&0x0f]
		return v[0], v[1], v[2]
	case colorRGB:
		return c.r, c.g, c.b
	}
	return 0, 0, 0
}

// Hex returns the #rrggbb form of c, useful for profile conversion.
func (c Color) Hex() string {
	r, g, b := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String returns a debug representation.
func (c Color) String() string {
	switch c.kind {
	case colorANSI:
		return fmt.Sprintf("ansi(%d)", c.ansi)
	case colorRGB:
		return c.Hex()
	}
	return "unset"
}
