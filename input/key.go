package input

// KeyCode identifies a key independent of the bytes that encoded it.
type KeyCode int

// Key codes produced by the parser.
const (
	// KeyRune is a printable character; the character itself is in
	// KeyEvent.Rune.
	KeyRune KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyDelete
	KeyPageUp
	KeyPageDown
)

// String returns a human-readable key name.
func (k KeyCode) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyBackspace:
		return "backspace"
	case KeyTab:
		return "tab"
	case KeySpace:
		return "space"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyDelete:
		return "delete"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	default:
		return "unknown"
	}
}

// Modifier is a bitmask of modifier keys held during a keystroke.
type Modifier uint8

// Modifier bits.
const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// Has reports whether all bits in m are set.
func (mod Modifier) Has(m Modifier) bool { return mod&m == m }

// KeyEvent is a single decoded keystroke.
type KeyEvent struct {
	Code KeyCode
	// Rune holds the character when Code is KeyRune, or the letter
	// when ModCtrl or ModAlt is set (always lowercase for Ctrl).
	Rune rune
	Mod  Modifier
}

// Is reports whether the event is the given printable character with
// no modifiers.
func (e KeyEvent) Is(r rune) bool {
	return e.Code == KeyRune && e.Rune == r && e.Mod&(ModCtrl|ModAlt) == 0
}

// IsCtrl reports whether the event is Ctrl plus the given letter.
func (e KeyEvent) IsCtrl(r rune) bool {
	return e.Mod.Has(ModCtrl) && e.Rune == r
}
