package input

import "unicode/utf8"

// parseKey decodes one key event from the front of buf. It returns the
// event, the number of bytes consumed, and whether an event was
// produced. A return of (0, false) means more bytes are needed;
// (n, false) with n > 0 means n bytes were consumed without producing
// an event (unrecognized sequence). final indicates no further bytes
// are immediately pending, which lets a lone ESC byte resolve to the
// Escape key instead of waiting for a sequence that will never come.
func parseKey(buf []byte, final bool) (KeyEvent, int, bool) {
	if len(buf) == 0 {
		return KeyEvent{}, 0, false
	}

	if buf[0] == 0x1b {
		return parseEscape(buf, final)
	}

	switch b := buf[0]; {
	case b == '\r' || b == '\n':
		return KeyEvent{Code: KeyEnter}, 1, true
	case b == '\t':
		return KeyEvent{Code: KeyTab}, 1, true
	case b == 0x7f || b == 0x08:
		return KeyEvent{Code: KeyBackspace}, 1, true
	case b == ' ':
		return KeyEvent{Code: KeySpace, Rune: ' '}, 1, true
	case b == 0x00:
		return KeyEvent{Code: KeySpace, Rune: ' ', Mod: ModCtrl}, 1, true
	case b < 0x20:
		// Ctrl+A through Ctrl+Z arrive as bytes 0x01-0x1a.
		return KeyEvent{Code: KeyRune, Rune: rune('a' + b - 1), Mod: ModCtrl}, 1, true
	}

	r, n := utf8.DecodeRune(buf)
	if r == utf8.RuneError && n == 1 {
		if !final && !utf8.FullRune(buf) {
			return KeyEvent{}, 0, false
		}
		return KeyEvent{}, 1, false
	}
	ev := KeyEvent{Code: KeyRune, Rune: r}
	if r >= 'A' && r <= 'Z' {
		ev.Mod = ModShift
	}
	return ev, n, true
}

func parseEscape(buf []byte, final bool) (KeyEvent, int, bool) {
	if len(buf) == 1 {
		if final {
			return KeyEvent{Code: KeyEscape}, 1, true
		}
		return KeyEvent{}, 0, false
	}

	switch buf[1] {
	case '[':
		return parseCSI(buf)
	case 'O':
		return parseSS3(buf)
	case 0x1b:
		return KeyEvent{Code: KeyEscape}, 1, true
	}

	// ESC prefix marks the Alt modifier on the key that follows.
	ev, n, ok := parseKey(buf[1:], final)
	if !ok {
		if n == 0 {
			return KeyEvent{}, 0, false
		}
		return KeyEvent{}, 1 + n, false
	}
	ev.Mod |= ModAlt
	return ev, 1 + n, true
}

// parseCSI decodes Control Sequence Introducer sequences of the form
// ESC [ params final, where params are digits and semicolons and the
// final byte is in 0x40-0x7e.
func parseCSI(buf []byte) (KeyEvent, int, bool) {
	i := 2
	for i < len(buf) {
		if b := buf[i]; b >= 0x40 && b <= 0x7e {
			break
		}
		i++
	}
	if i >= len(buf) {
		return KeyEvent{}, 0, false
	}
	params, fin := buf[2:i], buf[i]
	n := i + 1

	var code KeyCode
	switch fin {
	case 'A':
		code = KeyUp
	case 'B':
		code = KeyDown
	case 'C':
		code = KeyRight
	case 'D':
		code = KeyLeft
	case 'H':
		code = KeyHome
	case 'F':
		code = KeyEnd
	case '~':
		first, _ := splitParams(params)
		switch first {
		case 1, 7:
			code = KeyHome
		case 4, 8:
			code = KeyEnd
		case 3:
			code = KeyDelete
		case 5:
			code = KeyPageUp
		case 6:
			code = KeyPageDown
		default:
			return KeyEvent{}, n, false
		}
	default:
		return KeyEvent{}, n, false
	}

	_, mod := splitParams(params)
	return KeyEvent{Code: code, Mod: mod}, n, true
}

// parseSS3 decodes ESC O sequences, used by terminals in application
// cursor mode.
func parseSS3(buf []byte) (KeyEvent, int, bool) {
	if len(buf) < 3 {
		return KeyEvent{}, 0, false
	}
	var code KeyCode
	switch buf[2] {
	case 'A':
		code = KeyUp
	case 'B':
		code = KeyDown
	case 'C':
		code = KeyRight
	case 'D':
		code = KeyLeft
	case 'H':
		code = KeyHome
	case 'F':
		code = KeyEnd
	default:
		return KeyEvent{}, 3, false
	}
	return KeyEvent{Code: code}, 3, true
}

// splitParams parses "first" and "first;mod" CSI parameter lists. The
// modifier parameter encodes held keys as 1 plus a bitmask of
// shift=1, alt=2, ctrl=4.
func splitParams(params []byte) (int, Modifier) {
	first, rest := atoiPrefix(params)
	var mod Modifier
	if len(rest) > 0 && rest[0] == ';' {
		m, _ := atoiPrefix(rest[1:])
		if m > 0 {
			bits := m - 1
			if bits&1 != 0 {
				mod |= ModShift
			}
			if bits&2 != 0 {
				mod |= ModAlt
			}
			if bits&4 != 0 {
				mod |= ModCtrl
			}
		}
	}
	return first, mod
}

func atoiPrefix(b []byte) (int, []byte) {
	n := 0
	for len(b) > 0 && b[0] >= '0' && b[0] <= '9' {
		n = n*10 + int(b[0]-'0')
		b = b[1:]
	}
	return n, b
}
