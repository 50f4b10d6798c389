package input

import "github.com/gdamore/tcell/v2"

// FromTcell translates a terminal key event to a game key symbol
func FromTcell(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyUp:
		return KeyBoost, true
	case tcell.KeyDown:
		return KeyBrake, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return KeyLeft, true
		case 'd', 'D':
			return KeyRight, true
		case 'w', 'W':
			return KeyBoost, true
		case 's', 'S':
			return KeyBrake, true
		case 'f', 'F', ' ':
			return KeyFan, true
		case 'k', 'K':
			return KeyKill, true
		case 'q', 'Q':
			return KeyQuit, true
		}
	}
	return 0, false
}
