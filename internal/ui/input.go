package ui

import "github.com/gdamore/tcell/v2"

// Intent is a decoded player command.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentUp
	IntentDown
	IntentQuit
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}

// Delta returns the unit movement for a move intent, (0, 0) otherwise.
func (i Intent) Delta() (dx, dy int) {
	switch i {
	case IntentLeft:
		return -1, 0
	case IntentRight:
		return 1, 0
	case IntentUp:
		return 0, -1
	case IntentDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// IsMove reports whether the intent requests movement.
func (i Intent) IsMove() bool {
	dx, dy := i.Delta()
	return dx != 0 || dy != 0
}

// IntentForRune maps letter keys (hjkl, wasd, q) to intents.
func IntentForRune(r rune) Intent {
	switch r {
	case 'h', 'H', 'a', 'A':
		return IntentLeft
	case 'l', 'L', 'd', 'D':
		return IntentRight
	case 'k', 'K', 'w', 'W':
		return IntentUp
	case 'j', 'J', 's', 'S':
		return IntentDown
	case 'q', 'Q':
		return IntentQuit
	default:
		return IntentNone
	}
}

// DecodeKey translates a key event into an intent. Unrecognized keys are IntentNone.
func DecodeKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyUp:
		return IntentUp
	case tcell.KeyDown:
		return IntentDown
	case tcell.KeyLeft:
		return IntentLeft
	case tcell.KeyRight:
		return IntentRight
	case tcell.KeyRune:
		return IntentForRune(ev.Rune())
	}
	return IntentNone
}
