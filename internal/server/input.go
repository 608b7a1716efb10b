package server

import (
	"unicode/utf8"

	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

// parseInput converts raw terminal bytes into intents.
// Handles arrow key escape sequences, hjkl/WASD, q, Ctrl-C and a lone Esc.
func parseInput(data []byte) []ui.Intent {
	if len(data) == 1 && data[0] == 0x1b {
		return []ui.Intent{ui.IntentQuit}
	}

	var intents []ui.Intent
	i := 0
	for i < len(data) {
		// Arrow keys: ESC [ A-D
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				intents = append(intents, ui.IntentUp)
			case 'B':
				intents = append(intents, ui.IntentDown)
			case 'C':
				intents = append(intents, ui.IntentRight)
			case 'D':
				intents = append(intents, ui.IntentLeft)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == 3 { // Ctrl-C
			intents = append(intents, ui.IntentQuit)
		} else if intent := ui.IntentForRune(r); intent != ui.IntentNone {
			intents = append(intents, intent)
		}
		i += size
	}
	return intents
}
