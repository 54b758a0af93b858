package tui

import "github.com/gdamore/tcell/v2"

type action int

const (
	actionNone action = iota
	actionClick
	actionStepBack
	actionStepForward
	actionNewGame
	actionQuit
	actionFocusNext
	actionFocusPrev
)

// actionFor - maps a key to an action. For actionClick the cell index is
// returned as well.
func actionFor(event *tcell.EventKey) (action, int) {
	switch event.Key() {
	case tcell.KeyTab:
		return actionFocusNext, 0
	case tcell.KeyBacktab:
		return actionFocusPrev, 0
	case tcell.KeyRune:
	default:
		return actionNone, 0
	}

	switch r := event.Rune(); {
	case r >= '1' && r <= '9':
		return actionClick, int(r - '1')
	case r == '[':
		return actionStepBack, 0
	case r == ']':
		return actionStepForward, 0
	case r == 'n' || r == 'N':
		return actionNewGame, 0
	case r == 'q' || r == 'Q':
		return actionQuit, 0
	default:
		return actionNone, 0
	}
}
