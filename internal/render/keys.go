package render

import "github.com/gdamore/tcell/v2"

// Action is an input command decoded from a key event.
type Action uint8

const (
	ActionNone Action = iota
	// Ghost override (arrow keys)
	ActionGhostUp
	ActionGhostDown
	ActionGhostLeft
	ActionGhostRight
	// Player movement (WASD)
	ActionPlayerUp
	ActionPlayerDown
	ActionPlayerLeft
	ActionPlayerRight
	ActionRespawn
	ActionStrike
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionGhostUp
	case tcell.KeyDown:
		return ActionGhostDown
	case tcell.KeyLeft:
		return ActionGhostLeft
	case tcell.KeyRight:
		return ActionGhostRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}
	switch ev.Rune() {
	case 'w', 'W':
		return ActionPlayerUp
	case 's', 'S':
		return ActionPlayerDown
	case 'a', 'A':
		return ActionPlayerLeft
	case 'd', 'D':
		return ActionPlayerRight
	case ' ':
		return ActionRespawn
	case 'f', 'F':
		return ActionStrike
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}
