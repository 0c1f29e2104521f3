package terminal

import (
	"grid-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionTurn
	ActionReset
	ActionQuit
)

// MapKey translates a tcell key into an action. For ActionTurn the
// direction is returned as well.
func MapKey(key tcell.Key, r rune) (Action, types.Point) {
	switch key {
	case tcell.KeyUp:
		return ActionTurn, types.Up
	case tcell.KeyDown:
		return ActionTurn, types.Down
	case tcell.KeyLeft:
		return ActionTurn, types.Left
	case tcell.KeyRight:
		return ActionTurn, types.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, types.Point{}
	case tcell.KeyEnter:
		return ActionReset, types.Point{}
	case tcell.KeyRune:
		return mapRune(r)
	}
	return ActionNone, types.Point{}
}

func mapRune(r rune) (Action, types.Point) {
	switch r {
	case 'w', 'W', 'k':
		return ActionTurn, types.Up
	case 's', 'S', 'j':
		return ActionTurn, types.Down
	case 'a', 'A', 'h':
		return ActionTurn, types.Left
	case 'd', 'D', 'l':
		return ActionTurn, types.Right
	case 'r', 'R':
		return ActionReset, types.Point{}
	case 'q', 'Q':
		return ActionQuit, types.Point{}
	}
	return ActionNone, types.Point{}
}
