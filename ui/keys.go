package ui

import (
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = []struct {
	key int32
	dir types.Point
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
}

// PressedDirection returns the direction of the first movement key pressed
// this frame.
func PressedDirection() (types.Point, bool) {
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			return k.dir, true
		}
	}
	return types.Point{}, false
}

// ResetRequested reports a reset key press or a click on button.
func ResetRequested(button rl.Rectangle) bool {
	if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter) {
		return true
	}
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft) &&
		rl.CheckCollisionPointRec(rl.GetMousePosition(), button)
}

func QuitRequested() bool {
	return rl.IsKeyPressed(rl.KeyQ)
}
