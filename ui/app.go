package ui

import (
	"time"

	"grid-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and plays until it is closed. raylib is single
// threaded, so ticks are polled from the frame loop.
func Run(session *game.Session, interval time.Duration, tileSize, canvasWidth, canvasHeight int) error {
	renderer := NewRenderer(tileSize, canvasWidth, canvasHeight)
	width, height := renderer.WindowSize()

	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(60)

	sched := game.NewScheduler(interval)
	for !rl.WindowShouldClose() {
		if QuitRequested() {
			break
		}

		snap := session.Snapshot()
		if snap.GameOver {
			if ResetRequested(renderer.ResetButton()) {
				if err := session.Restart(); err != nil {
					return err
				}
				sched.Restart(time.Now())
			}
		} else if dir, ok := PressedDirection(); ok {
			session.SetDirection(dir)
		}

		sched.Poll(time.Now(), session)
		renderer.Draw(session.Snapshot(), session.Stats())
	}
	return nil
}
