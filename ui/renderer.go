package ui

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10  // Padding around game area
	statsPanel    = 200 // Width of the stats panel right of the grid
	graphHeight   = 120
)

var (
	headColor   = rl.DarkGreen
	bodyColor   = rl.Color{R: 144, G: 238, B: 144, A: 255}
	foodColor   = rl.Red
	foodBorder  = rl.Maroon
	borderColor = rl.Color{R: 51, G: 51, B: 51, A: 255}
)

// Renderer draws snapshots into a raylib window: the canvas on the left
// and a stats panel on the right.
type Renderer struct {
	cellSize     int32
	canvasWidth  int32
	canvasHeight int32
	offsetX      int32
	offsetY      int32
	resetButton  rl.Rectangle
}

func NewRenderer(tileSize, canvasWidth, canvasHeight int) *Renderer {
	r := &Renderer{
		cellSize:     int32(tileSize),
		canvasWidth:  int32(canvasWidth),
		canvasHeight: int32(canvasHeight),
		offsetX:      borderPadding,
		offsetY:      borderPadding,
	}
	r.resetButton = rl.Rectangle{
		X:      float32(r.offsetX + r.canvasWidth/2 - 60),
		Y:      float32(r.offsetY + r.canvasHeight/2 + 50),
		Width:  120,
		Height: 36,
	}
	return r
}

// WindowSize is the window needed for the canvas plus the stats panel.
func (r *Renderer) WindowSize() (int32, int32) {
	return r.canvasWidth + statsPanel + borderPadding*3, r.canvasHeight + borderPadding*2
}

// ResetButton is the clickable area shown on game over.
func (r *Renderer) ResetButton() rl.Rectangle {
	return r.resetButton
}

func (r *Renderer) Draw(snap game.Snapshot, stats *manager.StatsManager) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Canvas border turns red on game over
	border := borderColor
	if snap.GameOver {
		border = rl.Red
	}
	rl.DrawRectangle(r.offsetX-2, r.offsetY-2, r.canvasWidth+4, r.canvasHeight+4, border)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.canvasWidth, r.canvasHeight, rl.White)

	if snap.HasFood {
		r.drawCell(snap.Grid, snap.Food, foodColor, foodBorder)
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.drawCell(snap.Grid, snap.Snake[i], headColor, rl.DarkGreen)
			r.drawDirection(snap.Grid, snap.Snake[i], snap.Direction)
		} else {
			r.drawCell(snap.Grid, snap.Snake[i], bodyColor, rl.DarkGreen)
		}
	}

	r.drawStatsPanel(snap, stats)

	if snap.GameOver {
		r.drawGameOver(snap)
	}
	rl.EndDrawing()
}

// drawCell skips cells outside the grid, e.g. the head after a wall hit.
func (r *Renderer) drawCell(grid types.Grid, p types.Point, fill, stroke rl.Color) {
	if !grid.Contains(p) {
		return
	}
	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(p.Y)*r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, fill)
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, stroke)
}

// drawDirection puts a small triangle on the head pointing where it moves.
func (r *Renderer) drawDirection(grid types.Grid, head, dir types.Point) {
	if !grid.Contains(head) {
		return
	}
	headX := float32(r.offsetX + int32(head.X)*r.cellSize)
	headY := float32(r.offsetY + int32(head.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a, b, c = rl.Vector2{X: headX + cell, Y: headY + half}, rl.Vector2{X: headX + half, Y: headY}, rl.Vector2{X: headX + half, Y: headY + cell}
	case types.Left:
		a, b, c = rl.Vector2{X: headX, Y: headY + half}, rl.Vector2{X: headX + half, Y: headY + cell}, rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a, b, c = rl.Vector2{X: headX + half, Y: headY + cell}, rl.Vector2{X: headX + cell, Y: headY + half}, rl.Vector2{X: headX, Y: headY + half}
	default:
		a, b, c = rl.Vector2{X: headX + half, Y: headY}, rl.Vector2{X: headX, Y: headY + half}, rl.Vector2{X: headX + cell, Y: headY + half}
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, stats *manager.StatsManager) {
	statsX := r.offsetX + r.canvasWidth + borderPadding*2
	statsY := r.offsetY
	fontSize := int32(20)
	lineHeight := fontSize + 6

	rl.DrawRectangle(statsX-5, 0, statsPanel+5, r.canvasHeight+borderPadding*2, rl.DarkGray)

	rl.DrawText(fmt.Sprintf("Score: %d", snap.Score), statsX, statsY, fontSize, rl.White)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Best: %d", stats.HighScore()), statsX, statsY, fontSize, rl.Green)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Games: %d", stats.GamesPlayed()), statsX, statsY, fontSize-4, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Avg: %.1f", stats.AverageScore()), statsX, statsY, fontSize-4, rl.LightGray)
	statsY += lineHeight
	rl.DrawText(fmt.Sprintf("Length: %d", len(snap.Snake)), statsX, statsY, fontSize-4, rl.LightGray)

	r.drawScoreGraph(statsX, r.canvasHeight+borderPadding-graphHeight, stats)
}

// drawScoreGraph plots the kept score history, oldest on the left.
func (r *Renderer) drawScoreGraph(graphX, graphY int32, stats *manager.StatsManager) {
	graphWidth := int32(statsPanel - 10)
	rl.DrawRectangleLines(graphX, graphY, graphWidth, graphHeight, rl.White)
	rl.DrawText("History", graphX, graphY-18, 14, rl.White)

	history := stats.History()
	if len(history) < 2 {
		return
	}
	maxScore := types.FoodReward
	for _, g := range history {
		if g.Score > maxScore {
			maxScore = g.Score
		}
	}

	step := float32(graphWidth) / float32(len(history)-1)
	y := func(score int) int32 {
		return graphY + graphHeight - int32(float32(graphHeight)*float32(score)/float32(maxScore))
	}
	for j := 1; j < len(history); j++ {
		x1 := graphX + int32(step*float32(j-1))
		x2 := graphX + int32(step*float32(j))
		rl.DrawLine(x1, y(history[j-1].Score), x2, y(history[j].Score), rl.Green)
	}

	// Dashed average line
	avgY := graphY + graphHeight - int32(float32(graphHeight)*float32(stats.AverageScore())/float32(maxScore))
	for x := graphX; x < graphX+graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, rl.Purple)
	}
}

func (r *Renderer) drawGameOver(snap game.Snapshot) {
	rl.DrawRectangle(r.offsetX, r.offsetY, r.canvasWidth, r.canvasHeight, rl.Color{R: 0, G: 0, B: 0, A: 190})

	centerX := r.offsetX + r.canvasWidth/2
	centerY := r.offsetY + r.canvasHeight/2

	title := "GAME OVER"
	w := rl.MeasureText(title, 40)
	rl.DrawText(title, centerX-w/2, centerY-40, 40, rl.White)

	final := fmt.Sprintf("Final Score: %d", snap.Score)
	w = rl.MeasureText(final, 20)
	rl.DrawText(final, centerX-w/2, centerY+10, 20, rl.White)

	btn := r.resetButton
	fill := rl.Gray
	if rl.CheckCollisionPointRec(rl.GetMousePosition(), btn) {
		fill = rl.LightGray
	}
	rl.DrawRectangleRec(btn, fill)
	rl.DrawRectangleLinesEx(btn, 2, rl.White)
	label := "Reset"
	w = rl.MeasureText(label, 20)
	rl.DrawText(label, int32(btn.X)+(int32(btn.Width)-w)/2, int32(btn.Y)+8, 20, rl.Black)
}
