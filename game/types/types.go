package types

import "time"

// Point is a grid cell, 0-indexed from the top-left corner.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions in tiles
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// GridFromCanvas derives the tile grid of a pixel canvas.
func GridFromCanvas(canvasWidth, canvasHeight, tileSize int) Grid {
	if tileSize <= 0 {
		return Grid{}
	}
	return Grid{Width: canvasWidth / tileSize, Height: canvasHeight / tileSize}
}

// Movement directions. A direction is always one of these unit vectors.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// IsDirection reports whether d is one of the four unit vectors.
func IsDirection(d Point) bool {
	return d == Up || d == Down || d == Left || d == Right
}

// Opposite returns the reverse of d.
func Opposite(d Point) Point {
	return Point{X: -d.X, Y: -d.Y}
}

// Game constants
const (
	FoodReward    = 10 // Points per food eaten
	InitialLength = 3  // Segments at reset
	MinGridWidth  = InitialLength + 1
	MinGridHeight = 1

	DefaultTileSize     = 20
	DefaultCanvasWidth  = 400
	DefaultCanvasHeight = 400
	DefaultTickInterval = 150 * time.Millisecond
)
