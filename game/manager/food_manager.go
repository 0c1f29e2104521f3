package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// randomAttemptsPerCell bounds the rejection loop before falling back to a
// scan of the free cells.
const randomAttemptsPerCell = 4

type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// GenerateFood picks a uniformly random cell that no segment occupies.
// ok is false only when the snake covers the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	area := fm.grid.Area()
	if area == 0 {
		return types.Point{}, false
	}
	for i := 0; i < area*randomAttemptsPerCell; i++ {
		food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !snake.Occupies(food) {
			return food, true
		}
	}

	// Crowded grid: choose among the remaining free cells directly.
	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, part := range snake.Body {
		occupied[part] = struct{}{}
	}
	var free []types.Point
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free
}
