package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision inspects the snake's current head only. Walls win over self
// hits, since an out-of-grid head cannot overlap the body anyway.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	head := snake.GetHead()
	if cm.isWallCollision(head) {
		return WallCollision
	}
	if cm.isSelfCollision(head, snake) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision compares the head against every other segment (index >= 1).
func (cm *CollisionManager) isSelfCollision(head types.Point, snake *entity.Snake) bool {
	for i := 1; i < len(snake.Body); i++ {
		if snake.Body[i] == head {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
