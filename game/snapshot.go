package game

import (
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

// Snapshot is the observable state handed to renderers and schedulers.
// Snake is a copy, head first.
type Snapshot struct {
	SessionID string
	Grid      types.Grid
	Snake     []types.Point
	Food      types.Point
	HasFood   bool
	Direction types.Point
	Score     int
	GameOver  bool
	Collision manager.CollisionType
	Ate       bool // food eaten on the last tick
	Ticks     int
}

// Head returns the first segment.
func (s Snapshot) Head() types.Point {
	if len(s.Snake) == 0 {
		return types.Point{}
	}
	return s.Snake[0]
}
