package game

import (
	"errors"
	"fmt"
	"time"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// ErrInvalidGrid is returned when the grid cannot hold the starting snake.
var ErrInvalidGrid = errors.New("invalid grid dimensions")

// Phase is the engine state: Running until a collision, then GameOver
// until the next Reset.
type Phase int

const (
	Running Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game over"
	}
	return "running"
}

// Game owns one session of play. It is not safe for concurrent use; wrap it
// in a Session when ticks and input arrive on different goroutines.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time

	snake     *entity.Snake
	food      types.Point
	hasFood   bool
	score     int
	phase     Phase
	latch     turnLatch
	collision manager.CollisionType
	ateLast   bool
	ticks     int

	rng          *rand.Rand
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSeed makes food placement reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for food placement.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// New creates a game and resets it to the starting layout.
func New(width, height int, opts ...Option) (*Game, error) {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.Reset(width, height); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset discards the current session and starts a new one on a
// width x height grid: a three segment snake centred on the grid, facing
// right, score zero, fresh food.
func (g *Game) Reset(width, height int) error {
	if width < types.MinGridWidth || height < types.MinGridHeight {
		return fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidGrid,
			width, height, types.MinGridWidth, types.MinGridHeight)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	g.Grid = types.Grid{Width: width, Height: height}
	g.UUID = uuid.New().String()
	g.StartTime = time.Now()

	g.collisionMgr = manager.NewCollisionManager(g.Grid)
	g.foodMgr = manager.NewFoodManager(g.Grid, g.rng)

	center := types.Point{X: width / 2, Y: height / 2}
	g.snake = entity.NewSnake(center, types.InitialLength)
	g.score = 0
	g.phase = Running
	g.collision = manager.NoCollision
	g.ateLast = false
	g.ticks = 0
	g.latch.open()

	g.placeFood()
	return nil
}

// SetDirection requests a turn for the next tick. The request is dropped
// when the game is over, when a turn was already taken this tick, when dir
// is not a unit vector, or when dir would reverse the snake into its neck.
// It reports whether the direction was applied.
func (g *Game) SetDirection(dir types.Point) bool {
	if g.phase == GameOver || g.latch.closed() {
		return false
	}
	if !types.IsDirection(dir) || dir == types.Opposite(g.snake.Direction) {
		return false
	}
	g.snake.Direction = dir
	g.latch.close()
	return true
}

// Tick advances the game by one cell. After game over it changes nothing
// and returns the frozen state.
func (g *Game) Tick() Snapshot {
	if g.phase == GameOver {
		return g.Snapshot()
	}

	g.ticks++
	newHead := g.snake.NextHead()
	g.snake.Move(newHead)

	g.ateLast = g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.food)
	if g.ateLast {
		g.score += types.FoodReward
		g.placeFood()
	} else {
		g.snake.RemoveTail()
	}

	if c := g.collisionMgr.CheckCollision(g.snake); c != manager.NoCollision {
		g.collision = c
		g.phase = GameOver
	}

	g.latch.open()
	return g.Snapshot()
}

func (g *Game) placeFood() {
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake)
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) IsOver() bool {
	return g.phase == GameOver
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Direction() types.Point {
	return g.snake.Direction
}

func (g *Game) GetFood() (types.Point, bool) {
	return g.food, g.hasFood
}

// Snapshot returns a copy of the observable state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID: g.UUID,
		Grid:      g.Grid,
		Snake:     g.snake.Segments(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Direction: g.snake.Direction,
		Score:     g.score,
		GameOver:  g.phase == GameOver,
		Collision: g.collision,
		Ate:       g.ateLast,
		Ticks:     g.ticks,
	}
}
