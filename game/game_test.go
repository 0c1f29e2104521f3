package game

import (
	"errors"
	"testing"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

func newTestGame(t *testing.T, width, height int) *Game {
	t.Helper()
	g, err := New(width, height, WithSeed(1))
	if err != nil {
		t.Fatalf("New(%d, %d): %v", width, height, err)
	}
	return g
}

// place puts the snake and food where the test needs them.
func place(g *Game, body []types.Point, dir types.Point, food types.Point) {
	g.snake = &entity.Snake{Body: body, Direction: dir}
	g.food = food
	g.hasFood = true
}

func samePoints(a, b []types.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResetInitialLayout(t *testing.T) {
	g := newTestGame(t, 20, 20)
	snap := g.Snapshot()
	want := []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	if !samePoints(snap.Snake, want) {
		t.Fatalf("initial snake = %v, want %v", snap.Snake, want)
	}
	if snap.Direction != types.Right {
		t.Fatalf("initial direction = %v, want right", snap.Direction)
	}
	if snap.Score != 0 || snap.GameOver || snap.Ticks != 0 {
		t.Fatalf("unexpected initial state: %+v", snap)
	}
	if !snap.HasFood || !snap.Grid.Contains(snap.Food) {
		t.Fatalf("expected food inside grid, got %v (has=%v)", snap.Food, snap.HasFood)
	}
	for _, p := range snap.Snake {
		if p == snap.Food {
			t.Fatalf("food %v placed on snake", snap.Food)
		}
	}
	if snap.SessionID == "" {
		t.Fatal("expected a session id")
	}
}

func TestResetRejectsTinyGrid(t *testing.T) {
	if _, err := New(3, 10); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid for 3x10, got %v", err)
	}
	if _, err := New(10, 0); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid for 10x0, got %v", err)
	}

	g := newTestGame(t, 20, 20)
	before := g.Snapshot()
	if err := g.Reset(2, 2); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
	after := g.Snapshot()
	if after.SessionID != before.SessionID || !samePoints(after.Snake, before.Snake) {
		t.Fatal("failed reset must leave the game untouched")
	}
}

func TestResetStartsNewSession(t *testing.T) {
	g := newTestGame(t, 20, 20)
	first := g.UUID
	place(g, []types.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}, types.Left, types.Point{X: 15, Y: 15})
	g.Tick()
	if !g.IsOver() {
		t.Fatal("expected game over after hitting the wall")
	}
	if err := g.Reset(10, 8); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if g.IsOver() || g.Score() != 0 || g.Phase() != Running {
		t.Fatal("reset must return to a running game with zero score")
	}
	if g.UUID == first {
		t.Fatal("reset must mint a new session id")
	}
	if g.Grid != (types.Grid{Width: 10, Height: 8}) {
		t.Fatalf("unexpected grid %v", g.Grid)
	}
	if g.snake.GetHead() != (types.Point{X: 5, Y: 4}) {
		t.Fatalf("unexpected head %v", g.snake.GetHead())
	}
}

func TestTickMovesWithoutFood(t *testing.T) {
	g := newTestGame(t, 20, 20)
	place(g, []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}, types.Right, types.Point{X: 0, Y: 0})

	snap := g.Tick()
	want := []types.Point{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	if !samePoints(snap.Snake, want) {
		t.Fatalf("snake = %v, want %v", snap.Snake, want)
	}
	if snap.Score != 0 || snap.GameOver || snap.Ate {
		t.Fatalf("unexpected state after plain move: %+v", snap)
	}
}

func TestTickWallCollision(t *testing.T) {
	g := newTestGame(t, 20, 20)
	place(g, []types.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}, types.Left, types.Point{X: 15, Y: 15})

	snap := g.Tick()
	if snap.Head() != (types.Point{X: -1, Y: 10}) {
		t.Fatalf("head = %v, want (-1,10)", snap.Head())
	}
	if !snap.GameOver || snap.Collision != manager.WallCollision {
		t.Fatalf("expected wall game over, got over=%v collision=%v", snap.GameOver, snap.Collision)
	}
}

func TestTickSelfCollision(t *testing.T) {
	g := newTestGame(t, 20, 20)
	body := []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}
	place(g, body, types.Down, types.Point{X: 0, Y: 0})

	snap := g.Tick()
	if !snap.GameOver || snap.Collision != manager.SelfCollision {
		t.Fatalf("expected self collision, got over=%v collision=%v", snap.GameOver, snap.Collision)
	}
}

func TestTickIntoVacatedTailIsSafe(t *testing.T) {
	g := newTestGame(t, 20, 20)
	body := []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	place(g, body, types.Down, types.Point{X: 0, Y: 0})

	snap := g.Tick()
	if snap.GameOver {
		t.Fatalf("moving into the cell the tail leaves must be legal, got %v", snap.Collision)
	}
}

func TestTickEatsFood(t *testing.T) {
	g := newTestGame(t, 20, 20)
	place(g, []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, types.Right, types.Point{X: 6, Y: 5})

	snap := g.Tick()
	if snap.Score != 10 {
		t.Fatalf("score = %d, want 10", snap.Score)
	}
	if len(snap.Snake) != 4 {
		t.Fatalf("length = %d, want 4", len(snap.Snake))
	}
	if !snap.Ate {
		t.Fatal("expected Ate on the eating tick")
	}
	if !snap.HasFood {
		t.Fatal("expected new food")
	}
	for _, p := range snap.Snake {
		if p == snap.Food {
			t.Fatalf("new food %v placed on snake", snap.Food)
		}
	}

	place(g, g.snake.Body, types.Right, types.Point{X: 0, Y: 0})
	if snap := g.Tick(); snap.Ate {
		t.Fatal("Ate must be cleared on the next plain tick")
	}
}

func TestFilledGridHasNoFood(t *testing.T) {
	g := newTestGame(t, 4, 1)
	// The only free cell on a 4x1 grid is right ahead of the head.
	if food, ok := g.GetFood(); !ok || food != (types.Point{X: 3, Y: 0}) {
		t.Fatalf("expected food at (3,0), got %v ok=%v", food, ok)
	}
	snap := g.Tick()
	if snap.Score != 10 || len(snap.Snake) != 4 || snap.GameOver {
		t.Fatalf("unexpected state after eating: %+v", snap)
	}
	if snap.HasFood {
		t.Fatal("a full grid cannot hold food")
	}
	snap = g.Tick()
	if !snap.GameOver || snap.Collision != manager.WallCollision {
		t.Fatalf("expected wall collision, got %+v", snap)
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	g := newTestGame(t, 20, 20)
	place(g, []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, types.Right, types.Point{X: 0, Y: 0})

	if g.SetDirection(types.Left) {
		t.Fatal("reversal must be rejected")
	}
	if g.Direction() != types.Right {
		t.Fatalf("direction = %v, want right", g.Direction())
	}
	// A rejected request does not use up the turn.
	if !g.SetDirection(types.Up) {
		t.Fatal("expected perpendicular turn to be accepted")
	}
}

func TestSetDirectionOncePerTick(t *testing.T) {
	g := newTestGame(t, 20, 20)
	place(g, []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, types.Right, types.Point{X: 0, Y: 0})

	if !g.SetDirection(types.Up) {
		t.Fatal("first turn must be accepted")
	}
	// Up then Left would otherwise reverse the snake within one tick.
	if g.SetDirection(types.Left) {
		t.Fatal("second turn in the same tick must be dropped")
	}
	if g.Direction() != types.Up {
		t.Fatalf("direction = %v, want up", g.Direction())
	}
	g.Tick()
	if !g.SetDirection(types.Left) {
		t.Fatal("latch must reopen after a tick")
	}
}

func TestSetDirectionRejectsInvalidVector(t *testing.T) {
	g := newTestGame(t, 20, 20)
	for _, d := range []types.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}} {
		if g.SetDirection(d) {
			t.Fatalf("expected %v to be rejected", d)
		}
	}
}

func TestGameOverIsFrozen(t *testing.T) {
	g := newTestGame(t, 20, 20)
	place(g, []types.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}, types.Left, types.Point{X: 15, Y: 15})
	over := g.Tick()
	if !over.GameOver {
		t.Fatal("expected game over")
	}

	if g.SetDirection(types.Up) {
		t.Fatal("direction changes must be ignored after game over")
	}
	for i := 0; i < 5; i++ {
		snap := g.Tick()
		if !samePoints(snap.Snake, over.Snake) || snap.Food != over.Food || snap.Score != over.Score {
			t.Fatalf("tick after game over changed state: %+v", snap)
		}
		if !snap.GameOver || snap.Ticks != over.Ticks {
			t.Fatal("game over must be monotonic")
		}
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	dirs := []types.Point{types.Up, types.Down, types.Left, types.Right}
	for seed := uint64(1); seed <= 20; seed++ {
		g, err := New(12, 9, WithSeed(seed))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		pick := rand.New(rand.NewSource(seed * 31))
		prev := g.Snapshot()
		for step := 0; step < 400 && !prev.GameOver; step++ {
			before := g.Direction()
			requested := dirs[pick.Intn(len(dirs))]
			g.SetDirection(requested)
			if g.Direction() == types.Opposite(before) {
				t.Fatalf("seed %d: direction reversed from %v to %v", seed, before, g.Direction())
			}

			snap := g.Tick()
			wantLen := len(prev.Snake)
			if snap.Ate {
				wantLen++
			}
			if len(snap.Snake) != wantLen {
				t.Fatalf("seed %d step %d: length %d, want %d", seed, step, len(snap.Snake), wantLen)
			}
			if snap.Score < 0 || snap.Score%types.FoodReward != 0 {
				t.Fatalf("seed %d: score %d not a non-negative multiple of %d", seed, snap.Score, types.FoodReward)
			}
			if snap.Ate {
				for _, p := range snap.Snake {
					if snap.HasFood && p == snap.Food {
						t.Fatalf("seed %d: food %v on snake", seed, snap.Food)
					}
				}
			}
			prev = snap
		}
	}
}

func TestWithRandOption(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	g, err := New(20, 20, WithRand(r))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.rng != r {
		t.Fatal("WithRand must install the given source")
	}
}

func TestPhaseString(t *testing.T) {
	if Running.String() != "running" || GameOver.String() != "game over" {
		t.Fatalf("unexpected phase names %q %q", Running, GameOver)
	}
}
