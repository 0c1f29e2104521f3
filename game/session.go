package game

import (
	"log"
	"sync"
	"time"

	"grid-snake/game/manager"
	"grid-snake/game/types"
)

// Session serialises access to a Game so that input handlers and the tick
// driver can run on different goroutines. It also records finished games
// and notifies listeners about food and game over.
type Session struct {
	mu    sync.Mutex
	game  *Game
	stats *manager.StatsManager

	onEat      []func(Snapshot)
	onGameOver []func(Snapshot)
}

func NewSession(g *Game, stats *manager.StatsManager) *Session {
	if stats == nil {
		stats = manager.NewStatsManager()
	}
	log.Printf("session %s started on %dx%d grid", g.UUID, g.Grid.Width, g.Grid.Height)
	return &Session{
		game:  g,
		stats: stats,
	}
}

// OnEat registers fn to run after every tick that consumed food.
func (s *Session) OnEat(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEat = append(s.onEat, fn)
}

// OnGameOver registers fn to run once per game, on the tick that ended it.
func (s *Session) OnGameOver(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onGameOver = append(s.onGameOver, fn)
}

// Reset starts a new game on a width x height grid.
func (s *Session) Reset(width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.game.Reset(width, height); err != nil {
		return err
	}
	log.Printf("session %s started on %dx%d grid", s.game.UUID, width, height)
	return nil
}

// Restart starts a new game on the current grid.
func (s *Session) Restart() error {
	s.mu.Lock()
	grid := s.game.Grid
	s.mu.Unlock()
	return s.Reset(grid.Width, grid.Height)
}

func (s *Session) SetDirection(dir types.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.SetDirection(dir)
}

// Tick advances the game once. Listeners run after the lock is released,
// so they may call back into the session.
func (s *Session) Tick() Snapshot {
	s.mu.Lock()
	wasOver := s.game.IsOver()
	snap := s.game.Tick()
	ended := !wasOver && snap.GameOver
	if ended {
		end := time.Now()
		s.stats.Record(snap.Score, s.game.StartTime, end)
		log.Printf("session %s over: %s collision, score %d after %d ticks (%.1fs)",
			snap.SessionID, snap.Collision, snap.Score, snap.Ticks, end.Sub(s.game.StartTime).Seconds())
	}
	var listeners []func(Snapshot)
	if snap.Ate && !wasOver {
		listeners = append(listeners, s.onEat...)
	}
	if ended {
		listeners = append(listeners, s.onGameOver...)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	return snap
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

func (s *Session) Stats() *manager.StatsManager {
	return s.stats
}
