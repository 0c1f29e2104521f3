package game

import (
	"context"
	"time"

	"grid-snake/game/types"
)

// Ticker is anything that advances one step per call: *Game and *Session.
type Ticker interface {
	Tick() Snapshot
}

// Scheduler drives a Ticker at a fixed interval and stops once a tick
// reports game over. Use Run from a goroutine-based host or Poll from a
// frame loop; a single Scheduler must not be used for both at once.
type Scheduler struct {
	interval   time.Duration
	lastUpdate time.Time
	stopped    bool
}

// NewScheduler falls back to types.DefaultTickInterval for non-positive
// intervals.
func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = types.DefaultTickInterval
	}
	return &Scheduler{interval: interval}
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Run ticks t every interval, passing each snapshot to onTick. It returns
// nil after the game-over tick, or ctx.Err() when ctx is cancelled first.
func (s *Scheduler) Run(ctx context.Context, t Ticker, onTick func(Snapshot)) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			snap := t.Tick()
			if onTick != nil {
				onTick(snap)
			}
			if snap.GameOver {
				return nil
			}
		}
	}
}

// Poll ticks t when at least one interval has passed since the previous
// tick. The first call only starts the clock. Once a tick reports game
// over Poll does nothing until Restart.
func (s *Scheduler) Poll(now time.Time, t Ticker) (Snapshot, bool) {
	if s.stopped {
		return Snapshot{}, false
	}
	if s.lastUpdate.IsZero() {
		s.lastUpdate = now
		return Snapshot{}, false
	}
	if now.Sub(s.lastUpdate) < s.interval {
		return Snapshot{}, false
	}
	s.lastUpdate = now
	snap := t.Tick()
	if snap.GameOver {
		s.stopped = true
	}
	return snap, true
}

// Restart re-arms Poll after a reset.
func (s *Scheduler) Restart(now time.Time) {
	s.stopped = false
	s.lastUpdate = now
}

func (s *Scheduler) Stopped() bool {
	return s.stopped
}
