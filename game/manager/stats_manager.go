package manager

import (
	"sort"
	"sync"
	"time"
)

// maxHistory is the number of finished games kept in memory.
const maxHistory = 50

// GameRecord is one finished game.
type GameRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Score     int
}

// Duration is the wall time the game lasted.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps the score history of the current process. Nothing is
// written to disk.
type StatsManager struct {
	mutex       sync.RWMutex
	highScore   int
	gamesPlayed int
	history     []GameRecord
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		history: make([]GameRecord, 0, maxHistory),
	}
}

// Record adds a finished game.
func (sm *StatsManager) Record(score int, startTime, endTime time.Time) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if score > sm.highScore {
		sm.highScore = score
	}
	sm.gamesPlayed++

	if len(sm.history) >= maxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, GameRecord{
		StartTime: startTime,
		EndTime:   endTime,
		Score:     score,
	})
}

func (sm *StatsManager) HighScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.highScore
}

// GamesPlayed counts every recorded game, including those rotated out of
// the history.
func (sm *StatsManager) GamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.gamesPlayed
}

// AverageScore is the mean over the kept history.
func (sm *StatsManager) AverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.history) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.history {
		total += r.Score
	}
	return float64(total) / float64(len(sm.history))
}

// MedianScore is the median over the kept history.
func (sm *StatsManager) MedianScore() float64 {
	sm.mutex.RLock()
	scores := make([]int, len(sm.history))
	for i, r := range sm.history {
		scores[i] = r.Score
	}
	sm.mutex.RUnlock()

	if len(scores) == 0 {
		return 0
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// History returns the kept games, oldest first.
func (sm *StatsManager) History() []GameRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	out := make([]GameRecord, len(sm.history))
	copy(out, sm.history)
	return out
}
