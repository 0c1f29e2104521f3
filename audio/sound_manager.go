package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatDuration      = 90 * time.Millisecond
	gameOverDuration = 450 * time.Millisecond
)

// SoundManager plays the game's sound effects. Every Play call is a no-op
// until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayEat plays a short rising chirp.
func (sm *SoundManager) PlayEat() {
	sm.play(beep.Take(sampleRate.N(eatDuration), NewSweepGenerator(sampleRate, 520, 1040, eatDuration)))
}

// PlayGameOver plays a falling tone.
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Take(sampleRate.N(gameOverDuration), NewSweepGenerator(sampleRate, 440, 110, gameOverDuration)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SweepGenerator is a sine tone gliding linearly from one frequency to
// another over its duration, with a linear fade out.
type SweepGenerator struct {
	sr      beep.SampleRate
	from    float64
	to      float64
	samples int
	pos     int
	phase   float64
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	n := sr.N(d)
	if n < 1 {
		n = 1
	}
	return &SweepGenerator{sr: sr, from: from, to: to, samples: n}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.2 * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
