// Package audio plays short synthesized cues for simulation events over the
// gopxl/beep speaker. Everything degrades to silence when the speaker is
// unavailable, so a headless or remote session never fails on audio.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and mixes one-shot cues into it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player; call Initialize to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Safe to call more than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself has no close.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// Jump plays a short rising blip.
func (p *Player) Jump() {
	p.playTake(time.Millisecond*120, NewSweepGenerator(sampleRate, 300, 700, time.Millisecond*120))
}

// LevelUp plays a brighter two-step chirp.
func (p *Player) LevelUp() {
	p.playTake(time.Millisecond*200, NewSweepGenerator(sampleRate, 600, 1200, time.Millisecond*200))
}

// GameOver plays a falling buzz.
func (p *Player) GameOver() {
	p.playTake(time.Millisecond*400, NewSweepGenerator(sampleRate, 400, 80, time.Millisecond*400))
}

func (p *Player) playTake(d time.Duration, g beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Add(beep.Take(sampleRate.N(d), g))
}

// SweepGenerator produces a sine tone whose frequency glides linearly from
// start to end over the given duration, with a short attack and an
// exponential release so cues never click.
type SweepGenerator struct {
	sr        beep.SampleRate
	startFreq float64
	endFreq   float64
	samples   int
	pos       int
	phase     float64
}

// NewSweepGenerator creates a frequency sweep generator.
func NewSweepGenerator(sr beep.SampleRate, startFreq, endFreq float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:        sr,
		startFreq: startFreq,
		endFreq:   endFreq,
		samples:   sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1.0)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress

		// Phase accumulation keeps the glide continuous.
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		release := math.Exp(-3 * progress)
		sample := 0.25 * attack * release * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
