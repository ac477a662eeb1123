package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestSweepGeneratorRange verifies samples stay within [-1, 1].
func TestSweepGeneratorRange(t *testing.T) {
	g := NewSweepGenerator(sampleRate, 300, 700, 120*time.Millisecond)

	samples := make([][2]float64, 2048)
	n, ok := g.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != len(samples) {
		t.Errorf("Expected to stream %d samples, got %d", len(samples), n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("Sample %d not mono across channels: %f != %f", i, samples[i][0], samples[i][1])
		}
	}

	if g.Err() != nil {
		t.Errorf("Expected no error, got: %v", g.Err())
	}
}

// TestSweepGeneratorDecays verifies the release envelope actually fades.
func TestSweepGeneratorDecays(t *testing.T) {
	d := 100 * time.Millisecond
	g := NewSweepGenerator(sampleRate, 400, 80, d)

	total := sampleRate.N(d)
	samples := make([][2]float64, total)
	g.Stream(samples)

	peak := func(from, to int) float64 {
		p := 0.0
		for i := from; i < to; i++ {
			if v := samples[i][0]; v > p {
				p = v
			} else if -v > p {
				p = -v
			}
		}
		return p
	}

	head := peak(total/10, total/4)
	tail := peak(total*3/4, total)
	if tail >= head {
		t.Errorf("Envelope did not decay: head peak %f, tail peak %f", head, tail)
	}
}

func TestPlayerSilentWithoutSpeaker(t *testing.T) {
	// Cues on an uninitialized player are no-ops, not panics.
	p := NewPlayer()
	p.Jump()
	p.LevelUp()
	p.GameOver()
	p.Cleanup()
}

var _ beep.Streamer = (*SweepGenerator)(nil)
