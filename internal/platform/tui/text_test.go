package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/sim"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score    uint32
		expected string
	}{
		{0, "000000"},
		{7, "000007"},
		{1234, "001234"},
		{999999, "999999"},
	}

	for _, tc := range tests {
		if got := FormatScore(tc.score); got != tc.expected {
			t.Errorf("FormatScore(%d) = %q, expected %q", tc.score, got, tc.expected)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"game over", "GAME OVER"},
		{"HI 000123", "HI 000123"},
		{"snake_case", "SNAKE?CASE"},
		{"café", "CAF?"},
	}

	for _, tc := range tests {
		if got := Sanitize(tc.in); got != tc.expected {
			t.Errorf("Sanitize(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestAlignX(t *testing.T) {
	if got := AlignX(10, 4, AlignLeft); got != 10 {
		t.Errorf("AlignLeft = %d, expected 10", got)
	}
	if got := AlignX(10, 4, AlignCenter); got != 8 {
		t.Errorf("AlignCenter = %d, expected 8", got)
	}
	if got := AlignX(10, 4, AlignRight); got != 6 {
		t.Errorf("AlignRight = %d, expected 6", got)
	}
}

func TestDrawGameHUD(t *testing.T) {
	screen := core.NewScreen(80, 24)
	snap := sim.Snapshot{
		State:     sim.StateContinue,
		Score:     1234,
		HighScore: 5678,
		PlayerX:   16,
		PlayerY:   82,
	}

	DrawGame(screen, snap, 8)

	if !strings.Contains(screen.Row(0), "SCORE 001234") {
		t.Errorf("score readout missing from top row: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "HI 005678") {
		t.Errorf("high score readout missing: %q", screen.Row(1))
	}
}

func TestDrawGameHUDTracksNewBest(t *testing.T) {
	screen := core.NewScreen(80, 24)
	snap := sim.Snapshot{
		State:     sim.StateContinue,
		Score:     9000,
		HighScore: 5678,
		PlayerX:   16,
		PlayerY:   82,
	}

	DrawGame(screen, snap, 8)

	// Once the current run beats the saved best, HI follows the live score.
	if !strings.Contains(screen.Row(1), "HI 009000") {
		t.Errorf("HI readout did not follow the live score: %q", screen.Row(1))
	}
}

func TestDrawGameModals(t *testing.T) {
	screen := core.NewScreen(80, 24)
	snap := sim.Snapshot{State: sim.StateOver, PlayerX: 16, PlayerY: 82}

	DrawGame(screen, snap, 8)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over modal missing")
	}

	snap.State = sim.StatePause
	DrawGame(screen, snap, 8)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause modal missing")
	}
}
