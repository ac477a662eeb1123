package sim

import (
	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/fixnum"
)

// Settings is the immutable per-session configuration. A session keeps its
// Settings for its whole life; restarting constructs a new session from the
// same Settings with the high score carried forward.
type Settings struct {
	InitScrollVelocity     fixnum.Num
	ScrollVelocityPerLevel fixnum.Num
	FramesPerLevel         uint32

	AnimationIntervalFrames uint32
	SpawnIntervalFrames     uint32

	JumpHeightPx       int
	JumpDurationFrames int

	MaxEnemies int

	// HighScore is the persisted best carried into this session, shown by
	// the renderer. The session never updates it.
	HighScore uint32
}

// FromConfig converts a loaded configuration into session Settings,
// performing the one-time float to fixed-point conversion.
func FromConfig(cfg config.GameConfig, highScore uint32) Settings {
	return Settings{
		InitScrollVelocity:      fixnum.FromFloat(cfg.Scroll.InitialVelocity),
		ScrollVelocityPerLevel:  fixnum.FromFloat(cfg.Scroll.IncreasePerLevel),
		FramesPerLevel:          uint32(cfg.Scroll.FramesPerLevel),
		AnimationIntervalFrames: uint32(cfg.Animation.IntervalFrames),
		SpawnIntervalFrames:     uint32(cfg.Spawn.IntervalFrames),
		JumpHeightPx:            cfg.Player.JumpHeightPx,
		JumpDurationFrames:      cfg.Player.JumpDurationFrames,
		MaxEnemies:              cfg.Spawn.MaxEnemies,
		HighScore:               highScore,
	}
}

// DefaultSettings returns Settings built from the built-in configuration.
func DefaultSettings() Settings {
	return FromConfig(config.Default(), 0)
}
