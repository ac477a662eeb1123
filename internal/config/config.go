// Package config provides YAML-based game settings loading for the runner.
package config

// GameConfig contains all tunable settings for a run. Values are plain
// numbers here; the simulation converts fractional velocities to fixed
// point once at session construction.
type GameConfig struct {
	Scroll    ScrollConfig    `yaml:"scroll"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Player    PlayerConfig    `yaml:"player"`
	Animation AnimationConfig `yaml:"animation"`
}

// ScrollConfig defines world scroll speed and level progression.
type ScrollConfig struct {
	InitialVelocity  float64 `yaml:"initial_velocity"`   // px/frame at level 0
	IncreasePerLevel float64 `yaml:"increase_per_level"` // px/frame added each level up
	FramesPerLevel   int     `yaml:"frames_per_level"`   // level-up timer period
}

// SpawnConfig bounds enemy spawning.
type SpawnConfig struct {
	IntervalFrames int `yaml:"interval_frames"` // nominal spacing; actual delays come from the spawn queue
	MaxEnemies     int `yaml:"max_enemies"`     // pool capacity; excess spawns are dropped
}

// PlayerConfig defines the jump arc.
type PlayerConfig struct {
	JumpHeightPx       int `yaml:"jump_height_px"`
	JumpDurationFrames int `yaml:"jump_duration_frames"`
}

// AnimationConfig controls sprite frame cycling.
type AnimationConfig struct {
	IntervalFrames int `yaml:"interval_frames"`
}

// Default returns the built-in configuration, matching the embedded YAML.
func Default() GameConfig {
	return GameConfig{
		Scroll: ScrollConfig{
			InitialVelocity:  2.5,
			IncreasePerLevel: 0.1,
			FramesPerLevel:   1800,
		},
		Spawn: SpawnConfig{
			IntervalFrames: 180,
			MaxEnemies:     3,
		},
		Player: PlayerConfig{
			JumpHeightPx:       40,
			JumpDurationFrames: 16,
		},
		Animation: AnimationConfig{
			IntervalFrames: 8,
		},
	}
}
