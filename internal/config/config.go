// Package config provides YAML-based game configuration loading and
// difficulty management for Nyan Rush.
package config

// NyanConfig contains all configuration for a Nyan Rush session.
type NyanConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Timing     TimingConfig     `yaml:"timing"`
	Collision  CollisionConfig  `yaml:"collision"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig fixes the screen size. Zero width or height means "use
// the terminal size".
type PlayfieldConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}

// TimingConfig defines the tick schedule.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"` // Base interval between ticks
	MinIntervalMS  int `yaml:"min_interval_ms"`  // Floor when difficulty speeds the game up
}

// CollisionConfig selects the collision strategy.
type CollisionConfig struct {
	Indexed bool `yaml:"indexed"` // Hash wall cells instead of comparing every pair
}

// SessionConfig controls what happens when a run ends.
type SessionConfig struct {
	ExitOnCrash bool `yaml:"exit_on_crash"` // Leave the program on collision instead of offering a restart
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty (1.0 = twice as fast)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "keep the
// config as loaded" and is returned unchanged.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
