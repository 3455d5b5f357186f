package config

import (
	_ "embed"
)

//go:embed defaults/nyan.yaml
var defaultNyanYAML []byte

// DefaultNyanConfig returns the built-in configuration: an 8 ms fixed tick,
// terminal-sized playfield and the run ending on the first crash.
func DefaultNyanConfig() NyanConfig {
	return NyanConfig{
		Playfield: PlayfieldConfig{
			Width:     0,
			Height:    0,
			MinWidth:  20,
			MinHeight: 8,
		},
		Timing: TimingConfig{
			TickIntervalMS: 8,
			MinIntervalMS:  3,
		},
		Collision: CollisionConfig{
			Indexed: false,
		},
		Session: SessionConfig{
			ExitOnCrash: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultNyanYAML
}
