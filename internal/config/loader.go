package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config location.
const LocalConfigPath = "configs/nyan.yaml"

// LoadNyan loads the game configuration.
// Search order: customPath -> ~/.nyanrush/configs/nyan.yaml -> ./configs/nyan.yaml -> embedded default.
// Files only need to set the fields they change; the rest keep default values.
func LoadNyan(customPath string) (NyanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultNyanConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultNyanConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("nyan.yaml"), LocalConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultNyanConfig(), fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultNyanYAML)
	if err != nil {
		return DefaultNyanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults.
func Parse(data []byte) (NyanConfig, error) {
	cfg := DefaultNyanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultNyanConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nyanrush", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *NyanConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// TickInterval returns the configured base interval.
func (c NyanConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMS) * time.Millisecond
}

// MinInterval returns the fastest interval difficulty may reach.
func (c NyanConfig) MinInterval() time.Duration {
	return time.Duration(c.Timing.MinIntervalMS) * time.Millisecond
}

// ScreenSize resolves the screen size from the config and the terminal size.
func (c NyanConfig) ScreenSize(termW, termH int) (int, int) {
	w, h := termW, termH
	if c.Playfield.Width > 0 {
		w = c.Playfield.Width
	}
	if c.Playfield.Height > 0 {
		h = c.Playfield.Height
	}
	return w, h
}
