package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/nyan-rush/internal/game"
	"github.com/vovakirdan/nyan-rush/internal/nyan"
)

// Smallest screen the head shape and the score line fit on.
const (
	MinScreenWidth  = nyan.MinWidth
	MinScreenHeight = nyan.MinHeight + game.HUDRows
)

// Validate checks the config for values the game cannot run with.
// All problems are reported together.
func (c NyanConfig) Validate() error {
	var errs []error

	if c.Timing.TickIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval_ms must be positive, got %d", c.Timing.TickIntervalMS))
	}
	if c.Timing.MinIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.min_interval_ms must be positive, got %d", c.Timing.MinIntervalMS))
	}
	if c.Timing.MinIntervalMS > c.Timing.TickIntervalMS {
		errs = append(errs, fmt.Errorf("timing.min_interval_ms (%d) exceeds tick_interval_ms (%d)",
			c.Timing.MinIntervalMS, c.Timing.TickIntervalMS))
	}

	if c.Playfield.MinWidth < MinScreenWidth {
		errs = append(errs, fmt.Errorf("playfield.min_width must be at least %d, got %d", MinScreenWidth, c.Playfield.MinWidth))
	}
	if c.Playfield.MinHeight < MinScreenHeight {
		errs = append(errs, fmt.Errorf("playfield.min_height must be at least %d, got %d", MinScreenHeight, c.Playfield.MinHeight))
	}
	if c.Playfield.Width < 0 || c.Playfield.Height < 0 {
		errs = append(errs, fmt.Errorf("playfield size must not be negative, got %dx%d", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Playfield.Width > 0 && c.Playfield.Width < c.Playfield.MinWidth {
		errs = append(errs, fmt.Errorf("playfield.width %d is below min_width %d", c.Playfield.Width, c.Playfield.MinWidth))
	}
	if c.Playfield.Height > 0 && c.Playfield.Height < c.Playfield.MinHeight {
		errs = append(errs, fmt.Errorf("playfield.height %d is below min_height %d", c.Playfield.Height, c.Playfield.MinHeight))
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be within [0, 1], got %g", c.Difficulty.InitialLevel))
	}
	if c.Difficulty.Scaling.SpeedMultiplier < 0 {
		errs = append(errs, fmt.Errorf("difficulty.scaling.speed_multiplier must not be negative, got %g", c.Difficulty.Scaling.SpeedMultiplier))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// CheckScreen reports whether a resolved screen is large enough to play on.
// The configured minimums never go below MinScreenWidth x MinScreenHeight.
func (c NyanConfig) CheckScreen(w, h int) error {
	minW := max(c.Playfield.MinWidth, MinScreenWidth)
	minH := max(c.Playfield.MinHeight, MinScreenHeight)
	if w < minW || h < minH {
		return fmt.Errorf("config: screen %dx%d is smaller than the minimum %dx%d", w, h, minW, minH)
	}
	return nil
}
