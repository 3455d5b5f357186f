package tui

import (
	"github.com/vovakirdan/nyan-rush/internal/core"
	"github.com/vovakirdan/nyan-rush/internal/nyan"
)

// Game is the contract the drivers run. Games hold pure logic with no
// terminal dependencies; the platform handles input, timing and rendering.
type Game interface {
	// ID is the key used for score storage.
	ID() string

	// Reset starts a new run sized and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Quit ends the run outside of a tick.
	Quit()

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState

	// Report returns the end-of-run summary.
	Report() nyan.Report
}
