// Package game adapts the Nyan Rush simulation to the platform's
// Reset/Step/Render/State game contract.
package game

import (
	"math/rand"

	"github.com/vovakirdan/nyan-rush/internal/core"
	"github.com/vovakirdan/nyan-rush/internal/nyan"
)

// HUDRows is the number of rows below the playfield used for the score line.
const HUDRows = 1

// Options tunes the simulation built on every Reset.
type Options struct {
	IndexedCollision bool
}

// Game runs one Nyan Rush session. It is driven by the platform: input is
// collected into an InputFrame and handed to Step once per tick.
type Game struct {
	opts   Options
	sim    *nyan.Simulation
	config core.RuntimeConfig
	paused bool
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "nyan"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Nyan Rush"
}

// Reset starts a new run sized to the screen, seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.paused = false
	g.sim = nyan.NewSimulation(nyan.Options{
		Width:            cfg.ScreenW,
		Height:           PlayfieldHeight(cfg.ScreenH),
		Rand:             rand.New(rand.NewSource(cfg.Seed)),
		IndexedCollision: g.opts.IndexedCollision,
	})
}

// PlayfieldHeight returns the rows available to the simulation on a screen
// of the given height.
func PlayfieldHeight(screenH int) int {
	return core.Max(screenH-HUDRows, 0)
}

// Step applies the frame's commands in arrival order and then advances the
// simulation one tick. Movement is applied before the tick reads the head.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		switch a {
		case core.ActionQuit:
			g.sim.RequestQuit()
		case core.ActionPause:
			if g.sim.State() == nyan.Running {
				g.paused = !g.paused
			}
		case core.ActionUp:
			if !g.paused {
				g.sim.MoveUp()
			}
		case core.ActionDown:
			if !g.paused {
				g.sim.MoveDown()
			}
		}
	}

	if !g.paused {
		g.sim.Tick()
	}
	return core.StepResult{State: g.State()}
}

// Quit ends the run immediately, outside of a tick.
func (g *Game) Quit() {
	g.sim.RequestQuit()
}

// Render draws the playfield and the score line into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	field := core.NewRect(0, 0, dst.Width(), PlayfieldHeight(dst.Height()))
	for _, glyph := range g.sim.Glyphs() {
		if field.Contains(glyph.X, glyph.Y) {
			dst.SetColored(glyph.X, glyph.Y, glyph.Char, glyph.Color)
		}
	}

	dst.DrawText(0, field.Bottom(), nyan.ScoreLine(g.sim.Score()))

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.sim.Reason() == nyan.EndCollision:
		drawCenteredMessage(dst, nyan.ExitLine(g.sim.Score()), "R to restart  |  Q to quit")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the platform view of the run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.State() == nyan.Ended,
		Quit:     g.sim.Reason() == nyan.EndQuit,
		Paused:   g.paused,
	}
}

// Report returns the end-of-run summary.
func (g *Game) Report() nyan.Report {
	return g.sim.Report()
}

// Simulation exposes the running simulation.
func (g *Game) Simulation() *nyan.Simulation {
	return g.sim
}
