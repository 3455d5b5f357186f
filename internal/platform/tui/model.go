package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nyan-rush/internal/config"
	"github.com/vovakirdan/nyan-rush/internal/core"
	"github.com/vovakirdan/nyan-rush/internal/nyan"
	"github.com/vovakirdan/nyan-rush/internal/storage"
)

// Options configures a Bubble Tea run.
type Options struct {
	// Runtime carries the terminal size and seed. A zero seed is replaced
	// with the current time.
	Runtime core.RuntimeConfig

	// Config supplies timing, difficulty, playfield limits and exit behavior.
	Config config.NyanConfig

	// Logger receives score-save and screenshot events. Defaults to log.Default().
	Logger *log.Logger
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a Nyan Rush run.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	keys       KeyMap
	help       help.Model
	difficulty *config.DifficultyManager
	cfg        config.NyanConfig
	runtime    core.RuntimeConfig
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	sizeErr    error // non-nil while the screen is below the configured minimum
	quitting   bool
	scoreSaved bool // Whether the run has been recorded
}

// NewModel creates a model and resets the game for the initial size.
func NewModel(game Game, store *storage.Store, opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.ScreenW, rt.ScreenH = opts.Config.ScreenSize(rt.ScreenW, rt.ScreenH)
	rt.TickInterval = opts.Config.TickInterval()

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:      store,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		cfg:        opts.Config,
		runtime:    rt,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		sizeErr:    opts.Config.CheckScreen(rt.ScreenW, rt.ScreenH),
	}

	game.Reset(rt)
	m.gameState = game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick. Quit and screenshot
// take effect immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Quit()
		m.gameState = m.game.State()
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.Action(msg.String()); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize tracks the terminal size. The playfield is sized once: after
// the first tick a resize only changes what is visible.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := m.cfg.ScreenSize(msg.Width, msg.Height)
	m.screen.Resize(w, h)
	m.help.Width = msg.Width
	m.sizeErr = m.cfg.CheckScreen(w, h)

	if m.game.Report().Ticks == 0 && !m.gameState.GameOver {
		m.runtime.ScreenW, m.runtime.ScreenH = w, h
		m.game.Reset(m.runtime)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.sizeErr != nil {
		// Hold the run until the terminal is large enough
		m.inputFrame.Clear()
		return m, tickCmd(m.interval())
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.runtime.Seed = time.Now().UnixNano()
		m.game.Reset(m.runtime)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.interval())
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.saveRun()
		if m.gameState.Quit || m.cfg.Session.ExitOnCrash {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.interval())
}

// interval returns the delay before the next tick at the current difficulty.
func (m Model) interval() time.Duration {
	return m.difficulty.Interval(m.cfg.TickInterval(), m.cfg.MinInterval(),
		m.gameState.Score, m.game.Report().Ticks)
}

// saveRun records the finished run once. Runs without a score are not kept.
func (m *Model) saveRun() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	report := m.game.Report()
	if report.Score <= 0 || m.store == nil {
		return
	}

	_, err := m.store.SaveRun(m.game.ID(), storage.Run{
		Score:  report.Score,
		Reason: report.Reason.String(),
		Ticks:  report.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Debug("score saved", "score", report.Score, "reason", report.Reason)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	dir := filepath.Join(home, ".nyanrush", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.sizeErr != nil {
		msg := fmt.Sprintf("Terminal too small: need at least %dx%d",
			max(m.cfg.Playfield.MinWidth, config.MinScreenWidth),
			max(m.cfg.Playfield.MinHeight, config.MinScreenHeight))
		return lipgloss.Place(m.screen.Width(), m.screen.Height(),
			lipgloss.Center, lipgloss.Center, msg)
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	// Swap the score line for key help while the run is on hold
	if m.gameState.Paused || m.gameState.GameOver {
		lines := strings.Split(out, "\n")
		lines[len(lines)-1] = helpStyle.Render(m.help.View(m.keys))
		out = strings.Join(lines, "\n")
	}
	return out
}

// Report returns the run summary.
func (m Model) Report() nyan.Report {
	return m.game.Report()
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program and blocks until the run ends.
func Run(game Game, store *storage.Store, opts Options) (nyan.Report, error) {
	model := NewModel(game, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return game.Report(), fmt.Errorf("tui: %w", err)
	}
	return game.Report(), nil
}
