package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nyan-rush/internal/config"
	"github.com/vovakirdan/nyan-rush/internal/core"
	"github.com/vovakirdan/nyan-rush/internal/game"
	"github.com/vovakirdan/nyan-rush/internal/nyan"
	"github.com/vovakirdan/nyan-rush/internal/storage"
)

// fakeGame ends with a collision after endAt steps (never when 0).
type fakeGame struct {
	resets int
	steps  int
	endAt  int
	score  int
	quit   bool
}

func (f *fakeGame) ID() string { return "nyan" }

func (f *fakeGame) Reset(core.RuntimeConfig) {
	f.resets++
	f.steps = 0
	f.quit = false
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	if !f.State().GameOver {
		f.steps++
	}
	return core.StepResult{State: f.State()}
}

func (f *fakeGame) Quit() { f.quit = true }

func (f *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (f *fakeGame) crashed() bool { return f.endAt > 0 && f.steps >= f.endAt }

func (f *fakeGame) State() core.GameState {
	return core.GameState{Score: f.score, GameOver: f.quit || f.crashed(), Quit: f.quit}
}

func (f *fakeGame) Report() nyan.Report {
	r := nyan.Report{Score: f.score, Ticks: f.steps}
	switch {
	case f.quit:
		r.Reason = nyan.EndQuit
	case f.crashed():
		r.Reason = nyan.EndCollision
	}
	return r
}

func testOptions(w, h int) Options {
	return Options{
		Runtime: core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: 1},
		Config:  config.DefaultNyanConfig(),
		Logger:  log.New(io.Discard),
	}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func tick() TickMsg {
	return TickMsg(time.Now())
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelQueuesInputUntilTick(t *testing.T) {
	g := game.New(game.Options{})
	m := NewModel(g, nil, testOptions(40, 21))

	head := g.Simulation().Character().Head()
	before := head.Y()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if head.Y() != before {
		t.Fatal("movement applied before the tick")
	}

	m, _ = send(t, m, tick())
	if head.Y() != before-1 {
		t.Errorf("head Y = %d after tick, want %d", head.Y(), before-1)
	}
	if m.Report().Ticks != 1 {
		t.Errorf("Ticks = %d, want 1", m.Report().Ticks)
	}
}

func TestModelQuitKey(t *testing.T) {
	g := game.New(game.Options{})
	m := NewModel(g, nil, testOptions(40, 21))

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !isQuit(cmd) {
		t.Error("ctrl+c should quit the program")
	}
	if !m.Quitting() {
		t.Error("model should be quitting")
	}
	if m.Report().Reason != nyan.EndQuit {
		t.Errorf("Reason = %v, want quit", m.Report().Reason)
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelExitsOnCrash(t *testing.T) {
	f := &fakeGame{endAt: 3}
	m := NewModel(f, nil, testOptions(40, 21))

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = send(t, m, tick())
	}

	if !isQuit(cmd) {
		t.Error("crash should quit when exit_on_crash is set")
	}
	if m.Report().Reason != nyan.EndCollision {
		t.Errorf("Reason = %v, want collision", m.Report().Reason)
	}
}

func TestModelGameOverRestart(t *testing.T) {
	opts := testOptions(40, 21)
	opts.Config.Session.ExitOnCrash = false

	f := &fakeGame{endAt: 1}
	m := NewModel(f, nil, opts)

	m, _ = send(t, m, tick())
	if m.Quitting() {
		t.Fatal("model should wait on the game over screen")
	}
	if !strings.Contains(m.View(), "restart") {
		t.Error("game over view should show restart help")
	}

	m, _ = send(t, m, runeKey('r'))
	m, _ = send(t, m, tick())

	if f.resets != 2 {
		t.Errorf("resets = %d, want 2", f.resets)
	}
	if f.State().GameOver {
		t.Error("game should be running again after restart")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	opts := testOptions(40, 21)
	opts.Config.Session.ExitOnCrash = false

	f := &fakeGame{endAt: 2, score: 3}
	m := NewModel(f, store, opts)
	for i := 0; i < 5; i++ {
		m, _ = send(t, m, tick())
	}

	scores, err := store.TopScores("nyan", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d runs, want 1", len(scores))
	}
	if scores[0].Score != 3 || scores[0].Reason != "collision" || scores[0].Ticks != 2 {
		t.Errorf("unexpected entry: %+v", scores[0])
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(&fakeGame{}, store, testOptions(40, 21))
	send(t, m, runeKey('q'))

	high, _ := store.HighScore("nyan")
	scores, _ := store.TopScores("nyan", 10)
	if high != 0 || len(scores) != 0 {
		t.Error("runs without a score should not be saved")
	}
}

func TestModelPause(t *testing.T) {
	g := game.New(game.Options{})
	m := NewModel(g, nil, testOptions(40, 21))

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, tick())
	m, _ = send(t, m, tick())

	if g.Simulation().Ticks() != 0 {
		t.Errorf("paused simulation advanced to tick %d", g.Simulation().Ticks())
	}
	view := m.View()
	if !strings.Contains(view, "PAUSED") {
		t.Error("paused view should show the pause box")
	}
	if !strings.Contains(view, "move up") {
		t.Error("paused view should show key help")
	}
}

func TestModelResizeBeforeFirstTick(t *testing.T) {
	g := game.New(game.Options{})
	m := NewModel(g, nil, testOptions(40, 21))

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 25})
	if g.Simulation().Width() != 60 || g.Simulation().Height() != 24 {
		t.Fatalf("playfield = %dx%d, want 60x24", g.Simulation().Width(), g.Simulation().Height())
	}

	m, _ = send(t, m, tick())
	send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	if g.Simulation().Width() != 60 {
		t.Error("playfield should not change after the run has started")
	}
}

func TestModelTooSmall(t *testing.T) {
	g := game.New(game.Options{})
	m := NewModel(g, nil, testOptions(10, 5))

	m, _ = send(t, m, tick())

	if g.Simulation().Ticks() != 0 {
		t.Error("run should hold while the terminal is too small")
	}
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("expected size warning")
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 21})
	send(t, m, tick())

	if g.Simulation().Ticks() != 1 {
		t.Errorf("Ticks = %d after growing the terminal, want 1", g.Simulation().Ticks())
	}
}

func TestModelFixedPlayfieldFromConfig(t *testing.T) {
	opts := testOptions(100, 40)
	opts.Config.Playfield.Width = 50
	opts.Config.Playfield.Height = 21

	g := game.New(game.Options{})
	NewModel(g, nil, opts)

	if g.Simulation().Width() != 50 || g.Simulation().Height() != 20 {
		t.Errorf("playfield = %dx%d, want 50x20", g.Simulation().Width(), g.Simulation().Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := NewModel(&fakeGame{}, nil, testOptions(40, 21))
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	matches, err := filepath.Glob(filepath.Join(home, ".nyanrush", "screenshots", "nyan_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Errorf("found %d screenshots, want 1", len(matches))
	}
}
