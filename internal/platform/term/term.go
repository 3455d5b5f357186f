// Package term runs Nyan Rush directly on a tcell screen. It shares the game
// contract and key bindings with the Bubble Tea driver.
package term

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/nyan-rush/internal/config"
	"github.com/vovakirdan/nyan-rush/internal/core"
	"github.com/vovakirdan/nyan-rush/internal/nyan"
	"github.com/vovakirdan/nyan-rush/internal/platform/tui"
	"github.com/vovakirdan/nyan-rush/internal/storage"
)

// Options configures a tcell run.
type Options struct {
	Seed   int64 // 0 uses the current time
	Config config.NyanConfig
	Store  *storage.Store
	Logger *log.Logger
}

var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorRed:     tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:  tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorBlue:    tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorMagenta: tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.ColorCyan:    tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:   tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorGray:    tcell.StyleDefault.Foreground(tcell.ColorGray),
}

var helpStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// Run initializes screen, plays one run and finalizes the screen. It returns
// when the run ends with a quit, on a crash when exit_on_crash is set, or when
// ctx is cancelled, which counts as a quit.
func Run(ctx context.Context, screen tcell.Screen, game tui.Game, opts Options) (nyan.Report, error) {
	if err := screen.Init(); err != nil {
		return nyan.Report{}, fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	w, h := opts.Config.ScreenSize(screen.Size())
	if err := opts.Config.CheckScreen(w, h); err != nil {
		return nyan.Report{}, err
	}

	d := newDriver(screen, game, opts, w, h)

	events := make(chan tcell.Event, 32)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.interval())
	defer ticker.Stop()

	d.draw()
	for {
		select {
		case <-ctx.Done():
			game.Quit()
			return d.finish(), nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if d.handleKey(keyName(ev.Key(), ev.Rune())) {
					return d.finish(), nil
				}
			case *tcell.EventResize:
				screen.Sync()
				d.draw()
			}

		case <-ticker.C:
			if d.step() {
				return d.finish(), nil
			}
			ticker.Reset(d.interval())
		}
	}
}

// driver holds the per-run state between events and ticks.
type driver struct {
	screen     tcell.Screen
	game       tui.Game
	buf        *core.Screen
	keys       tui.KeyMap
	difficulty *config.DifficultyManager
	cfg        config.NyanConfig
	runtime    core.RuntimeConfig
	store      *storage.Store
	logger     *log.Logger
	frame      core.InputFrame
	saved      bool
}

func newDriver(screen tcell.Screen, game tui.Game, opts Options, w, h int) *driver {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	d := &driver{
		screen:     screen,
		game:       game,
		buf:        core.NewScreen(w, h),
		keys:       tui.DefaultKeyMap(),
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		cfg:        opts.Config,
		runtime: core.RuntimeConfig{
			ScreenW:      w,
			ScreenH:      h,
			TickInterval: opts.Config.TickInterval(),
			Seed:         seed,
		},
		store:  opts.Store,
		logger: logger,
		frame:  core.NewInputFrame(),
	}
	game.Reset(d.runtime)
	return d
}

// keyName converts a tcell key to the names used by the key bindings.
func keyName(k tcell.Key, r rune) string {
	switch k {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyCtrlS:
		return "ctrl+s"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyRune:
		return string(r)
	}
	return ""
}

// handleKey queues the bound action for the next tick. It reports true when
// the key ended the run.
func (d *driver) handleKey(name string) bool {
	action := d.keys.Action(name)
	if action == core.ActionQuit {
		d.game.Quit()
		return true
	}
	d.frame.Set(action)
	return false
}

// step runs one tick and redraws. It reports true when the driver should exit.
func (d *driver) step() bool {
	if d.frame.Has(core.ActionRestart) && d.game.State().GameOver {
		d.runtime.Seed = time.Now().UnixNano()
		d.game.Reset(d.runtime)
		d.saved = false
		d.frame.Clear()
		d.draw()
		return false
	}

	state := d.game.Step(d.frame).State
	d.frame.Clear()
	d.draw()

	if !state.GameOver {
		return false
	}
	d.save()
	return state.Quit || d.cfg.Session.ExitOnCrash
}

func (d *driver) interval() time.Duration {
	return d.difficulty.Interval(d.cfg.TickInterval(), d.cfg.MinInterval(),
		d.game.State().Score, d.game.Report().Ticks)
}

// draw renders the game into the buffer and copies it to the screen.
func (d *driver) draw() {
	d.game.Render(d.buf)

	for y := 0; y < d.buf.Height(); y++ {
		for x := 0; x < d.buf.Width(); x++ {
			cell := d.buf.GetCell(x, y)
			style, ok := colorStyles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			d.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}

	if state := d.game.State(); state.Paused || state.GameOver {
		d.drawHelp(d.buf.Height() - 1)
	}
	d.screen.Show()
}

// drawHelp replaces the score line with the key hints.
func (d *driver) drawHelp(y int) {
	hints := make([]string, 0, len(d.keys.ShortHelp()))
	for _, b := range d.keys.ShortHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	text := []rune(strings.Join(hints, " • "))

	for x := 0; x < d.buf.Width(); x++ {
		r := ' '
		if x < len(text) {
			r = text[x]
		}
		d.screen.SetContent(x, y, r, nil, helpStyle)
	}
}

// finish records the run and returns its report.
func (d *driver) finish() nyan.Report {
	d.save()
	return d.game.Report()
}

// save records a finished run once. Runs without a score are not kept.
func (d *driver) save() {
	if d.saved {
		return
	}
	d.saved = true

	report := d.game.Report()
	if report.Score <= 0 || d.store == nil {
		return
	}

	_, err := d.store.SaveRun(d.game.ID(), storage.Run{
		Score:  report.Score,
		Reason: report.Reason.String(),
		Ticks:  report.Ticks,
	})
	if err != nil {
		d.logger.Warn("could not save score", "error", err)
		return
	}
	d.logger.Debug("score saved", "score", report.Score, "reason", report.Reason)
}
