package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/nyan-rush/internal/core"
	"github.com/vovakirdan/nyan-rush/internal/game"
	"github.com/vovakirdan/nyan-rush/internal/nyan"
	"github.com/vovakirdan/nyan-rush/internal/platform/term"
	"github.com/vovakirdan/nyan-rush/internal/platform/tui"
	"github.com/vovakirdan/nyan-rush/internal/storage"
)

var (
	flagTcell         bool
	flagNoExitOnCrash bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run. The game ends when the cat's head touches a wall, and
the number of walls cleared is printed on exit.

Controls:
  Up/W/K     - Move up
  Down/S/J   - Move down
  P          - Pause
  R          - Restart (after a crash, with --no-exit-on-crash)
  Ctrl+S     - Screenshot (Bubble Tea only)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at normal speed, speed up as walls are cleared
  normal - Start slightly faster, speed up as walls are cleared
  hard   - Start fast, speed up as walls are cleared
  fixed  - Constant speed

Examples:
  nyanrush play
  nyanrush play --tcell
  nyanrush play --difficulty hard
  nyanrush play --seed 42 --no-exit-on-crash
  nyanrush play --config ./my-nyan.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagTcell, "tcell", false, "Render with tcell instead of Bubble Tea")
	cmd.Flags().BoolVar(&flagNoExitOnCrash, "no-exit-on-crash", false, "Stay on the game over screen after a crash")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagNoExitOnCrash {
		cfg.Session.ExitOnCrash = false
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	g := game.New(game.Options{IndexedCollision: cfg.Collision.Indexed})

	var report nyan.Report
	if flagTcell {
		screen, screenErr := tcell.NewScreen()
		if screenErr != nil {
			return fmt.Errorf("cannot create screen: %w", screenErr)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		report, err = term.Run(ctx, screen, g, term.Options{
			Seed:   flagSeed,
			Config: cfg,
			Store:  store,
			Logger: logger,
		})
	} else {
		rt := core.DefaultConfig()
		rt.Seed = flagSeed
		if w, h, termErr := xterm.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rt.ScreenW, rt.ScreenH = w, h
		}

		report, err = tui.Run(g, store, tui.Options{
			Runtime: rt,
			Config:  cfg,
			Logger:  logger,
		})
	}
	if err != nil {
		return err
	}

	logger.Info("run finished", "score", report.Score, "reason", report.Reason, "ticks", report.Ticks)
	fmt.Println(report.ExitLine())
	return nil
}
