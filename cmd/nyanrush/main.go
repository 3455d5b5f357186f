// nyanrush is a terminal runner: steer the Nyan cat through the gaps in
// scrolling walls.
//
// Usage:
//
//	nyanrush                 - Play (same as nyanrush play)
//	nyanrush play            - Play a run
//	nyanrush scores          - Show high scores
//	nyanrush serve           - Start SSH server for remote play
//	nyanrush config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.nyanrush/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--tick <ms>           - Override the base tick interval
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nyan-rush/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagTickMS     int
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "nyanrush",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nyanrush",
	Short: "Nyan Rush - dodge the walls in your terminal",
	Long: `Nyan Rush is a terminal runner. Walls scroll in from the right;
steer the cat through the gap in each one.

Available commands:
  play     - Play a run (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  nyanrush
  nyanrush play --tcell
  nyanrush play --difficulty hard
  nyanrush serve --ssh :2222
  nyanrush scores --plain`,
	PersistentPreRunE: setupLogger,
	RunE:              runPlay,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nyanrush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", 0, "Base tick interval in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default warn, info for serve)")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger applies --log-level. The server logs sessions at info by default;
// interactive commands stay quiet so log lines do not land on the playfield.
func setupLogger(cmd *cobra.Command, _ []string) error {
	name := flagLogLevel
	if name == "" {
		name = "warn"
		if cmd.Name() == serveCmd.Name() {
			name = "info"
		}
	}

	level, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", name, err)
	}
	logger.SetLevel(level)
	return nil
}

// loadConfig resolves the config file, applies flag overrides and validates
// the result.
func loadConfig() (config.NyanConfig, error) {
	cfg, err := config.LoadNyan(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagTickMS > 0 {
		cfg.Timing.TickIntervalMS = flagTickMS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	logger.Debug("config loaded",
		"tick", cfg.TickInterval(),
		"difficulty", cfg.Difficulty.Enabled,
		"indexed", cfg.Collision.Indexed,
	)
	return cfg, nil
}
