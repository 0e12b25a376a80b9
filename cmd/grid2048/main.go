// grid2048 is a 2048 sliding-tile puzzle on a 6x6 board.
//
// Usage:
//
//	grid2048 play                 - Play in the terminal
//	grid2048 window               - Play in a 600x600 desktop window
//	grid2048 replay --moves LURD  - Apply moves headless and print the board
//	grid2048 version              - Print the version
//
// Global flags:
//
//	--seed <value>       - RNG seed for reproducible tile spawns
//	--config <path>      - Theme/window config YAML
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log destination (play mode discards logs without it)
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid2048/internal/config"
	"github.com/vovakirdan/grid2048/internal/telemetry"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// Loaded once in PersistentPreRunE.
var (
	appConfig         config.Config
	telemetryShutdown func(context.Context) error
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grid2048",
	Short: "2048 on a 6x6 board",
	Long: `grid2048 is the sliding-tile puzzle 2048 played on a 6x6 board.

Slide all tiles in one direction; two equal tiles that meet merge into their
sum. Every move that changes the board spawns a new 2 on a random empty cell.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  replay   - Apply a move sequence headless and print the result
  version  - Print the version

Examples:
  grid2048 play
  grid2048 window --seed 42
  grid2048 replay --seed 42 --moves LLURDD`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads .env, the config file and tracing before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg

	shutdown, err := telemetry.Setup(cmd.Context(), version)
	if err != nil {
		log.Warn("tracing disabled", "err", err)
		shutdown = func(context.Context) error { return nil }
	}
	telemetryShutdown = shutdown
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if telemetryShutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := telemetryShutdown(ctx); err != nil {
		log.Warn("tracing shutdown", "err", err)
	}
}

// seed returns the --seed value, or a time-based one when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
