package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/platform/window"
	"github.com/vovakirdan/grid2048/internal/puzzle"
	"github.com/vovakirdan/grid2048/internal/telemetry"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 600x600 window with 100 px tiles.

Controls:
  Arrows/WASD  - Slide tiles
  Q/Esc        - Quit (closing the window also quits)`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := stderrLogger("window")
	if err != nil {
		return err
	}
	defer closeLog()

	game := puzzle.New(
		puzzle.WithLogger(logger),
		puzzle.WithTracer(telemetry.Tracer("puzzle")),
	)
	return window.Run(game, appConfig, core.RuntimeConfig{Seed: seed()}, logger)
}
