package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/platform/tui"
	"github.com/vovakirdan/grid2048/internal/puzzle"
	"github.com/vovakirdan/grid2048/internal/telemetry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the puzzle in the terminal.

Controls:
  Arrows/WASD  - Slide tiles
  Q/Esc/Ctrl+C - Quit

Examples:
  grid2048 play
  grid2048 play --seed 42
  grid2048 play --log-file ~/.grid2048/play.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "play")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed(),
	}

	game := puzzle.New(
		puzzle.WithLogger(logger),
		puzzle.WithTracer(telemetry.Tracer("puzzle")),
	)
	return tui.Run(game, appConfig.Theme, cfg)
}
