package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid2048/internal/core"
	"github.com/vovakirdan/grid2048/internal/puzzle"
	"github.com/vovakirdan/grid2048/internal/telemetry"
)

var flagMoves string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Apply a move sequence headless and print the result",
	Long: `Start a seeded game, apply the moves and print the final board.

Moves are the letters U, D, L and R (case-insensitive); commas and spaces
are ignored. Moves that leave the board unchanged are counted as rejected.

Examples:
  grid2048 replay --seed 42 --moves LLURDD
  grid2048 replay --seed 7 --moves "l, u, r, d"`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Move sequence, e.g. LURD")
}

func runReplay(cmd *cobra.Command, _ []string) error {
	dirs, err := puzzle.ParseMoves(flagMoves)
	if err != nil {
		return err
	}

	logger, closeLog, err := stderrLogger("replay")
	if err != nil {
		return err
	}
	defer closeLog()

	game := puzzle.New(
		puzzle.WithLogger(logger),
		puzzle.WithTracer(telemetry.Tracer("puzzle")),
	)
	game.Reset(core.RuntimeConfig{Seed: seed()})

	snap := puzzle.Replay(game, dirs)
	return writeSnapshot(cmd.OutOrStdout(), snap)
}

// writeSnapshot prints the board followed by the loop counters.
func writeSnapshot(w io.Writer, snap puzzle.Snapshot) error {
	_, err := fmt.Fprintf(w, "%s\nstate:    %s\nmoves:    %d\nrejected: %d\ntiles:    %d\nmax tile: %d\n",
		snap.Board, snap.State, snap.Moves, snap.Rejected, snap.Tiles, snap.MaxTile)
	return err
}
