package puzzle

// Snapshot captures the loop state for determinism tests and replay output.
type Snapshot struct {
	State    string
	Moves    int
	Rejected int
	Tiles    int
	MaxTile  int
	Board    Board
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:    g.state.String(),
		Moves:    g.moves,
		Rejected: g.rejected,
		Tiles:    TileCount(g.board),
		MaxTile:  MaxTile(g.board),
		Board:    g.board,
	}
}

// Replay applies a move sequence to g and returns the final snapshot.
// Rejected moves are counted, not reported as errors.
func Replay(g *Game, dirs []Direction) Snapshot {
	for _, dir := range dirs {
		g.Apply(dir)
	}
	return g.Snapshot()
}
