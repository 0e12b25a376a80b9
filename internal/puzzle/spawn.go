package puzzle

import "math/rand"

// SpawnValue is the only value ever placed by the spawner.
const SpawnValue = 2

// AddRandomTile places SpawnValue in an empty cell chosen uniformly with rng.
// A full board is left unchanged and false is returned.
func AddRandomTile(board *Board, rng *rand.Rand) (Cell, bool) {
	empty := EmptyCells(*board)
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[rng.Intn(len(empty))]
	board[cell.Row][cell.Col] = SpawnValue
	return cell, true
}

// NewBoard returns an empty board with the two starting tiles.
func NewBoard(rng *rand.Rand) Board {
	var board Board
	AddRandomTile(&board, rng)
	AddRandomTile(&board, rng)
	return board
}
