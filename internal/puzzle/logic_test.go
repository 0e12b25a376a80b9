package puzzle

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressMergeRow(t *testing.T) {
	tests := []struct {
		name     string
		input    Row
		expected Row
	}{
		{"simple merge", Row{2, 2, 0, 0, 0, 0}, Row{4, 0, 0, 0, 0, 0}},
		{"merge with trailing tile", Row{2, 2, 2, 0, 0, 0}, Row{4, 2, 0, 0, 0, 0}},
		{"double merge", Row{2, 2, 2, 2, 0, 0}, Row{4, 4, 0, 0, 0, 0}},
		{"six equal tiles", Row{2, 2, 2, 2, 2, 2}, Row{4, 4, 4, 0, 0, 0}},
		{"merged tile does not merge again", Row{2, 2, 4, 0, 0, 0}, Row{4, 4, 0, 0, 0, 0}},
		{"merged tile does not chain forward", Row{4, 4, 8, 16, 0, 0}, Row{8, 8, 16, 0, 0, 0}},
		{"no merge possible", Row{2, 4, 8, 16, 32, 64}, Row{2, 4, 8, 16, 32, 64}},
		{"equal tiles separated by another", Row{2, 4, 2, 0, 0, 0}, Row{2, 4, 2, 0, 0, 0}},
		{"slide with gaps", Row{0, 2, 0, 2, 0, 0}, Row{4, 0, 0, 0, 0, 0}},
		{"slide without merge", Row{2, 0, 0, 4, 0, 0}, Row{2, 4, 0, 0, 0, 0}},
		{"merge across the whole row", Row{2, 0, 0, 0, 0, 2}, Row{4, 0, 0, 0, 0, 0}},
		{"leftmost pair wins", Row{0, 8, 8, 8, 0, 0}, Row{16, 8, 0, 0, 0, 0}},
		{"empty row", Row{}, Row{}},
		{"single tile", Row{0, 0, 0, 0, 0, 8}, Row{8, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompressMergeRow(tt.input), "CompressMergeRow(%v)", tt.input)
		})
	}
}

func randomRow(rng *rand.Rand) Row {
	values := []int{0, 0, 2, 4, 8, 16}
	var r Row
	for i := range r {
		r[i] = values[rng.Intn(len(values))]
	}
	return r
}

func randomBoard(rng *rand.Rand) Board {
	var b Board
	for y := range b {
		b[y] = randomRow(rng)
	}
	return b
}

func hasAdjacentPair(r Row) bool {
	for i := 0; i+1 < len(r); i++ {
		if r[i] != 0 && r[i] == r[i+1] {
			return true
		}
	}
	return false
}

func TestCompressMergeRowProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 2000; iter++ {
		in := randomRow(rng)
		out := CompressMergeRow(in)

		// Left-packed: once a zero appears, only zeros follow.
		seenZero := false
		for _, v := range out {
			if v == 0 {
				seenZero = true
				continue
			}
			require.False(t, seenZero, "gap in output %v for input %v", out, in)
		}

		sumIn, sumOut := 0, 0
		for i := range in {
			sumIn += in[i]
			sumOut += out[i]
		}
		require.Equal(t, sumIn, sumOut, "merge must preserve the tile sum for %v", in)

		// With no equal neighbours left, another pass is a no-op.
		if !hasAdjacentPair(out) {
			require.Equal(t, out, CompressMergeRow(out), "second pass changed %v", out)
		}
	}
}

func TestCompressMergeRowSecondPassCanMerge(t *testing.T) {
	// A single pass never chains, so a second pass may still find a pair.
	once := CompressMergeRow(Row{2, 2, 2, 2, 0, 0})
	assert.Equal(t, Row{4, 4, 0, 0, 0, 0}, once)
	assert.Equal(t, Row{8, 0, 0, 0, 0, 0}, CompressMergeRow(once))
}

func TestMoveLeft(t *testing.T) {
	board := Board{
		{2, 2, 0, 0, 0, 0},
		{4, 0, 4, 0, 0, 0},
		{2, 2, 2, 2, 0, 0},
		{0, 0, 0, 0, 0, 2},
		{2, 2, 4, 0, 0, 0},
		{8, 4, 2, 16, 32, 64},
	}

	expected := Board{
		{4, 0, 0, 0, 0, 0},
		{8, 0, 0, 0, 0, 0},
		{4, 4, 0, 0, 0, 0},
		{2, 0, 0, 0, 0, 0},
		{4, 4, 0, 0, 0, 0},
		{8, 4, 2, 16, 32, 64},
	}

	result, moved := MoveLeft(board)
	assert.Equal(t, expected, result)
	assert.True(t, moved)
}

func TestMoveRight(t *testing.T) {
	board := Board{
		{2, 2, 0, 0, 0, 0},
		{4, 0, 4, 0, 0, 0},
		{2, 2, 2, 2, 0, 0},
		{0, 0, 0, 0, 0, 2},
		{2, 2, 4, 0, 0, 0},
		{8, 4, 2, 16, 32, 64},
	}

	expected := Board{
		{0, 0, 0, 0, 0, 4},
		{0, 0, 0, 0, 0, 8},
		{0, 0, 0, 0, 4, 4},
		{0, 0, 0, 0, 0, 2},
		{0, 0, 0, 0, 4, 4},
		{8, 4, 2, 16, 32, 64},
	}

	result, moved := MoveRight(board)
	assert.Equal(t, expected, result)
	assert.True(t, moved)
}

func TestMoveUp(t *testing.T) {
	board := Board{
		{2, 4, 2, 0, 0, 2},
		{2, 0, 2, 0, 0, 0},
		{0, 4, 2, 0, 0, 0},
		{0, 0, 2, 2, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 2},
	}

	expected := Board{
		{4, 8, 4, 2, 0, 4},
		{0, 0, 4, 0, 0, 0},
		{},
		{},
		{},
		{},
	}

	result, moved := MoveUp(board)
	assert.Equal(t, expected, result)
	assert.True(t, moved)
}

func TestMoveDown(t *testing.T) {
	board := Board{
		{2, 4, 2, 0, 0, 2},
		{2, 0, 2, 0, 0, 0},
		{0, 4, 2, 0, 0, 0},
		{0, 0, 2, 2, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 2},
	}

	expected := Board{
		{},
		{},
		{},
		{},
		{0, 0, 4, 0, 0, 0},
		{4, 8, 4, 2, 0, 4},
	}

	result, moved := MoveDown(board)
	assert.Equal(t, expected, result)
	assert.True(t, moved)
}

func TestMoveScenarios(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected Row
		moved    bool
	}{
		{"gaps merge", Row{0, 2, 0, 2, 0, 0}, Row{4, 0, 0, 0, 0, 0}, true},
		{"gap closes", Row{2, 0, 0, 4, 0, 0}, Row{2, 4, 0, 0, 0, 0}, true},
		{"already packed", Row{2, 4, 8, 16, 0, 0}, Row{2, 4, 8, 16, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := Board{tt.row}
			result, moved := MoveLeft(board)
			assert.Equal(t, tt.expected, result[0])
			assert.Equal(t, tt.moved, moved)
		})
	}
}

func TestNoChangeNoMove(t *testing.T) {
	board := Board{
		{4, 2, 0, 0, 0, 0},
	}

	result, moved := MoveLeft(board)
	assert.False(t, moved, "MoveLeft should not change already left-aligned tiles")
	assert.Equal(t, board, result)

	_, moved = MoveUp(board)
	assert.False(t, moved, "MoveUp should not change tiles already on the top edge")
}

func TestDeadBoardRejectsEveryMove(t *testing.T) {
	var board Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			board[y][x] = 2
			if (x+y)%2 == 1 {
				board[y][x] = 4
			}
		}
	}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		result, moved := Move(board, dir)
		assert.False(t, moved, "direction %s", dir)
		assert.Equal(t, board, result)
	}
}

func TestMoveUnknownDirection(t *testing.T) {
	board := Board{{0, 2}}
	result, moved := Move(board, Direction(42))
	assert.False(t, moved)
	assert.Equal(t, board, result)
}

func TestTransposeInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 200; iter++ {
		b := randomBoard(rng)
		require.Equal(t, b, Transpose(Transpose(b)))
		require.Equal(t, b, ReverseRows(ReverseRows(b)))
	}
}

func TestTransposeSwapsIndices(t *testing.T) {
	var b Board
	b[1][4] = 8
	b[5][0] = 2

	tr := Transpose(b)
	assert.Equal(t, 8, tr[4][1])
	assert.Equal(t, 2, tr[0][5])
	assert.Equal(t, 0, tr[1][4])
}

func TestReverseRows(t *testing.T) {
	b := Board{{2, 4, 8, 0, 0, 16}}
	assert.Equal(t, Row{16, 0, 0, 8, 4, 2}, ReverseRows(b)[0])
}

func TestLeftRightSymmetry(t *testing.T) {
	// A left-packed row without merges survives a right then left move.
	board := Board{{2, 4, 8, 16, 0, 0}}

	right, moved := MoveRight(board)
	require.True(t, moved)
	assert.Equal(t, Row{0, 0, 2, 4, 8, 16}, right[0])

	left, moved := MoveLeft(right)
	require.True(t, moved)
	assert.Equal(t, board, left)

	multiset := func(r Row) []int {
		var out []int
		for _, v := range r {
			if v != 0 {
				out = append(out, v)
			}
		}
		sort.Ints(out)
		return out
	}
	assert.Equal(t, multiset(board[0]), multiset(right[0]))
}

func TestMovesPreserveTileSum(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 500; iter++ {
		b := randomBoard(rng)
		for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
			result, moved := Move(b, dir)
			require.Equal(t, TileSum(b), TileSum(result))
			require.LessOrEqual(t, TileCount(result), TileCount(b))
			require.Equal(t, result != b, moved)
		}
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		{2, 0, 8, 0, 2, 2},
		{0, 64, 0, 256, 2, 2},
		{2, 2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2, 2},
		{2, 2, 2, 2, 2, 0},
	}

	cells := EmptyCells(board)
	assert.Equal(t, []Cell{{0, 1}, {0, 3}, {1, 0}, {1, 2}, {5, 5}}, cells)
	assert.Equal(t, Size*Size-5, TileCount(board))
}

func TestMaxTile(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
	}
	assert.Equal(t, 2048, MaxTile(board))
	assert.Equal(t, 0, MaxTile(Board{}))
}

func TestParseMoves(t *testing.T) {
	dirs, err := ParseMoves("LRud, l")
	require.NoError(t, err)
	assert.Equal(t, []Direction{DirLeft, DirRight, DirUp, DirDown, DirLeft}, dirs)

	_, err = ParseMoves("LX")
	assert.ErrorContains(t, err, "invalid move 'X'")
}

func TestBoardString(t *testing.T) {
	b := Board{{2, 0, 0, 0, 0, 2048}}
	lines := b.String()
	assert.Contains(t, lines, "     2     .     .     .     .  2048\n")
}
