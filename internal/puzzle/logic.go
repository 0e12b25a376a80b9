package puzzle

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the single-letter name used by replay input.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "U"
	case DirDown:
		return "D"
	case DirLeft:
		return "L"
	case DirRight:
		return "R"
	default:
		return "?"
	}
}

// ParseDirection maps a replay letter (U, D, L, R; any case) to a direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case 'U', 'u':
		return DirUp, true
	case 'D', 'd':
		return DirDown, true
	case 'L', 'l':
		return DirLeft, true
	case 'R', 'r':
		return DirRight, true
	}
	return 0, false
}

// ParseMoves converts a replay string such as "LLUR" into directions.
// Whitespace and commas are ignored.
func ParseMoves(s string) ([]Direction, error) {
	dirs := make([]Direction, 0, len(s))
	for i, r := range s {
		if r == ',' || r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		dir, ok := ParseDirection(r)
		if !ok {
			return nil, fmt.Errorf("puzzle: invalid move %q at offset %d", r, i)
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// Size is the board dimension. It is fixed for the process lifetime.
const Size = 6

// Row is one line of the board.
type Row [Size]int

// Board is the 6x6 grid. Cells hold 0 (empty) or a power of two >= 2.
type Board [Size]Row

// CompressMergeRow packs the non-zero tiles of a row to the left and merges
// equal neighbours in a single left-to-right pass. A tile produced by a merge
// never merges again in the same pass, so [2,2,2,2] becomes [4,4,0,0].
func CompressMergeRow(row Row) Row {
	var tiles Row
	n := 0
	for _, v := range row {
		if v != 0 {
			tiles[n] = v
			n++
		}
	}

	var result Row
	w := 0
	for i := 0; i < n; i++ {
		if i+1 < n && tiles[i] == tiles[i+1] {
			result[w] = tiles[i] * 2
			i++ // the right neighbour is consumed
		} else {
			result[w] = tiles[i]
		}
		w++
	}

	return result
}

// ReverseRows mirrors every row along the vertical axis.
func ReverseRows(board Board) Board {
	var result Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			result[y][x] = board[y][Size-1-x]
		}
	}
	return result
}

// Transpose swaps rows and columns.
func Transpose(board Board) Board {
	var result Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			result[y][x] = board[x][y]
		}
	}
	return result
}

// MoveLeft compresses and merges every row toward the left edge.
// Returns the new board and whether any cell changed.
func MoveLeft(board Board) (Board, bool) {
	var newBoard Board
	for y := 0; y < Size; y++ {
		newBoard[y] = CompressMergeRow(board[y])
	}
	return newBoard, newBoard != board
}

// MoveRight slides all tiles right by mirroring around MoveLeft.
func MoveRight(board Board) (Board, bool) {
	slid, moved := MoveLeft(ReverseRows(board))
	return ReverseRows(slid), moved
}

// MoveUp slides all tiles up by transposing around MoveLeft.
func MoveUp(board Board) (Board, bool) {
	slid, moved := MoveLeft(Transpose(board))
	return Transpose(slid), moved
}

// MoveDown slides all tiles down by transposing around MoveRight.
func MoveDown(board Board) (Board, bool) {
	slid, moved := MoveRight(Transpose(board))
	return Transpose(slid), moved
}

// Move performs a move in the given direction.
// Unknown directions leave the board untouched.
func Move(board Board, dir Direction) (Board, bool) {
	switch dir {
	case DirLeft:
		return MoveLeft(board)
	case DirRight:
		return MoveRight(board)
	case DirUp:
		return MoveUp(board)
	case DirDown:
		return MoveDown(board)
	default:
		return board, false
	}
}

// Cell addresses a board position.
type Cell struct {
	Row, Col int
}

// EmptyCells returns the empty positions in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if board[y][x] == 0 {
				cells = append(cells, Cell{Row: y, Col: x})
			}
		}
	}
	return cells
}

// TileCount returns the number of occupied cells.
func TileCount(board Board) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if board[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// TileSum returns the sum of all tile values. Moves preserve it.
func TileSum(board Board) int {
	sum := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sum += board[y][x]
		}
	}
	return sum
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if board[y][x] > maxVal {
				maxVal = board[y][x]
			}
		}
	}
	return maxVal
}

// String renders the board as a right-aligned text grid, "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b[y][x] == 0 {
				sb.WriteString("     .")
				continue
			}
			fmt.Fprintf(&sb, "%6d", b[y][x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
