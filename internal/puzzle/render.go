package puzzle

import (
	"strconv"

	"github.com/vovakirdan/grid2048/internal/core"
)

const (
	cellWidth  = 7 // 6 columns of tile plus the left border
	cellHeight = 2 // 1 row of tile plus the top border

	// BoardWidth and BoardHeight are the terminal footprint of the grid.
	BoardWidth  = Size*cellWidth + 1
	BoardHeight = Size*cellHeight + 1

	hudHeight = 2
)

// MinScreen returns the smallest terminal size that fits the board and title.
func MinScreen() (w, h int) {
	return BoardWidth, BoardHeight + hudHeight
}

// Render draws the current board into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := MinScreen()
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst)
		return
	}

	dst.DrawTextCentered(0, "2048", core.ColorHint)

	boardX := (dst.Width() - BoardWidth) / 2
	RenderBoard(dst, g.board, boardX, hudHeight)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorHint)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorHint)
}

// RenderBoard draws the grid with its top-left corner at (boardX, boardY).
// Occupied cells are filled with their tile color and labelled; empty cells
// get the empty color and no label.
func RenderBoard(dst *core.Screen, board Board, boardX, boardY int) {
	for y := 0; y < Size+1; y++ {
		for x := 0; x < Size+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetCell(px, py, core.Cell{Rune: gridCorner(x, y), Fg: core.ColorGrid})

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Fg: core.ColorGrid})
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Fg: core.ColorGrid})
				}
			}
		}
	}

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			val := board[y][x]
			inner := core.NewRect(boardX+x*cellWidth+1, boardY+y*cellHeight+1, cellWidth-1, cellHeight-1)
			bg := core.TileColor(val)
			dst.FillRect(inner, ' ', core.ColorText, bg)

			if val == 0 {
				continue
			}

			label := strconv.Itoa(val)
			padLeft := (inner.W - len(label)) / 2
			if padLeft < 0 {
				padLeft = 0
			}
			dst.DrawStyledText(inner.X+padLeft, inner.Y, label, core.ColorText, bg)
		}
	}
}

// gridCorner picks the box-drawing rune for a grid intersection.
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}
