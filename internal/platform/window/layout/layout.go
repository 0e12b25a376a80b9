// Package layout holds the pixel geometry of the graphical board.
// It does not import ebiten, so tests run without a display.
package layout

import (
	"image"
	"strconv"

	"github.com/vovakirdan/grid2048/internal/puzzle"
)

// Cells is the number of tiles along each side of the board.
const Cells = puzzle.Size

// Grid computes tile positions for a square board of fixed-size tiles.
type Grid struct {
	TileSize int
	Gap      int // background visible between neighbouring tiles
}

// NewGrid creates a grid with a gap proportional to the tile size.
func NewGrid(tileSize int) Grid {
	return Grid{TileSize: tileSize, Gap: tileSize / 20}
}

// WindowSize returns the window dimensions in pixels.
func (g Grid) WindowSize() (w, h int) {
	side := Cells * g.TileSize
	return side, side
}

// TileRect returns the painted area of the tile at (row, col).
// Each tile owns a TileSize square; half the gap is inset on every side.
func (g Grid) TileRect(row, col int) image.Rectangle {
	inset := g.Gap / 2
	x0 := col*g.TileSize + inset
	y0 := row*g.TileSize + inset
	x1 := (col+1)*g.TileSize - (g.Gap - inset)
	y1 := (row+1)*g.TileSize - (g.Gap - inset)
	return image.Rect(x0, y0, x1, y1)
}

// LabelCenter returns the point a tile label is centred on.
func (g Grid) LabelCenter(row, col int) (x, y float64) {
	r := g.TileRect(row, col)
	return float64(r.Min.X+r.Max.X) / 2, float64(r.Min.Y+r.Max.Y) / 2
}

// LabelSize shrinks the font for long labels so they stay inside the tile.
// Up to three digits use the base size.
func LabelSize(value int, base float64) float64 {
	digits := len(strconv.Itoa(value))
	if digits <= 3 {
		return base
	}
	return base * 3 / float64(digits)
}
