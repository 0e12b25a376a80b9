package core

import "math/bits"

// Color is a semantic color slot for a screen cell.
// Frontends resolve slots to concrete colors through the active theme.
type Color uint8

// Fixed color slots. Tile slots follow and are addressed via TileColor.
const (
	ColorDefault Color = iota
	ColorGrid          // board background and borders
	ColorEmpty         // unoccupied cell
	ColorText          // tile labels
	ColorHint          // HUD text under the board
	colorTileBase
)

// TileColorSlots is the number of distinct tile colors (2 through 2048).
const TileColorSlots = 11

// TileColor returns the color slot for a tile value.
// Values outside 2..2048 (or not a power of two) share the empty color.
func TileColor(value int) Color {
	if value < 2 || value&(value-1) != 0 {
		return ColorEmpty
	}
	exp := bits.TrailingZeros(uint(value))
	if exp > TileColorSlots {
		return ColorEmpty
	}
	return colorTileBase + Color(exp-1)
}

// TileValue reports the tile value a slot was derived from.
// Returns false for non-tile slots.
func (c Color) TileValue() (int, bool) {
	if c < colorTileBase || c >= colorTileBase+TileColorSlots {
		return 0, false
	}
	v := 2 << int(c-colorTileBase)
	return v, true
}
