// Package puzzle implements 2048 on a fixed 6x6 board: the row
// compress/merge primitive, the four directional moves derived from it by
// reversal and transposition, the random tile spawner, and the interaction
// loop that owns the board between input events.
package puzzle
