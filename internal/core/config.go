package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in cells (terminal) or pixels (window)
	ScreenH int   // Screen height in cells or pixels
	Seed    int64 // RNG seed for reproducible tile placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible state of the interaction loop.
type GameState struct {
	Stopped bool // Quit was requested; no further moves are processed
	Moves   int  // Accepted moves so far
	Tiles   int  // Occupied cells on the board
}

// StepResult is returned by Game.Step after each input event.
type StepResult struct {
	State  GameState
	Redraw bool // The board changed and the frontend should repaint
}
