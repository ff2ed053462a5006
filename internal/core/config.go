package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// MatchResult is the final outcome of a two-player board game.
type MatchResult struct {
	BoardW int
	BoardH int
	Black  int    // Black discs at the end
	White  int    // White discs at the end
	Winner string // "black", "white" or "draw"
	Turns  int    // Turns played, passes included
	Passes int
}

// Margin returns the winner's disc lead, zero on a draw.
func (r MatchResult) Margin() int {
	return Abs(r.Black - r.White)
}
