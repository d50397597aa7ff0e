package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// NoWinner is the GameState.Winner value while nobody has won.
const NoWinner = -1

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Moves    int  // Pieces dropped so far
	Winner   int  // 0-based winning player index, or NoWinner
	Draw     bool // Board filled up without a winner
	GameOver bool // Winner found or draw
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Dropped is true when a piece landed during this tick.
	Dropped bool
}

// MatchSummary describes a finished or abandoned round.
type MatchSummary struct {
	GameID string
	Width  int
	Height int
	Winner int    // 0-based player index, or NoWinner
	Draw   bool   // Board filled without a winner
	Moves  int    // Pieces dropped
	Board  string // Encoded final grid
	CPU    bool   // Player 2 was the CPU
}
