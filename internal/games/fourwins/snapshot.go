package fourwins

// StateType names the phase of a round.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateWon         StateType = "won"
	StateDraw        StateType = "draw"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the complete game state for tests and replay checks.
type Snapshot struct {
	Tick    uint64
	Mode    Mode
	Current int    // player to move
	Cursor  int    // hovered column
	Moves   int
	Winner  int    // -1 while nobody has won
	Board   string // grid.Encode output
	State   StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.winner >= 0:
		state = StateWon
	case g.draw:
		state = StateDraw
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    g.mode,
		Current: g.current,
		Cursor:  g.cursor,
		Moves:   g.moves,
		Winner:  g.winner,
		Board:   g.grid.Encode(),
		State:   state,
	}
}
