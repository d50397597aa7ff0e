package grid

// Fill is the state of a single grid cell.
type Fill uint8

const (
	Empty       Fill = iota // Unoccupied, a piece can come to rest here
	Player1                 // Occupied by the first player
	Player2                 // Occupied by the second player
	OutOfBounds             // Returned by reads outside the grid, never stored
)

// String returns a human-readable name for the fill.
func (f Fill) String() string {
	switch f {
	case Empty:
		return "Empty"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	case OutOfBounds:
		return "OutOfBounds"
	default:
		return "Unknown"
	}
}

// IsPlayer reports whether the fill belongs to one of the two players.
func (f Fill) IsPlayer() bool {
	return f == Player1 || f == Player2
}

// PlayerFill returns the fill for a 0-based player index.
// Index 0 maps to Player1, anything else to Player2.
func PlayerFill(index int) Fill {
	if index == 0 {
		return Player1
	}
	return Player2
}

// PlayerIndex returns the 0-based player index for a fill, or -1.
func PlayerIndex(f Fill) int {
	switch f {
	case Player1:
		return 0
	case Player2:
		return 1
	default:
		return -1
	}
}

// Opponent returns the other player's fill.
// Non-player fills are returned unchanged.
func Opponent(f Fill) Fill {
	switch f {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return f
	}
}

// encoding characters, one per stored fill
const (
	charEmpty   = '.'
	charPlayer1 = '1'
	charPlayer2 = '2'
)

func (f Fill) char() byte {
	switch f {
	case Player1:
		return charPlayer1
	case Player2:
		return charPlayer2
	default:
		return charEmpty
	}
}

func fillFromChar(c byte) (Fill, bool) {
	switch c {
	case charEmpty:
		return Empty, true
	case charPlayer1:
		return Player1, true
	case charPlayer2:
		return Player2, true
	default:
		return Empty, false
	}
}
