package grid

// WinLength is the number of consecutive pieces needed to win.
const WinLength = 4

// NoWinner is returned by Winner when nobody has four in a row.
const NoWinner = -1

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Line is a winning run of cells, starting at the anchor.
type Line [WinLength]Cell

// Direction is a step between consecutive cells of a line.
type Direction struct {
	DX, DY int
}

// Directions checked from each anchor, in order.
var (
	Horizontal   = Direction{DX: 1, DY: 0}
	Vertical     = Direction{DX: 0, DY: 1}
	DiagonalUp   = Direction{DX: 1, DY: 1}
	DiagonalDown = Direction{DX: 1, DY: -1}
)

var directions = [...]Direction{Horizontal, Vertical, DiagonalUp, DiagonalDown}

// Winner returns the 0-based index of the winning player, or NoWinner.
// If several lines exist the first one in scan order is reported.
func (g *Grid) Winner() int {
	line, ok := g.WinningLine()
	if !ok {
		return NoWinner
	}
	return PlayerIndex(g.GetFill(line[0].X, line[0].Y))
}

// WinningLine returns the first four-in-a-row found, scanning rows from
// y = 0 and columns left to right within a row.
func (g *Grid) WinningLine() (Line, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fill := g.GetFill(x, y)
			if !fill.IsPlayer() {
				continue
			}
			for _, d := range directions {
				if g.runFrom(fill, x, y, d) {
					return lineFrom(x, y, d), true
				}
			}
		}
	}
	return Line{}, false
}

// runFrom reports whether the WinLength-1 cells after (x, y) in direction d
// all hold fill. Reads past the edge yield OutOfBounds and never match.
func (g *Grid) runFrom(fill Fill, x, y int, d Direction) bool {
	for i := 1; i < WinLength; i++ {
		ny := y + i*d.DY
		if d.DY < 0 && ny < 0 {
			return false
		}
		if g.GetFill(x+i*d.DX, ny) != fill {
			return false
		}
	}
	return true
}

func lineFrom(x, y int, d Direction) Line {
	var l Line
	for i := range l {
		l[i] = Cell{X: x + i*d.DX, Y: y + i*d.DY}
	}
	return l
}

// Contains reports whether the line passes through (x, y).
func (l Line) Contains(x, y int) bool {
	for _, c := range l {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}
