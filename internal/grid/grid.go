// Package grid implements the vertical-drop board used by Four Wins:
// fill state of a fixed-size grid, gravity-drop insertion and
// four-in-a-row detection. It has no dependencies on the platform layer.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// NoRow is returned by Insert when the piece could not be placed.
const NoRow = -1

// ErrInvalidDimensions is returned by New for non-positive sizes.
var ErrInvalidDimensions = errors.New("grid: dimensions must be positive")

// Grid is a width x height board of Fill values.
// x is the column (0 = left), y is the row (0 = bottom, fills first).
type Grid struct {
	width  int
	height int
	cells  []Fill // column-major: a column's cells are contiguous
}

// New creates a grid with every cell Empty.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Fill, width*height),
	}, nil
}

// MustNew is like New but panics on invalid dimensions.
// Intended for tests and package-level presets.
func MustNew(height, width int) *Grid {
	g, err := New(height, width)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) index(x, y int) int {
	return x*g.height + y
}

// GetFill returns the fill at (x, y), or OutOfBounds if the cell does not exist.
func (g *Grid) GetFill(x, y int) Fill {
	if !g.InBounds(x, y) {
		return OutOfBounds
	}
	return g.cells[g.index(x, y)]
}

func (g *Grid) setFill(x, y int, f Fill) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = f
}

// Insert drops f into column x. The piece settles in the lowest Empty row,
// which is returned. Returns NoRow if the column is full or out of range;
// the grid is unchanged in that case.
//
// The fill is stored as given; callers pass Player1 or Player2.
func (g *Grid) Insert(x int, f Fill) int {
	for y := 0; y < g.height; y++ {
		if g.GetFill(x, y) == Empty {
			g.setFill(x, y, f)
			return y
		}
	}
	return NoRow
}

// Reset clears every cell back to Empty without resizing.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// ColumnFull reports whether no piece can be dropped into column x.
// Columns outside the grid are reported as full.
func (g *Grid) ColumnFull(x int) bool {
	return g.GetFill(x, g.height-1) != Empty
}

// ValidColumns returns the columns that can still take a piece, left to right.
func (g *Grid) ValidColumns() []int {
	cols := make([]int, 0, g.width)
	for x := 0; x < g.width; x++ {
		if !g.ColumnFull(x) {
			cols = append(cols, x)
		}
	}
	return cols
}

// IsFull reports whether every cell is occupied.
func (g *Grid) IsFull() bool {
	for x := 0; x < g.width; x++ {
		if !g.ColumnFull(x) {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, f := range g.cells {
		if f != Empty {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Fill, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Encode returns a compact representation with one character per cell,
// column by column from the bottom: '.' empty, '1' and '2' for the players.
func (g *Grid) Encode() string {
	out := make([]byte, len(g.cells))
	for i, f := range g.cells {
		out[i] = f.char()
	}
	return string(out)
}

// Decode rebuilds a grid produced by Encode.
func Decode(height, width int, s string) (*Grid, error) {
	g, err := New(height, width)
	if err != nil {
		return nil, err
	}
	if len(s) != width*height {
		return nil, fmt.Errorf("grid: encoded length %d does not match %dx%d", len(s), width, height)
	}
	for i := 0; i < len(s); i++ {
		f, ok := fillFromChar(s[i])
		if !ok {
			return nil, fmt.Errorf("grid: invalid cell %q at offset %d", s[i], i)
		}
		g.cells[i] = f
	}
	return g, nil
}

// String draws the grid top row first, as it appears on screen.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			sb.WriteByte(g.GetFill(x, y).char())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
