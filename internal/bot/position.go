package bot

import (
	"github.com/vovakirdan/four-wins/internal/grid"
)

// position is a mutable copy of a grid that supports undo, so the search
// can play and take back moves without allocating.
type position struct {
	width, height int
	cells         []grid.Fill // column-major, same layout as grid.Grid
	heights       []int       // next free row per column
	hash          uint64
	zobrist       *zobrist
}

func newPosition(g *grid.Grid, z *zobrist) *position {
	p := &position{
		width:   g.Width(),
		height:  g.Height(),
		cells:   make([]grid.Fill, g.Width()*g.Height()),
		heights: make([]int, g.Width()),
		zobrist: z,
	}
	for x := 0; x < p.width; x++ {
		for y := 0; y < p.height; y++ {
			f := g.GetFill(x, y)
			if f == grid.Empty {
				break
			}
			p.cells[p.index(x, y)] = f
			p.heights[x] = y + 1
			p.hash ^= z.key(p.index(x, y), f)
		}
	}
	return p
}

func (p *position) index(x, y int) int {
	return x*p.height + y
}

func (p *position) at(x, y int) grid.Fill {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return grid.OutOfBounds
	}
	return p.cells[p.index(x, y)]
}

func (p *position) canPlay(x int) bool {
	return p.heights[x] < p.height
}

func (p *position) play(x int, f grid.Fill) int {
	y := p.heights[x]
	i := p.index(x, y)
	p.cells[i] = f
	p.heights[x]++
	p.hash ^= p.zobrist.key(i, f)
	return y
}

func (p *position) undo(x int) {
	p.heights[x]--
	y := p.heights[x]
	i := p.index(x, y)
	p.hash ^= p.zobrist.key(i, p.cells[i])
	p.cells[i] = grid.Empty
}

func (p *position) full() bool {
	for x := 0; x < p.width; x++ {
		if p.canPlay(x) {
			return false
		}
	}
	return true
}

var lineDirs = [...][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// wins reports whether the piece at (x, y) completes a line through it.
func (p *position) wins(x, y int) bool {
	f := p.at(x, y)
	for _, d := range lineDirs {
		n := 1 + p.run(x, y, d[0], d[1], f) + p.run(x, y, -d[0], -d[1], f)
		if n >= grid.WinLength {
			return true
		}
	}
	return false
}

func (p *position) run(x, y, dx, dy int, f grid.Fill) int {
	n := 0
	for i := 1; i < grid.WinLength; i++ {
		if p.at(x+i*dx, y+i*dy) != f {
			break
		}
		n++
	}
	return n
}
