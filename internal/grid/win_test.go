package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/four-wins/internal/grid"
)

// drop inserts each (column, fill) pair in order and fails on a rejected move.
func drop(t *testing.T, g *grid.Grid, moves ...any) {
	t.Helper()
	require.Zero(t, len(moves)%2, "moves come in (column, fill) pairs")
	for i := 0; i < len(moves); i += 2 {
		x := moves[i].(int)
		f := moves[i+1].(grid.Fill)
		require.NotEqual(t, grid.NoRow, g.Insert(x, f), "insert column %d", x)
	}
}

func TestWinnerEmptyGrid(t *testing.T) {
	g := grid.MustNew(6, 7)
	assert.Equal(t, grid.NoWinner, g.Winner())

	_, ok := g.WinningLine()
	assert.False(t, ok)
}

func TestWinnerHorizontal(t *testing.T) {
	g := grid.MustNew(6, 6)

	for x := 0; x < 3; x++ {
		g.Insert(x, grid.Player1)
		assert.Equal(t, grid.NoWinner, g.Winner())
	}
	g.Insert(3, grid.Player1)

	assert.Equal(t, 0, g.Winner())

	line, ok := g.WinningLine()
	require.True(t, ok)
	assert.Equal(t, grid.Line{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, line)
}

func TestWinnerVertical(t *testing.T) {
	g := grid.MustNew(6, 6)

	// Three Player2 interrupted by Player1: no win.
	drop(t, g, 2, grid.Player2, 2, grid.Player2, 2, grid.Player2, 2, grid.Player1)
	assert.Equal(t, grid.NoWinner, g.Winner())

	for i := 0; i < 3; i++ {
		g.Insert(4, grid.Player2)
		assert.Equal(t, grid.NoWinner, g.Winner(), "after %d pieces", i+1)
	}
	g.Insert(4, grid.Player2)

	assert.Equal(t, 1, g.Winner())
	line, ok := g.WinningLine()
	require.True(t, ok)
	assert.Equal(t, grid.Line{{4, 0}, {4, 1}, {4, 2}, {4, 3}}, line)
}

func TestWinnerDiagonalUp(t *testing.T) {
	g := grid.MustNew(6, 7)

	drop(t, g,
		0, grid.Player1,
		1, grid.Player2, 1, grid.Player1,
		2, grid.Player2, 2, grid.Player2, 2, grid.Player1,
		3, grid.Player2, 3, grid.Player1, 3, grid.Player2,
	)
	assert.Equal(t, grid.NoWinner, g.Winner())

	g.Insert(3, grid.Player1)
	assert.Equal(t, 0, g.Winner())

	line, ok := g.WinningLine()
	require.True(t, ok)
	assert.Equal(t, grid.Line{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, line)
}

func TestWinnerDiagonalDown(t *testing.T) {
	g := grid.MustNew(6, 7)

	// Player1 at (0,3), (1,2), (2,1), (3,0); Player2 fills underneath.
	drop(t, g,
		0, grid.Player2, 0, grid.Player2, 0, grid.Player2,
		1, grid.Player2, 1, grid.Player2,
		2, grid.Player2,
		3, grid.Player1,
		2, grid.Player1,
		1, grid.Player1,
	)
	assert.Equal(t, grid.NoWinner, g.Winner())

	g.Insert(0, grid.Player1)
	assert.Equal(t, 0, g.Winner())

	line, ok := g.WinningLine()
	require.True(t, ok)
	assert.Equal(t, grid.Line{{0, 3}, {1, 2}, {2, 1}, {3, 0}}, line)
	assert.True(t, line.Contains(2, 1))
	assert.False(t, line.Contains(2, 2))
}

func TestWinnerDiagonalDownNearBottom(t *testing.T) {
	g := grid.MustNew(4, 4)

	// Pieces on the bottom rows would step below row 0 on the downward diagonal.
	drop(t, g, 0, grid.Player1, 1, grid.Player1, 1, grid.Player2, 2, grid.Player1)

	assert.NotPanics(t, func() {
		assert.Equal(t, grid.NoWinner, g.Winner())
	})
}

func TestWinnerSmallGridNeverWins(t *testing.T) {
	g := grid.MustNew(3, 3)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			g.Insert(x, grid.Player1)
		}
	}
	assert.Equal(t, grid.NoWinner, g.Winner())
}

func TestWinnerFirstInScanOrder(t *testing.T) {
	g := grid.MustNew(6, 7)

	// Player2 wins on row 0, Player1 on row 1. Row 0 is scanned first.
	for x := 0; x < 4; x++ {
		g.Insert(x, grid.Player2)
	}
	for x := 0; x < 4; x++ {
		g.Insert(x, grid.Player1)
	}

	assert.Equal(t, 1, g.Winner())
}

func TestWinnerIgnoresNonPlayerFills(t *testing.T) {
	g := grid.MustNew(6, 6)
	for x := 0; x < 4; x++ {
		g.Insert(x, grid.OutOfBounds)
	}
	assert.Equal(t, grid.NoWinner, g.Winner())
}
