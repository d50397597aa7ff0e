package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/four-wins/internal/grid"
)

func TestNewGrid(t *testing.T) {
	g, err := grid.New(6, 7)
	require.NoError(t, err)

	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 6, g.Height())

	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			assert.Equal(t, grid.Empty, g.GetFill(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestNewGridInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 7},
		{"zero width", 6, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := grid.New(tt.height, tt.width)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
		})
	}
}

func TestGetFillOutOfBounds(t *testing.T) {
	g := grid.MustNew(6, 7)
	g.Insert(0, grid.Player1)

	coords := [][2]int{{7, 0}, {0, 6}, {-1, 0}, {0, -1}, {100, 100}}
	for _, c := range coords {
		assert.Equal(t, grid.OutOfBounds, g.GetFill(c[0], c[1]), "coord %v", c)
	}
}

func TestNonSquareGridKeepsCellsApart(t *testing.T) {
	g := grid.MustNew(3, 5)

	for x := 0; x < 5; x++ {
		for i := 0; i < 3; i++ {
			require.Equal(t, i, g.Insert(x, grid.PlayerFill(x%2)))
		}
	}

	for x := 0; x < 5; x++ {
		for y := 0; y < 3; y++ {
			assert.Equal(t, grid.PlayerFill(x%2), g.GetFill(x, y))
		}
	}
	assert.True(t, g.IsFull())
}

func TestInsertGravity(t *testing.T) {
	g := grid.MustNew(6, 7)

	assert.Equal(t, 0, g.Insert(3, grid.Player1))
	assert.Equal(t, 1, g.Insert(3, grid.Player2))
	assert.Equal(t, 2, g.Insert(3, grid.Player1))
	assert.Equal(t, 0, g.Insert(4, grid.Player2))

	assert.Equal(t, grid.Player1, g.GetFill(3, 0))
	assert.Equal(t, grid.Player2, g.GetFill(3, 1))
	assert.Equal(t, grid.Player1, g.GetFill(3, 2))
	assert.Equal(t, grid.Empty, g.GetFill(3, 3))
	assert.Equal(t, grid.Player2, g.GetFill(4, 0))
}

func TestInsertThenGetFill(t *testing.T) {
	g := grid.MustNew(6, 6)

	moves := []struct {
		x    int
		fill grid.Fill
	}{
		{0, grid.Player1}, {0, grid.Player2}, {5, grid.Player1},
		{2, grid.Player2}, {0, grid.Player1}, {5, grid.Player2},
	}

	for _, m := range moves {
		row := g.Insert(m.x, m.fill)
		require.NotEqual(t, grid.NoRow, row)
		assert.Equal(t, m.fill, g.GetFill(m.x, row))
	}
}

func TestInsertFullColumn(t *testing.T) {
	g := grid.MustNew(6, 7)

	for i := 0; i < g.Height(); i++ {
		require.Equal(t, i, g.Insert(2, grid.PlayerFill(i%2)))
	}
	before := g.Encode()

	assert.Equal(t, grid.NoRow, g.Insert(2, grid.Player1))
	assert.Equal(t, before, g.Encode())
	assert.True(t, g.ColumnFull(2))
	assert.NotContains(t, g.ValidColumns(), 2)
}

func TestInsertOutOfRangeColumn(t *testing.T) {
	g := grid.MustNew(6, 7)

	assert.Equal(t, grid.NoRow, g.Insert(7, grid.Player1))
	assert.Equal(t, grid.NoRow, g.Insert(-1, grid.Player1))
	assert.Equal(t, 0, g.Count())
}

func TestReset(t *testing.T) {
	g := grid.MustNew(6, 6)
	for x := 0; x < 4; x++ {
		g.Insert(x, grid.Player1)
	}
	require.Equal(t, 0, g.Winner())

	g.Reset()

	assert.Equal(t, grid.NoWinner, g.Winner())
	assert.Equal(t, 6, g.Width())
	assert.Equal(t, 6, g.Height())
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			assert.Equal(t, grid.Empty, g.GetFill(x, y))
		}
	}
}

func TestIsFull(t *testing.T) {
	g := grid.MustNew(2, 2)
	assert.False(t, g.IsFull())

	g.Insert(0, grid.Player1)
	g.Insert(1, grid.Player2)
	g.Insert(0, grid.Player2)
	assert.False(t, g.IsFull())

	g.Insert(1, grid.Player1)
	assert.True(t, g.IsFull())
	assert.Empty(t, g.ValidColumns())
}

func TestClone(t *testing.T) {
	g := grid.MustNew(6, 7)
	g.Insert(0, grid.Player1)

	c := g.Clone()
	c.Insert(0, grid.Player2)

	assert.Equal(t, grid.Empty, g.GetFill(0, 1))
	assert.Equal(t, grid.Player2, c.GetFill(0, 1))
}

func TestEncodeDecode(t *testing.T) {
	g := grid.MustNew(3, 4)
	g.Insert(0, grid.Player1)
	g.Insert(0, grid.Player2)
	g.Insert(3, grid.Player2)

	assert.Equal(t, "12.......2..", g.Encode())

	d, err := grid.Decode(3, 4, g.Encode())
	require.NoError(t, err)
	assert.Equal(t, g.String(), d.String())
}

func TestDecodeErrors(t *testing.T) {
	_, err := grid.Decode(2, 2, "...")
	assert.Error(t, err)

	_, err = grid.Decode(2, 2, "..x.")
	assert.Error(t, err)

	_, err = grid.Decode(0, 2, "")
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

func TestString(t *testing.T) {
	g := grid.MustNew(2, 3)
	g.Insert(1, grid.Player1)
	g.Insert(1, grid.Player2)
	g.Insert(2, grid.Player1)

	assert.Equal(t, ".2.\n.11", g.String())
}

func TestFillHelpers(t *testing.T) {
	assert.Equal(t, grid.Player1, grid.PlayerFill(0))
	assert.Equal(t, grid.Player2, grid.PlayerFill(1))
	assert.Equal(t, 0, grid.PlayerIndex(grid.Player1))
	assert.Equal(t, 1, grid.PlayerIndex(grid.Player2))
	assert.Equal(t, -1, grid.PlayerIndex(grid.Empty))
	assert.Equal(t, -1, grid.PlayerIndex(grid.OutOfBounds))
	assert.Equal(t, grid.Player2, grid.Opponent(grid.Player1))
	assert.Equal(t, grid.Empty, grid.Opponent(grid.Empty))
	assert.Equal(t, "OutOfBounds", grid.OutOfBounds.String())
}
