package bot

import (
	"math/rand"

	"github.com/vovakirdan/four-wins/internal/grid"
)

// zobristSeed is fixed so hashes are stable across runs.
const zobristSeed = 0x46_6f_75_72

type zobrist struct {
	keys [][2]uint64 // per cell, per player
}

func newZobrist(cells int) *zobrist {
	rng := rand.New(rand.NewSource(zobristSeed))
	z := &zobrist{keys: make([][2]uint64, cells)}
	for i := range z.keys {
		z.keys[i][0] = rng.Uint64()
		z.keys[i][1] = rng.Uint64()
	}
	return z
}

func (z *zobrist) key(cell int, f grid.Fill) uint64 {
	switch f {
	case grid.Player1:
		return z.keys[cell][0]
	case grid.Player2:
		return z.keys[cell][1]
	default:
		return 0
	}
}
