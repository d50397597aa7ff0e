// Package bot implements the CPU opponent: a negamax search with alpha-beta
// pruning and a transposition table over the Four Wins grid.
package bot

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/four-wins/internal/grid"
)

// Score priorities.
const (
	scoreWin    = 1_000_000
	scoreThree  = 50
	scoreTwo    = 10
	scoreCenter = 3
)

// scoreMate separates forced wins and losses from heuristic scores.
// Wins are scoreWin minus the ply they happen at, and no board has
// anywhere near scoreWin/2 plies.
const scoreMate = scoreWin / 2

// tableCapacity is the initial size of the transposition table.
const tableCapacity = 1 << 14

type boundFlag uint8

const (
	boundExact boundFlag = iota
	boundLower
	boundUpper
)

type entry struct {
	depth int
	score int
	flag  boundFlag
}

// Bot chooses moves for one side of the board.
type Bot struct {
	Depth int

	table   *intmap.Map[uint64, entry]
	zobrist *zobrist
	cells   int
	nodes   int
}

// New creates a bot searching depth plies. Depth below 1 is treated as 1.
func New(depth int) *Bot {
	if depth < 1 {
		depth = 1
	}
	return &Bot{
		Depth: depth,
		table: intmap.New[uint64, entry](tableCapacity),
	}
}

// Nodes returns the number of positions visited by the last search.
func (b *Bot) Nodes() int {
	return b.nodes
}

// ChooseColumn returns the column the bot plays as me, or -1 if the board
// has no playable column. The choice is deterministic for a given board.
func (b *Bot) ChooseColumn(g *grid.Grid, me grid.Fill) int {
	b.prepare(g)
	b.nodes = 0
	p := newPosition(g, b.zobrist)
	order := columnOrder(p.width)
	opp := grid.Opponent(me)

	// Immediate win, then immediate block.
	for _, f := range []grid.Fill{me, opp} {
		for _, x := range order {
			if !p.canPlay(x) {
				continue
			}
			y := p.play(x, f)
			won := p.wins(x, y)
			p.undo(x)
			if won {
				return x
			}
		}
	}

	best, bestScore := -1, -scoreWin*2
	alpha, beta := -scoreWin*2, scoreWin*2
	for _, x := range order {
		if !p.canPlay(x) {
			continue
		}
		if best < 0 {
			best = x
		}
		y := p.play(x, me)
		score := -b.negamax(p, opp, b.Depth-1, -beta, -alpha, 1, x, y)
		p.undo(x)
		if score > bestScore {
			best, bestScore = x, score
		}
		if score > alpha {
			alpha = score
		}
	}
	return best
}

// prepare resets per-search state and rebuilds hash keys when the board
// size changed since the previous call.
func (b *Bot) prepare(g *grid.Grid) {
	cells := g.Width() * g.Height()
	if b.zobrist == nil || b.cells != cells {
		b.zobrist = newZobrist(cells)
		b.cells = cells
	}
	if b.table == nil {
		b.table = intmap.New[uint64, entry](tableCapacity)
	}
	b.table.Clear()
}

// negamax scores the position for toMove after the opponent played (lastX, lastY).
func (b *Bot) negamax(p *position, toMove grid.Fill, depth, alpha, beta, ply, lastX, lastY int) int {
	b.nodes++

	if p.wins(lastX, lastY) {
		return -(scoreWin - ply)
	}
	if p.full() {
		return 0
	}
	if depth <= 0 {
		return evaluate(p, toMove)
	}

	alphaOrig := alpha
	key := p.hash ^ uint64(toMove)
	if e, ok := b.table.Get(key); ok && e.depth >= depth {
		score := fromTable(e.score, ply)
		switch e.flag {
		case boundExact:
			return score
		case boundLower:
			alpha = max(alpha, score)
		case boundUpper:
			beta = min(beta, score)
		}
		if alpha >= beta {
			return score
		}
	}

	best := -scoreWin * 2
	opp := grid.Opponent(toMove)
	for _, x := range columnOrder(p.width) {
		if !p.canPlay(x) {
			continue
		}
		y := p.play(x, toMove)
		score := -b.negamax(p, opp, depth-1, -beta, -alpha, ply+1, x, y)
		p.undo(x)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	flag := boundExact
	switch {
	case best <= alphaOrig:
		flag = boundUpper
	case best >= beta:
		flag = boundLower
	}
	b.table.Put(key, entry{depth: depth, score: toTable(best, ply), flag: flag})

	return best
}

// toTable converts a win or loss score at ply into a distance from the
// stored node, so the entry is valid wherever the position is reached.
func toTable(score, ply int) int {
	switch {
	case score > scoreMate:
		return score + ply
	case score < -scoreMate:
		return score - ply
	}
	return score
}

// fromTable undoes toTable for a node at ply.
func fromTable(score, ply int) int {
	switch {
	case score > scoreMate:
		return score - ply
	case score < -scoreMate:
		return score + ply
	}
	return score
}

// columnOrder lists columns center first, alternating outward.
func columnOrder(width int) []int {
	order := make([]int, 0, width)
	center := (width - 1) / 2
	order = append(order, center)
	for d := 1; len(order) < width; d++ {
		if center+d < width {
			order = append(order, center+d)
		}
		if center-d >= 0 && len(order) < width {
			order = append(order, center-d)
		}
	}
	return order
}
