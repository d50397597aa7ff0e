package bot

import (
	"github.com/vovakirdan/four-wins/internal/grid"
)

// evaluate returns a heuristic score of p from me's point of view.
// Every window of WinLength cells is scored by its piece counts; pieces
// in the center column get a small bonus. Both sides use the same weights,
// so evaluate(p, me) == -evaluate(p, opponent).
func evaluate(p *position, me grid.Fill) int {
	opp := grid.Opponent(me)
	score := 0

	center := p.width / 2
	for y := 0; y < p.height; y++ {
		switch p.at(center, y) {
		case me:
			score += scoreCenter
		case opp:
			score -= scoreCenter
		}
	}

	for x := 0; x < p.width; x++ {
		for y := 0; y < p.height; y++ {
			for _, d := range lineDirs {
				score += scoreWindow(p, x, y, d[0], d[1], me, opp)
			}
		}
	}
	return score
}

func scoreWindow(p *position, x, y, dx, dy int, me, opp grid.Fill) int {
	mine, theirs, empty := 0, 0, 0
	for i := 0; i < grid.WinLength; i++ {
		switch p.at(x+i*dx, y+i*dy) {
		case me:
			mine++
		case opp:
			theirs++
		case grid.Empty:
			empty++
		default:
			return 0 // window leaves the board
		}
	}

	switch {
	case mine == 3 && empty == 1:
		return scoreThree
	case mine == 2 && empty == 2:
		return scoreTwo
	case theirs == 3 && empty == 1:
		return -scoreThree
	case theirs == 2 && empty == 2:
		return -scoreTwo
	}
	return 0
}
