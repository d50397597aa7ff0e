package fourwins

import (
	"fmt"

	"github.com/vovakirdan/four-wins/internal/core"
	"github.com/vovakirdan/four-wins/internal/grid"
)

var playerColors = [2]core.Color{core.ColorBrightRed, core.ColorBrightYellow}

// Render draws the game state to the screen. It only reads the grid.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := NewLayout(g.grid.Width(), g.grid.Height(), g.screenW)

	g.renderHUD(dst, l)
	g.renderBoard(dst, l)
	g.renderPieces(dst, l)
	g.renderFooter(dst, l)

	if g.paused {
		g.drawOverlay(dst, l, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := MinScreenSize(g.grid.Width(), g.grid.Height())
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, l Layout) {
	dst.DrawTextCentered(0, g.Title())

	status, color := g.statusLine()
	x := (dst.Width() - len([]rune(status))) / 2
	dst.DrawTextColored(x, 1, status, color)

	// Chip hovering over the cursor column while the round is running.
	if !g.over() && !g.cpuTurn() {
		dst.SetColored(l.ColumnCenter(g.cursor), l.OriginY-1, g.glyph(g.current), playerColors[g.current])
	}
}

func (g *Game) statusLine() (string, core.Color) {
	switch {
	case g.winner != grid.NoWinner:
		return fmt.Sprintf("%s wins in %d moves!", g.cfg.PlayerName(g.winner), g.moves), playerColors[g.winner]
	case g.draw:
		return "Draw - the board is full", core.ColorBrightWhite
	case g.cpuTurn():
		return fmt.Sprintf("%s (CPU) is thinking...", g.cfg.PlayerName(g.current)), playerColors[g.current]
	default:
		return fmt.Sprintf("%s to move", g.cfg.PlayerName(g.current)), playerColors[g.current]
	}
}

// renderBoard draws the grid lines.
func (g *Game) renderBoard(dst *core.Screen, l Layout) {
	cols, rows := l.Cols, l.Rows
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			px := l.OriginX + i*blockW
			py := l.OriginY + j*blockH

			var corner rune
			switch {
			case j == 0 && i == 0:
				corner = '┌'
			case j == 0 && i == cols:
				corner = '┐'
			case j == rows && i == 0:
				corner = '└'
			case j == rows && i == cols:
				corner = '┘'
			case j == 0:
				corner = '┬'
			case j == rows:
				corner = '┴'
			case i == 0:
				corner = '├'
			case i == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorBlue)

			if i < cols {
				for k := 1; k < blockW; k++ {
					dst.SetColored(px+k, py, '─', core.ColorBlue)
				}
			}
			if j < rows {
				for k := 1; k < blockH; k++ {
					dst.SetColored(px, py+k, '│', core.ColorBlue)
				}
			}
		}
	}
}

func (g *Game) renderPieces(dst *core.Screen, l Layout) {
	winning := g.winner != grid.NoWinner
	for x := 0; x < g.grid.Width(); x++ {
		for y := 0; y < g.grid.Height(); y++ {
			idx := grid.PlayerIndex(g.grid.GetFill(x, y))
			if idx < 0 {
				continue
			}
			sx, sy := l.CellCenter(x, y)
			color := playerColors[idx]
			if winning && g.line.Contains(x, y) {
				color = core.ColorGreen
			}
			dst.SetColored(sx, sy, g.glyph(idx), color)
			if g.hasLast && g.lastDrop.X == x && g.lastDrop.Y == y && !winning {
				dst.SetColored(sx-1, sy, '[', core.ColorGray)
				dst.SetColored(sx+1, sy, ']', core.ColorGray)
			}
		}
	}

	// Column numbers under the board.
	for x := 0; x < g.grid.Width(); x++ {
		label := fmt.Sprintf("%d", x+1)
		dst.DrawTextColored(l.ColumnCenter(x)-(len(label)-1)/2, l.OriginY+l.Height(), label, core.ColorGray)
	}
}

func (g *Game) renderFooter(dst *core.Screen, l Layout) {
	y := l.OriginY + l.Height() + 1
	if g.notice != "" {
		dst.DrawTextCentered(y, g.notice)
	}
	dst.DrawTextCentered(y+1, g.Controls())
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, l Layout, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	centerX := l.OriginX + l.Width()/2
	centerY := l.OriginY + l.Height()/2
	box := core.Rect{X: centerX - boxW/2, Y: centerY - boxH/2, W: boxW, H: boxH}

	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len([]rune(line))/2, box.Y+1+i, line)
	}
}

func (g *Game) glyph(player int) rune {
	return g.cfg.PlayerGlyph(player)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.over() {
		return "R: New round | B: Menu | Q: Quit"
	}
	return "←/→: Move | Space: Drop | P: Pause | Q: Quit"
}
