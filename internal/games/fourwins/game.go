// Package fourwins implements the Four Wins game loop: two players take
// turns dropping pieces into a vertical grid until one has four in a row
// or the board fills up.
package fourwins

import (
	"github.com/vovakirdan/four-wins/internal/bot"
	"github.com/vovakirdan/four-wins/internal/config"
	"github.com/vovakirdan/four-wins/internal/core"
	"github.com/vovakirdan/four-wins/internal/grid"
	"github.com/vovakirdan/four-wins/internal/registry"
)

// Mode selects who controls the second player.
type Mode string

const (
	ModeHotSeat Mode = "hotseat" // two humans share the keyboard
	ModeVsCPU   Mode = "cpu"     // Player2 is the bot
)

// Registered game IDs.
const (
	IDHotSeat = "fourwins"
	IDVsCPU   = "fourwins_cpu"
)

// cpuThinkTicks delays the CPU reply so the human's piece is visible first.
const cpuThinkTicks = 8

// Game is one Four Wins session. It owns the grid, whose turn it is and
// the cursor column; the platform calls Step once per tick.
type Game struct {
	mode       Mode
	cfg        config.FourWinsConfig
	difficulty config.DifficultyPreset

	grid    *grid.Grid
	cpu     *bot.Bot
	current int // 0-based index of the player to move
	cursor  int // column the current player's chip hovers over
	tick    uint64

	moves    int
	winner   int
	line     grid.Line
	draw     bool
	lastDrop grid.Cell
	hasLast  bool
	cpuWait  int
	notice   string // one-line feedback, e.g. "Column full"

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a hot-seat game.
func New(opts registry.Options) *Game {
	return newGame(ModeHotSeat, opts)
}

// NewVsCPU creates a game where Player2 is played by the bot.
func NewVsCPU(opts registry.Options) *Game {
	return newGame(ModeVsCPU, opts)
}

func newGame(mode Mode, opts registry.Options) *Game {
	cfg := opts.Config
	g, err := grid.New(cfg.Board.Height, cfg.Board.Width)
	if err != nil {
		cfg.Board = config.DefaultFourWinsConfig().Board
		g = grid.MustNew(cfg.Board.Height, cfg.Board.Width)
	}

	game := &Game{
		mode:       mode,
		cfg:        cfg,
		difficulty: opts.Difficulty,
		grid:       g,
		winner:     grid.NoWinner,
	}
	if mode == ModeVsCPU {
		game.cpu = bot.New(cfg.CPU.Depth(opts.Difficulty))
	}
	return game
}

func init() {
	registry.Register(IDHotSeat, func(opts registry.Options) registry.Game {
		return New(opts)
	})
	registry.Register(IDVsCPU, func(opts registry.Options) registry.Game {
		return NewVsCPU(opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeVsCPU {
		return IDVsCPU
	}
	return IDHotSeat
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeVsCPU {
		return "Four Wins (vs CPU)"
	}
	return "Four Wins"
}

// Grid exposes the board for read-only use by renderers and tests.
func (g *Game) Grid() *grid.Grid {
	return g.grid
}

// Reset starts a new round on the same board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.grid.Reset()
	g.tick = 0
	g.current = 0
	g.cursor = g.grid.Width() / 2
	g.moves = 0
	g.winner = grid.NoWinner
	g.line = grid.Line{}
	g.draw = false
	g.hasLast = false
	g.cpuWait = 0
	g.notice = ""
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := MinScreenSize(g.grid.Width(), g.grid.Height())
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}
	if g.paused || g.over() {
		return core.StepResult{State: g.State()}
	}

	if g.cpuTurn() {
		g.cpuWait++
		if g.cpuWait < cpuThinkTicks {
			return core.StepResult{State: g.State()}
		}
		x := g.cpu.ChooseColumn(g.grid, grid.PlayerFill(g.current))
		dropped := x >= 0 && g.drop(x)
		return core.StepResult{State: g.State(), Dropped: dropped}
	}

	if in.Has(core.ActionLeft) {
		g.cursor = core.Clamp(g.cursor-1, 0, g.grid.Width()-1)
		g.notice = ""
	}
	if in.Has(core.ActionRight) {
		g.cursor = core.Clamp(g.cursor+1, 0, g.grid.Width()-1)
		g.notice = ""
	}

	dropped := false
	if in.Has(core.ActionDrop) {
		dropped = g.drop(g.cursor)
	}

	return core.StepResult{State: g.State(), Dropped: dropped}
}

// drop inserts the current player's piece in column x and settles the turn.
// A full column leaves the turn with the same player.
func (g *Game) drop(x int) bool {
	fill := grid.PlayerFill(g.current)
	y := g.grid.Insert(x, fill)
	if y == grid.NoRow {
		g.notice = "Column full"
		return false
	}

	g.moves++
	g.lastDrop = grid.Cell{X: x, Y: y}
	g.hasLast = true
	g.notice = ""

	if line, ok := g.grid.WinningLine(); ok {
		g.line = line
		g.winner = grid.PlayerIndex(g.grid.GetFill(line[0].X, line[0].Y))
		return true
	}
	if g.grid.IsFull() {
		g.draw = true
		return true
	}

	g.current = 1 - g.current
	g.cpuWait = 0
	return true
}

func (g *Game) cpuTurn() bool {
	return g.mode == ModeVsCPU && g.current == 1
}

func (g *Game) over() bool {
	return g.winner != grid.NoWinner || g.draw
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.moves,
		Winner:   g.winner,
		Draw:     g.draw,
		GameOver: g.over(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Summary describes the current round for the match history.
func (g *Game) Summary() core.MatchSummary {
	return core.MatchSummary{
		GameID: g.ID(),
		Width:  g.grid.Width(),
		Height: g.grid.Height(),
		Winner: g.winner,
		Draw:   g.draw,
		Moves:  g.moves,
		Board:  g.grid.Encode(),
		CPU:    g.mode == ModeVsCPU,
	}
}
