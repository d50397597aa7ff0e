package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/four-wins/internal/core"
	"github.com/vovakirdan/four-wins/internal/logging"
	"github.com/vovakirdan/four-wins/internal/registry"
	"github.com/vovakirdan/four-wins/internal/storage"
)

// resizer is implemented by games that can follow a terminal resize
// without restarting the round.
type resizer interface {
	Resize(w, h int)
}

// GameModel runs one game: it maps keys to input frames, steps the game on
// every tick and records the result once the round ends.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	startedAt   time.Time
	standalone  bool // Back quits the program instead of returning to a menu
	quitting    bool
	backToMenu  bool
	resultSaved bool
}

// NewGameModel creates a game model. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if logger == nil {
		logger = logging.Discard()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		startedAt:  time.Now(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("round started", "width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when it is over or paused.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize keeps the board and only updates the screen size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		m.logger.Debug("round restarted")
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Dropped {
		m.logger.Debug("piece dropped", "moves", m.gameState.Moves)
	}

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult records the finished round. Storage errors are logged and the
// game continues without history.
func (m GameModel) saveResult() {
	summary := m.game.Summary()
	if summary.Draw {
		m.logger.Info("round drawn", "moves", summary.Moves)
	} else {
		m.logger.Info("round won", "winner", summary.Winner, "moves", summary.Moves)
	}

	if m.store == nil {
		return
	}
	id, err := m.store.SaveResult(storage.ResultFromSummary(summary, time.Since(m.startedAt)))
	if err != nil {
		m.logger.Error("could not save result", "error", err)
		return
	}
	m.logger.Debug("result saved", "id", id)
}

// saveScreenshot writes the current screen to ~/.fourwins/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := logging.ExpandHome(filepath.Join("~", ".fourwins", "screenshots"))
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the alternate screen until the user quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
