package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/four-wins/internal/core"
	"github.com/vovakirdan/four-wins/internal/logging"
	"github.com/vovakirdan/four-wins/internal/registry"
	"github.com/vovakirdan/four-wins/internal/storage"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateDifficulty
	stateGame
	stateHistory
)

// SessionModel manages the full flow: menu -> (difficulty) -> game -> menu,
// with the match history reachable from the menu. Local `menu` runs and
// every SSH session use it.
type SessionModel struct {
	store    *storage.Store
	logger   *log.Logger
	opts     registry.Options
	config   core.RuntimeConfig
	state    sessionState
	pending  *MenuItem
	menu     MenuModel
	picker   DifficultyModel
	history  HistoryModel
	game     *GameModel
	quitting bool
}

// NewSessionModel creates a new session model. store and logger may be nil.
func NewSessionModel(store *storage.Store, logger *log.Logger, opts registry.Options, cfg core.RuntimeConfig) SessionModel {
	if logger == nil {
		logger = logging.Discard()
	}
	return SessionModel{
		store:  store,
		logger: logger,
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateDifficulty:
		return m.updateDifficulty(msg)
	case stateGame:
		return m.updateGame(msg)
	case stateHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// Sub-models return tea.Quit when they finish; the session drops that
// command on a transition and only quits on an explicit quit.

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsHistory():
		m.state = stateHistory
		m.history = NewHistoryModel(m.store, m.opts.Config, m.config.ScreenW, m.config.ScreenH)
		return m, m.history.Init()

	case m.menu.Selected() != nil:
		selected := *m.menu.Selected()
		if selected.CPU {
			m.pending = &selected
			m.state = stateDifficulty
			m.picker = NewDifficultyModel(m.opts.Config.CPU, m.config.ScreenW, m.config.ScreenH)
			return m, m.picker.Init()
		}
		return m.startGame(selected.GameID, m.opts)
	}

	return m, cmd
}

func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if picker, ok := next.(DifficultyModel); ok {
		m.picker = picker
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.picker.WantsBack() {
		return m.backToMenu()
	}
	if preset, ok := m.picker.Selected(); ok && m.pending != nil {
		opts := m.opts
		opts.Difficulty = preset
		return m.startGame(m.pending.GameID, opts)
	}

	return m, cmd
}

func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	if history, ok := next.(HistoryModel); ok {
		m.history = history
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = &game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) startGame(id string, opts registry.Options) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id, opts)
	if err != nil {
		// The menu only lists registered games.
		m.logger.Error("cannot create game", "id", id, "error", err)
		return m.backToMenu()
	}

	m.logger.Info("game started", "id", id, "difficulty", opts.Difficulty)
	gm := NewGameModel(game, m.store, m.logger, m.config)
	m.game = &gm
	m.pending = nil
	m.state = stateGame
	return m, m.game.Init()
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.pending = nil
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateDifficulty:
		return m.picker.View()
	case stateGame:
		return m.game.View()
	case stateHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu flow locally until the user quits.
func RunSession(store *storage.Store, logger *log.Logger, opts registry.Options, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(store, logger, opts, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
