package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/four-wins/internal/config"
	"github.com/vovakirdan/four-wins/internal/registry"
	"github.com/vovakirdan/four-wins/internal/storage"
)

const maxHistory = 100 // Max results to load per variant

// HistoryKeyMap defines the key bindings for the match history.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	cfg        config.FourWinsConfig
	results    []storage.MatchResult
	stats      *storage.GameStats
	loadErr    error
	table      table.Model
	help       help.Model
	keys       HistoryKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewHistoryModel creates a new history model. store may be nil.
func NewHistoryModel(store *storage.Store, cfg config.FourWinsConfig, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		games:  registry.List(),
		store:  store,
		cfg:    cfg,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()

	if len(m.games) > 0 {
		m.load(m.games[0].ID)
	}

	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Result", Width: 16},
		{Title: "Moves", Width: 6},
		{Title: "Board", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 14},
	}

	height := m.height - 10 // title, stats, tabs, help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads results and stats for the given variant.
func (m *HistoryModel) load(gameID string) {
	m.results, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.results, m.loadErr = m.store.GameResults(gameID, maxHistory)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats(gameID)
		}
	}
	m.updateTableRows()
}

// resultLabel describes the outcome of a round.
func resultLabel(cfg config.FourWinsConfig, r storage.MatchResult) string {
	switch {
	case r.Draw:
		return "Draw"
	case r.CPU && r.Winner == 1:
		return "CPU won"
	default:
		return cfg.PlayerName(r.Winner) + " won"
	}
}

// updateTableRows updates the table with the loaded results.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			resultLabel(m.cfg, r),
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.load(m.games[m.gameCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "MATCH HISTORY"
	if len(m.games) > 0 {
		title = fmt.Sprintf("MATCH HISTORY - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderStats(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + g.Title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

func (m HistoryModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	s := m.stats
	return fmt.Sprintf("Games: %d  |  %s: %d  |  %s: %d  |  Draws: %d  |  Avg moves: %.1f",
		s.GamesCount,
		m.cfg.PlayerName(0), s.Wins[0],
		m.cfg.PlayerName(1), s.Wins[1],
		s.Draws, s.AvgMoves)
}

// renderTableContent renders the table or a placeholder message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Match history is unavailable.\nThe database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No rounds recorded yet.\nFinish a game to see it here!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen on its own.
func RunHistory(store *storage.Store, cfg config.FourWinsConfig, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, cfg, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
