package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/four-wins/internal/core"
	"github.com/vovakirdan/four-wins/internal/games/fourwins"
	"github.com/vovakirdan/four-wins/internal/registry"
	"github.com/vovakirdan/four-wins/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}

func newTestGameModel(t *testing.T, store *storage.Store) (GameModel, *fourwins.Game) {
	t.Helper()
	game := fourwins.New(registry.DefaultOptions())
	m := NewGameModel(game, store, nil, testRuntime)
	m.Init()
	return m, game
}

// send feeds messages to the model and returns the updated model.
func send(t *testing.T, m GameModel, msgs ...tea.Msg) GameModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(GameModel)
		require.True(t, ok)
	}
	return m
}

func tick() tea.Msg {
	return TickMsg(time.Now())
}

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDrop  = runeKey(' ')
)

func TestGameModelDropOnTick(t *testing.T) {
	m, game := newTestGameModel(t, nil)

	m = send(t, m, keyDrop)
	assert.Equal(t, 0, game.Grid().Count(), "input is applied on the next tick")

	send(t, m, tick())
	assert.Equal(t, 1, game.Grid().Count())
}

func TestGameModelBackOnlyWhenPaused(t *testing.T) {
	m, _ := newTestGameModel(t, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "back is ignored mid-round")

	m = send(t, m, tick(), runeKey('p'), tick(), tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newTestGameModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	assert.True(t, next.(GameModel).IsQuitting())
	assert.NotNil(t, cmd)
}

func TestGameModelResizeKeepsBoard(t *testing.T) {
	m, game := newTestGameModel(t, nil)
	m = send(t, m, keyDrop, tick())

	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 1, game.Grid().Count())
}

func TestGameModelSavesResultOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	m, _ := newTestGameModel(t, store)

	// Player 1 stacks four in the cursor column, player 2 plays next to it.
	m = send(t, m, keyDrop, tick())
	for i := 0; i < 3; i++ {
		m = send(t, m, keyRight, keyDrop, tick())
		m = send(t, m, keyLeft, keyDrop, tick())
	}
	require.True(t, m.gameState.GameOver)

	// More ticks after the round ends must not record it again.
	send(t, m, tick(), tick())

	results, err := store.RecentResults(10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, fourwins.IDHotSeat, results[0].GameID)
	assert.Equal(t, 0, results[0].Winner)
	assert.Equal(t, 7, results[0].Moves)
}

func TestGameModelRestart(t *testing.T) {
	m, game := newTestGameModel(t, nil)

	m = send(t, m, keyDrop, tick())
	for i := 0; i < 3; i++ {
		m = send(t, m, keyRight, keyDrop, tick())
		m = send(t, m, keyLeft, keyDrop, tick())
	}
	require.True(t, m.gameState.GameOver)

	m = send(t, m, runeKey('r'), tick())
	assert.False(t, m.gameState.GameOver)
	assert.Equal(t, 0, game.Grid().Count())
	assert.Equal(t, testRuntime, m.config, "restart keeps the runtime config")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "four")
	s.SetColored(5, 0, 'X', core.ColorBrightRed)

	out := RenderScreen(s)
	assert.Contains(t, out, "four")
	assert.Contains(t, out, "X")
}
