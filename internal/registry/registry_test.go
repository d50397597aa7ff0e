package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/four-wins/internal/config"
	"github.com/vovakirdan/four-wins/internal/core"
)

type stubGame struct {
	id   string
	opts Options
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{Winner: core.NoWinner} }
func (g *stubGame) Summary() core.MatchSummary           { return core.MatchSummary{GameID: g.id} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_test", func(opts Options) Game {
		return &stubGame{id: "stub_test", opts: opts}
	})

	require.True(t, Exists("stub_test"))
	assert.Equal(t, "Stub", Title("stub_test"))

	opts := DefaultOptions()
	opts.Difficulty = config.DifficultyHard
	g, err := Create("stub_test", opts)
	require.NoError(t, err)
	assert.Equal(t, config.DifficultyHard, g.(*stubGame).opts.Difficulty)

	found := false
	for _, info := range List() {
		if info.ID == "stub_test" {
			found = true
			assert.Equal(t, "Stub", info.Title)
		}
	}
	assert.True(t, found)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game", DefaultOptions())
	assert.Error(t, err)
	assert.False(t, Exists("no_such_game"))
	assert.Equal(t, "no_such_game", Title("no_such_game"))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, config.DefaultFourWinsConfig(), opts.Config)
	assert.Equal(t, config.DifficultyNormal, opts.Difficulty)
}
