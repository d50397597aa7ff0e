package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/four-wins/internal/config"
)

// subcommand mirrors the real layout: --fps is a persistent flag on the
// parent and is read from the child.
func subcommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	parent := &cobra.Command{Use: "fourwins"}
	parent.PersistentFlags().Int("fps", defaultTickRate, "")
	child := &cobra.Command{Use: "play"}
	parent.AddCommand(child)
	require.NoError(t, child.ParseFlags(args))
	return child
}

func TestTickRatePrecedence(t *testing.T) {
	fromYAML, err := config.Parse([]byte("tick_rate: 45\n"))
	require.NoError(t, err)
	unset := config.DefaultFourWinsConfig()
	unset.TickRate = 0

	tests := []struct {
		name string
		args []string
		cfg  config.FourWinsConfig
		want int
	}{
		{"config when flag absent", nil, fromYAML, 45},
		{"flag overrides config", []string{"--fps", "60"}, fromYAML, 60},
		{"flag equal to default still wins", []string{"--fps", "30"}, fromYAML, 30},
		{"non-positive flag falls back to config", []string{"--fps", "0"}, fromYAML, 45},
		{"default when neither is set", nil, unset, defaultTickRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := subcommand(t, tt.args...)
			assert.Equal(t, tt.want, tickRate(cmd, tt.cfg))
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fourwins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunPlayReturnsErrors(t *testing.T) {
	oldConfig, oldDifficulty, oldWidth := flagConfig, flagDifficulty, flagWidth
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagWidth = oldConfig, oldDifficulty, oldWidth
	})

	flagConfig = writeConfig(t, "tick_rate: 30\n")

	flagDifficulty, flagWidth = "extreme", 0
	err := runPlay(playCmd, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	flagDifficulty, flagWidth = "", 99
	err = runPlay(playCmd, nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	flagWidth = 0
	assert.Error(t, runPlay(playCmd, nil))
}

func TestHistoryCommandsReturnErrors(t *testing.T) {
	oldDB := flagDBPath
	t.Cleanup(func() { flagDBPath = oldDB })
	flagDBPath = filepath.Join(t.TempDir(), "history.db")

	assert.ErrorContains(t, runHistoryShow(historyShowCmd, []string{"abc"}), "invalid id")
	assert.ErrorContains(t, runHistoryShow(historyShowCmd, []string{"7"}), "no round with id 7")
	assert.ErrorContains(t, runHistoryClear(historyClearCmd, []string{"chess"}), "unknown game")
}
