package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/four-wins/internal/config"
	"github.com/vovakirdan/four-wins/internal/games/fourwins"
	"github.com/vovakirdan/four-wins/internal/platform/tui"
	"github.com/vovakirdan/four-wins/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCPU        bool
	flagWidth      int
	flagHeight     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Four Wins. By default two players share the keyboard;
with --cpu the second player is the computer.

Controls:
  Left/Right, A/D   - Move the piece over a column
  Space/Down/Enter  - Drop the piece
  P                 - Pause
  R                 - New round (after a win or draw)
  B/Esc             - Leave (when paused or finished)
  Q/Ctrl+C          - Quit

Difficulty options (with --cpu):
  easy    - Looks one move ahead
  normal  - Default search depth
  hard    - Deepest search

Examples:
  fourwins play
  fourwins play --cpu
  fourwins play --cpu --difficulty hard
  fourwins play --width 7 --height 6
  fourwins play --config ./my-fourwins.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "CPU difficulty: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagCPU, "cpu", false, "Play against the computer")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (columns), overrides config")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (rows), overrides config")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyBoardOverride(&cfg, flagWidth, flagHeight); err != nil {
		return err
	}

	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	gameID := fourwins.IDHotSeat
	if flagCPU {
		gameID = fourwins.IDVsCPU
	}

	game, err := registry.Create(gameID, registry.Options{Config: cfg, Difficulty: difficulty})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger, closeLog := localLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Info("playing", "id", gameID,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height), "difficulty", difficulty)

	if err := tui.Run(game, store, logger, runtimeConfig(cmd, cfg)); err != nil {
		logger.Error("game exited", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
