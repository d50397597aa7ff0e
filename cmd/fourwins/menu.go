package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/four-wins/internal/config"
	"github.com/vovakirdan/four-wins/internal/platform/tui"
	"github.com/vovakirdan/four-wins/internal/registry"
)

var flagMenuConfig string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start Four Wins in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode. Choosing the
CPU mode asks for a difficulty first. After a round you can start a new
one with R or go back to the menu with B.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Match history
  Q            - Quit

Examples:
  fourwins menu
  fourwins menu --fps 60
  fourwins menu --db ./fourwins.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuConfig, "config", "", "Path to custom config YAML")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagMenuConfig)
	if err != nil {
		return err
	}

	logger, closeLog := localLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := registry.DefaultOptions()
	opts.Config = cfg

	if err := tui.RunSession(store, logger, opts, runtimeConfig(cmd, cfg)); err != nil {
		logger.Error("menu exited", "error", err)
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
