// fourwins is a terminal Four Wins (connect four) game.
//
// Usage:
//
//	fourwins list             - List game modes
//	fourwins play             - Play a hot-seat round (--cpu for the bot)
//	fourwins menu             - Pick a mode interactively
//	fourwins serve            - Host games over SSH
//	fourwins history          - Show recent rounds
//	fourwins stats            - Show win/draw statistics
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: tick_rate from config, else 30)
//	--db <path>           - Set database path (default: ~/.fourwins/fourwins.db)
//	--log-level <level>   - debug, info, warn or error
//
// Defaults for --db, --ssh and --log-level can also come from the
// FOURWINS_DB, FOURWINS_SSH_ADDR and FOURWINS_LOG_LEVEL environment
// variables or a .env file in the working directory.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/four-wins/internal/config"
	"github.com/vovakirdan/four-wins/internal/core"
	"github.com/vovakirdan/four-wins/internal/logging"
	"github.com/vovakirdan/four-wins/internal/storage"

	// Register the game modes
	_ "github.com/vovakirdan/four-wins/internal/games/fourwins"
)

const (
	defaultDBPath  = "~/.fourwins/fourwins.db"
	defaultLogPath = "~/.fourwins/fourwins.log"

	defaultTickRate = 30
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

var loadEnvOnce sync.Once

// envDefault returns the environment value for key, reading .env first.
func envDefault(key, fallback string) string {
	loadEnvOnce.Do(func() {
		// A missing .env is fine; real environment variables still apply.
		_ = godotenv.Load()
	})
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fourwins",
	Short: "Four Wins - connect four in your terminal",
	Long: `Four Wins is a two-player game on a vertical grid. Players take turns
dropping pieces into columns; the first to line up four in a row,
column or diagonal wins. A full board is a draw.

Available commands:
  list     - Show the game modes
  play     - Play a round directly
  menu     - Interactive mode picker
  serve    - Host games over SSH
  history  - Show recent rounds
  stats    - Show statistics

Examples:
  fourwins play
  fourwins play --cpu --difficulty hard
  fourwins play --width 7 --height 6
  fourwins menu
  fourwins serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaultTickRate, "Tick rate (frames per second), overrides tick_rate from config")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envDefault("FOURWINS_DB", defaultDBPath), "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", envDefault("FOURWINS_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
}

// terminalSize returns the size of stdout, or 80x24 when it isn't a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// tickRate resolves the simulation rate. An explicit --fps wins over the
// config's tick_rate, which wins over the built-in default.
func tickRate(cmd *cobra.Command, cfg config.FourWinsConfig) int {
	if cmd.Flags().Changed("fps") {
		if rate, err := cmd.Flags().GetInt("fps"); err == nil && rate > 0 {
			return rate
		}
	}
	if cfg.TickRate > 0 {
		return cfg.TickRate
	}
	return defaultTickRate
}

// runtimeConfig builds the runtime config for a local session.
func runtimeConfig(cmd *cobra.Command, cfg config.FourWinsConfig) core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cmd, cfg),
	}
}

// localLogger opens the log file used while the alternate screen is active.
// It falls back to a discarding logger so the game still runs.
// The returned func closes the file.
func localLogger() (*log.Logger, func()) {
	logger, closer, err := logging.OpenFile(defaultLogPath, "fourwins", flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logger, func() { closer.Close() }
}

// openStore opens the history database. Failures are logged and play
// continues without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match history", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openStoreOrFail opens the database for the read-only commands.
func openStoreOrFail() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening match history: %w", err)
	}
	return store, nil
}
