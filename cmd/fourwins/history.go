package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/four-wins/internal/config"
	"github.com/vovakirdan/four-wins/internal/grid"
	"github.com/vovakirdan/four-wins/internal/logging"
	"github.com/vovakirdan/four-wins/internal/platform/tui"
	"github.com/vovakirdan/four-wins/internal/registry"
	"github.com/vovakirdan/four-wins/internal/storage"
)

var (
	flagHistoryLimit       int
	flagHistoryGame        string
	flagHistoryInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rounds",
	Long: `Display the most recent finished rounds.

Examples:
  fourwins history
  fourwins history --limit 50
  fourwins history --game fourwins_cpu
  fourwins history --interactive
  fourwins history show 12
  fourwins history clear fourwins`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the final board of a round",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear <game>",
	Short: "Delete all recorded rounds of a mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of rounds to show")
	historyCmd.Flags().StringVar(&flagHistoryGame, "game", "", "Only show one mode (see 'fourwins list')")
	historyCmd.Flags().BoolVarP(&flagHistoryInteractive, "interactive", "i", false, "Browse history in a table")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	if flagHistoryGame != "" && !registry.Exists(flagHistoryGame) {
		return fmt.Errorf("unknown game %q (run 'fourwins list' to see available modes)", flagHistoryGame)
	}

	cfg := config.DefaultFourWinsConfig()
	store, err := openStoreOrFail()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryInteractive {
		w, h := terminalSize()
		if err := tui.RunHistory(store, cfg, w, h); err != nil {
			return fmt.Errorf("running history: %w", err)
		}
		return nil
	}

	var results []storage.MatchResult
	if flagHistoryGame != "" {
		results, err = store.GameResults(flagHistoryGame, flagHistoryLimit)
	} else {
		results, err = store.RecentResults(flagHistoryLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving history: %w", err)
	}

	fmt.Println("Recent rounds")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fourwins play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-5s  %-13s  %-10s  %-5s  %-5s  %s\n", "ID", "Mode", "Result", "Moves", "Board", "Date")
	fmt.Printf("  %-5s  %-13s  %-10s  %-5s  %-5s  %s\n", "--", "----", "------", "-----", "-----", "----")
	for _, r := range results {
		fmt.Printf("  %-5d  %-13s  %-10s  %-5d  %-5s  %s\n",
			r.ID,
			r.GameID,
			outcome(cfg, r),
			r.Moves,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

// outcome is a short result label for the plain-text listing.
func outcome(cfg config.FourWinsConfig, r storage.MatchResult) string {
	switch {
	case r.Draw:
		return "draw"
	case r.CPU && r.Winner == 1:
		return "CPU"
	default:
		return cfg.PlayerName(r.Winner)
	}
}

func runHistoryShow(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	store, err := openStoreOrFail()
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.ResultByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no round with id %d", id)
	}
	if err != nil {
		return fmt.Errorf("retrieving round: %w", err)
	}

	board, err := grid.Decode(r.Height, r.Width, r.Board)
	if err != nil {
		return fmt.Errorf("round %d has a corrupt board: %w", id, err)
	}

	cfg := config.DefaultFourWinsConfig()
	fmt.Printf("Round %d - %s, %d moves, %s\n", r.ID, r.GameID, r.Moves, r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Result: %s\n", outcome(cfg, r))
	fmt.Println()
	fmt.Println(board.String())
	return nil
}

func runHistoryClear(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}

	store, err := openStoreOrFail()
	if err != nil {
		return err
	}
	defer store.Close()

	logger := logging.New(os.Stderr, "fourwins", flagLogLevel)
	if err := store.ClearResults(gameID); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	logger.Info("history cleared", "game", gameID)
	return nil
}
