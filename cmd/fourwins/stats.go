package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/four-wins/internal/config"
	"github.com/vovakirdan/four-wins/internal/games/fourwins"
	"github.com/vovakirdan/four-wins/internal/registry"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show win and draw statistics",
	Long: `Display aggregated results for every mode that has been played.

Examples:
  fourwins stats
  fourwins stats --db ./fourwins.db`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := openStoreOrFail()
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	if len(all) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cfg := config.DefaultFourWinsConfig()
	for _, id := range ids {
		s := all[id]
		title := id
		if registry.Exists(id) {
			title = registry.Title(id)
		}
		second := cfg.PlayerName(1)
		if id == fourwins.IDVsCPU {
			second = "CPU"
		}

		fmt.Println(title)
		fmt.Printf("  Games:      %d\n", s.GamesCount)
		fmt.Printf("  %-10s  %d\n", cfg.PlayerName(0)+":", s.Wins[0])
		fmt.Printf("  %-10s  %d\n", second+":", s.Wins[1])
		fmt.Printf("  Draws:      %d\n", s.Draws)
		fmt.Printf("  Avg moves:  %.1f\n", s.AvgMoves)
		if !s.LastPlayed.IsZero() {
			fmt.Printf("  Last:       %s\n", s.LastPlayed.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}
	return nil
}
