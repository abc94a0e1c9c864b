package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics about the catalog",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")
	statsCmd.Flags().Int("top", 10, "number of top genres to show")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	top, _ := cmd.Flags().GetInt("top")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	stats := eng.Stats()

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"total_count":   stats.TotalCount,
			"genres":        stats.TopGenres(0),
			"decade_counts": stats.DecadeCounts,
			"rating_counts": stats.RatingCounts,
			"year_range":    [2]int{stats.YearMin, stats.YearMax},
			"rating_range":  [2]float64{stats.RatingMin, stats.RatingMax},
		})
	}

	fmt.Printf("Movies:  %d\n", stats.TotalCount)
	if stats.YearMin > 0 {
		fmt.Printf("Years:   %d-%d\n", stats.YearMin, stats.YearMax)
	}
	if stats.RatingMax > 0 {
		fmt.Printf("Ratings: %.1f-%.1f\n", stats.RatingMin, stats.RatingMax)
	}

	fmt.Printf("\nTop genres:\n")
	for _, g := range stats.TopGenres(top) {
		fmt.Printf("  %-15s %d\n", g.Genre, g.Count)
	}

	if len(stats.DecadeCounts) > 0 {
		decades := make([]int, 0, len(stats.DecadeCounts))
		for d := range stats.DecadeCounts {
			decades = append(decades, d)
		}
		sort.Ints(decades)
		fmt.Printf("\nBy decade:\n")
		for _, d := range decades {
			fmt.Printf("  %ds  %d\n", d, stats.DecadeCounts[d])
		}
	}

	return nil
}
