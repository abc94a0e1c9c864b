package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show random movies from the catalog",
	Long:  `Prints a random sample of the catalog, for when you need inspiration rather than a specific recommendation.`,
	RunE:  runRandom,
}

func init() {
	randomCmd.Flags().IntP("count", "n", 5, "number of movies to sample")
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	for _, e := range eng.Sample(count, time.Now().UnixNano()) {
		line := "  " + e.Title
		if e.Year > 0 {
			line += fmt.Sprintf(" (%d)", e.Year)
		}
		if e.Rating > 0 {
			line += fmt.Sprintf("  ★ %.1f", e.Rating)
		}
		fmt.Println(line)
		if len(e.Genres) > 0 {
			fmt.Printf("     %s\n", strings.Join(e.Genres, ", "))
		}
	}

	return nil
}
