package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cinematch/internal/titles"
)

var searchCmd = &cobra.Command{
	Use:   "search [title]",
	Short: "Resolve a title against the catalog without recommending",
	Long: `Shows how a title resolves: an exact match, a close fuzzy match, or a
list of candidate titles. Useful for checking what recommend would pick
before committing to a query.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntP("limit", "n", 5, "maximum number of candidates to list")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	res := eng.ResolveTitle(query)
	switch res.Kind {
	case titles.MatchExact:
		fmt.Printf("Exact match: %s\n", res.Best.Title)
	case titles.MatchFuzzy:
		fmt.Printf("Close match: %s (%.0f%%)\n", res.Best.Title, res.Best.Confidence*100)
	case titles.MatchSuggestions:
		fmt.Printf("No confident match for %q. Closest titles:\n\n", query)
		for _, c := range res.Suggestions {
			fmt.Printf("  %s (%.0f%%)\n", c.Title, c.Confidence*100)
		}
	case titles.MatchNone:
		fmt.Printf("No movie in the catalog resembles %q.\n", query)
	}

	// Also list titles containing the query, the way a search box would.
	if cands := eng.Suggest(query, limit); len(cands) > 0 && res.Kind != titles.MatchExact {
		fmt.Printf("\nTitles containing %q:\n", query)
		for _, c := range cands {
			fmt.Printf("  %s\n", c.Title)
		}
	}

	return nil
}
