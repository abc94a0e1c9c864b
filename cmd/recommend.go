package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cinematch/internal/engine"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [title]",
	Short: "Recommend movies similar to the given title",
	Long: `Resolves the title (typos and partial titles are tolerated) and prints
the most similar movies from the catalog. When the title is ambiguous
you are prompted to pick from the closest candidates.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntP("limit", "n", 0, "number of recommendations (1-20, default from config)")
	recommendCmd.Flags().String("sort", "similarity", "display order: similarity or rating")
	recommendCmd.Flags().Bool("json", false, "output results as JSON")
	recommendCmd.Flags().Bool("no-input", false, "never prompt; print suggestions instead")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	title := args[0]

	limit, _ := cmd.Flags().GetInt("limit")
	sortStr, _ := cmd.Flags().GetString("sort")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	noInput, _ := cmd.Flags().GetBool("no-input")

	sortBy, err := engine.ParseSortMode(sortStr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if limit == 0 {
		limit = cfg.DefaultLimit
	}

	eng, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	result, err := eng.Recommend(title, limit, sortBy)
	if err != nil {
		return err
	}

	// Interactive disambiguation: let the user pick a candidate and
	// retry with the chosen exact title.
	if result.Kind == engine.ResultAmbiguous && !noInput && !jsonOutput && stdinIsTerminal() {
		items := make([]string, len(result.Suggestions))
		for i, c := range result.Suggestions {
			items[i] = c.Title
		}
		prompt := promptui.Select{
			Label: fmt.Sprintf("No confident match for %q — did you mean", title),
			Items: items,
		}
		idx, _, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("selection: %w", err)
		}
		result, err = eng.Recommend(result.Suggestions[idx].Title, limit, sortBy)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		return printResultJSON(result)
	}
	printResult(title, result)
	return nil
}

type recommendationOut struct {
	Rank        int      `json:"rank"`
	Score       float64  `json:"score"`
	Title       string   `json:"title"`
	Year        int      `json:"year,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Description string   `json:"description,omitempty"`
}

type resultOut struct {
	Kind        string              `json:"kind"`
	Matched     string              `json:"matched,omitempty"`
	Confidence  float64             `json:"confidence,omitempty"`
	Results     []recommendationOut `json:"results,omitempty"`
	Suggestions []string            `json:"suggestions,omitempty"`
}

func printResultJSON(result *engine.Result) error {
	out := resultOut{Kind: string(result.Kind)}
	switch result.Kind {
	case engine.ResultFound:
		out.Matched = result.Matched.Title
		out.Confidence = result.Confidence
		for i, rec := range result.Recommendations {
			out.Results = append(out.Results, recommendationOut{
				Rank:        i + 1,
				Score:       rec.Score,
				Title:       rec.Entry.Title,
				Year:        rec.Entry.Year,
				Genres:      rec.Entry.Genres,
				Rating:      rec.Entry.Rating,
				Description: truncate(rec.Entry.Description, 200),
			})
		}
	case engine.ResultAmbiguous:
		for _, c := range result.Suggestions {
			out.Suggestions = append(out.Suggestions, c.Title)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printResult(query string, result *engine.Result) {
	switch result.Kind {
	case engine.ResultNotFound:
		fmt.Printf("No movie in the catalog resembles %q.\n", query)
	case engine.ResultAmbiguous:
		fmt.Printf("No confident match for %q. Did you mean:\n\n", query)
		for _, c := range result.Suggestions {
			fmt.Printf("  %s (%.0f%%)\n", c.Title, c.Confidence*100)
		}
	case engine.ResultFound:
		fmt.Printf("Movies similar to %s:\n\n", result.Matched.Title)
		for i, rec := range result.Recommendations {
			line := fmt.Sprintf("  %d. [%.1f%%] %s", i+1, rec.Score*100, rec.Entry.Title)
			if rec.Entry.Year > 0 {
				line += fmt.Sprintf(" (%d)", rec.Entry.Year)
			}
			if rec.Entry.Rating > 0 {
				line += fmt.Sprintf("  ★ %.1f", rec.Entry.Rating)
			}
			fmt.Println(line)
			if len(rec.Entry.Genres) > 0 {
				fmt.Printf("     %s\n", strings.Join(rec.Entry.Genres, ", "))
			}
			if rec.Entry.Description != "" {
				fmt.Printf("     %s\n", truncate(rec.Entry.Description, 120))
			}
			fmt.Println()
		}
	}
}
