package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/cinematch/internal/engine"
	"github.com/ziadkadry99/cinematch/internal/titles"
)

// handleRecommendMovies resolves the title and returns ranked
// recommendations as agent-readable text.
func (s *Server) handleRecommendMovies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: title"), nil
	}

	limit := request.GetInt("limit", 5)

	sortBy, err := engine.ParseSortMode(request.GetString("sort_by", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.engine.Recommend(title, limit, sortBy)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recommendation failed: %v", err)), nil
	}

	switch result.Kind {
	case engine.ResultNotFound:
		return mcp.NewToolResultText(fmt.Sprintf("No movie in the catalog resembles %q.", title)), nil
	case engine.ResultAmbiguous:
		return mcp.NewToolResultText(formatSuggestions(title, result.Suggestions)), nil
	}

	return mcp.NewToolResultText(formatRecommendations(result)), nil
}

// handleResolveTitle resolves a title without recommending.
func (s *Server) handleResolveTitle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: title"), nil
	}

	res := s.engine.ResolveTitle(title)
	switch res.Kind {
	case titles.MatchExact:
		return mcp.NewToolResultText(fmt.Sprintf("Exact match: %q (id %d).", res.Best.Title, res.Best.ID)), nil
	case titles.MatchFuzzy:
		return mcp.NewToolResultText(fmt.Sprintf(
			"Close match: %q (id %d, confidence %.2f).", res.Best.Title, res.Best.ID, res.Best.Confidence,
		)), nil
	case titles.MatchSuggestions:
		return mcp.NewToolResultText(formatSuggestions(title, res.Suggestions)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("No movie in the catalog resembles %q.", title)), nil
}

// handleCatalogStats returns aggregate catalog statistics.
func (s *Server) handleCatalogStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := s.engine.Stats()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Catalog: %d movies", stats.TotalCount))
	if stats.YearMin > 0 {
		sb.WriteString(fmt.Sprintf(", %d-%d", stats.YearMin, stats.YearMax))
	}
	if stats.RatingMax > 0 {
		sb.WriteString(fmt.Sprintf(", ratings %.1f-%.1f", stats.RatingMin, stats.RatingMax))
	}
	sb.WriteString("\n\nTop genres:\n")
	for _, g := range stats.TopGenres(10) {
		sb.WriteString(fmt.Sprintf("  %s: %d\n", g.Genre, g.Count))
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// formatRecommendations renders a Found result for agent consumption.
func formatRecommendations(result *engine.Result) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Movies similar to %q", result.Matched.Title))
	if result.Confidence < 1 {
		sb.WriteString(fmt.Sprintf(" (matched with confidence %.2f)", result.Confidence))
	}
	sb.WriteString(":\n")

	for i, rec := range result.Recommendations {
		sb.WriteString(fmt.Sprintf("\n%d. %s", i+1, rec.Entry.Title))
		if rec.Entry.Year > 0 {
			sb.WriteString(fmt.Sprintf(" (%d)", rec.Entry.Year))
		}
		sb.WriteString(fmt.Sprintf(" — similarity %.4f", rec.Score))
		if rec.Entry.Rating > 0 {
			sb.WriteString(fmt.Sprintf(", rating %.1f", rec.Entry.Rating))
		}
		if len(rec.Entry.Genres) > 0 {
			sb.WriteString(fmt.Sprintf("\n   Genres: %s", strings.Join(rec.Entry.Genres, ", ")))
		}
		if rec.Entry.Description != "" {
			sb.WriteString(fmt.Sprintf("\n   %s", truncate(rec.Entry.Description, 150)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatSuggestions renders an ambiguous resolution for agent consumption.
func formatSuggestions(query string, cands []titles.Candidate) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("No confident match for %q. Did you mean:\n", query))
	for _, c := range cands {
		sb.WriteString(fmt.Sprintf("  - %s (confidence %.2f)\n", c.Title, c.Confidence))
	}
	sb.WriteString("Call recommend_movies again with one of these exact titles.")
	return sb.String()
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
