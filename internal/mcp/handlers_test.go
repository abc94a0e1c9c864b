package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/cinematch/internal/catalog"
	"github.com/ziadkadry99/cinematch/internal/engine"
)

func testMCPServer(t *testing.T) *Server {
	t.Helper()
	entries := []catalog.Entry{
		{ID: 0, Title: "The Dark Knight", Year: 2008, Genres: []string{"Action", "Crime"}, Directors: []string{"Christopher Nolan"}, Stars: []string{"Christian Bale"}, Description: "batman faces the joker", Rating: 9.0},
		{ID: 1, Title: "Batman Begins", Year: 2005, Genres: []string{"Action", "Crime"}, Directors: []string{"Christopher Nolan"}, Stars: []string{"Christian Bale"}, Description: "bruce wayne becomes batman", Rating: 8.2},
		{ID: 2, Title: "Inception", Year: 2010, Genres: []string{"Action", "Sci-Fi"}, Directors: []string{"Christopher Nolan"}, Stars: []string{"Leonardo DiCaprio"}, Description: "a thief steals secrets through dreams", Rating: 8.8},
	}
	eng, err := engine.Load(entries)
	if err != nil {
		t.Fatalf("engine.Load: %v", err)
	}
	return NewServer(eng)
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return tc.Text
}

func TestHandleRecommendMovies(t *testing.T) {
	s := testMCPServer(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"title": "The Dark Knight", "limit": 2}

	result, err := s.handleRecommendMovies(context.Background(), req)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", textContent(t, result))
	}

	text := textContent(t, result)
	if !strings.Contains(text, "The Dark Knight") {
		t.Errorf("missing matched title in %q", text)
	}
	if !strings.Contains(text, "Batman Begins") {
		t.Errorf("missing top recommendation in %q", text)
	}
}

func TestHandleRecommendMoviesMissingTitle(t *testing.T) {
	s := testMCPServer(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"limit": 3}

	result, err := s.handleRecommendMovies(context.Background(), req)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !result.IsError {
		t.Error("missing title should produce a tool error")
	}
}

func TestHandleRecommendMoviesBadSort(t *testing.T) {
	s := testMCPServer(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"title": "Inception", "sort_by": "popularity"}

	result, err := s.handleRecommendMovies(context.Background(), req)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !result.IsError {
		t.Error("invalid sort_by should produce a tool error")
	}
}

func TestHandleRecommendMoviesNotFound(t *testing.T) {
	s := testMCPServer(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"title": "qqqq"}

	result, err := s.handleRecommendMovies(context.Background(), req)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if result.IsError {
		t.Fatal("unmatched title is a text response, not a tool error")
	}
	if !strings.Contains(textContent(t, result), "No movie") {
		t.Errorf("unexpected text: %q", textContent(t, result))
	}
}

func TestHandleResolveTitle(t *testing.T) {
	s := testMCPServer(t)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"title": "dark knght"}

	result, err := s.handleResolveTitle(context.Background(), req)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	text := textContent(t, result)
	if !strings.Contains(text, "Close match") || !strings.Contains(text, "The Dark Knight") {
		t.Errorf("unexpected text: %q", text)
	}

	req = mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"title": "inception"}
	result, err = s.handleResolveTitle(context.Background(), req)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !strings.Contains(textContent(t, result), "Exact match") {
		t.Errorf("unexpected text: %q", textContent(t, result))
	}
}

func TestHandleCatalogStats(t *testing.T) {
	s := testMCPServer(t)

	result, err := s.handleCatalogStats(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	text := textContent(t, result)
	if !strings.Contains(text, "3 movies") {
		t.Errorf("missing total in %q", text)
	}
	if !strings.Contains(text, "action") {
		t.Errorf("missing genre breakdown in %q", text)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abcdefghij", 4); got != "abcd..." {
		t.Errorf("truncate = %q", got)
	}
}
