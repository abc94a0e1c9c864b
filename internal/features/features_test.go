package features

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"comma separated", "Action, Crime, Drama", []string{"Action", "Crime", "Drama"}},
		{"list literal", "['Action', 'Crime']", []string{"Action", "Crime"}},
		{"double quoted literal", `["Sci-Fi", "Thriller"]`, []string{"Sci-Fi", "Thriller"}},
		{"empty", "", nil},
		{"only junk", "[]", nil},
		{"trailing comma", "Action,", []string{"Action"}},
		{"duplicates kept", "Action, Action", []string{"Action", "Action"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.raw)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanList(t *testing.T) {
	got := CleanList([]string{"  Christopher   Nolan ", "['Quentin Tarantino']"})
	want := []string{"christopher nolan", "quentin tarantino"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanList = %v, want %v", got, want)
	}

	// An element carrying a whole comma-separated field splits further.
	got = CleanList([]string{"Action, Crime"})
	want = []string{"action", "crime"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanList = %v, want %v", got, want)
	}
}

func TestNormalizeEmptyFields(t *testing.T) {
	c := Normalize(nil, nil, nil, "")
	if c.Genres == nil || c.Directors == nil || c.Stars == nil {
		t.Error("list fields should normalize to empty slices, not nil")
	}
	if c.Description != "" {
		t.Errorf("description should normalize to empty string, got %q", c.Description)
	}
}

func TestNormalizeLowercasesAndCollapses(t *testing.T) {
	c := Normalize(
		[]string{"ACTION"},
		[]string{"Christopher  Nolan"},
		[]string{`"Christian Bale"`},
		"A  hero  SAVES the city",
	)
	if c.Genres[0] != "action" {
		t.Errorf("genre = %q, want %q", c.Genres[0], "action")
	}
	if c.Directors[0] != "christopher nolan" {
		t.Errorf("director = %q, want %q", c.Directors[0], "christopher nolan")
	}
	if c.Stars[0] != "christian bale" {
		t.Errorf("star = %q, want %q", c.Stars[0], "christian bale")
	}
	if c.Description != "a hero saves the city" {
		t.Errorf("description = %q", c.Description)
	}
}

func TestBuildDocumentWeighting(t *testing.T) {
	doc := BuildDocument(CleanedFields{
		Genres:      []string{"action"},
		Directors:   []string{"nolan"},
		Stars:       []string{"bale"},
		Description: "gotham",
	})

	counts := map[string]int{}
	for _, tok := range strings.Fields(doc) {
		counts[tok]++
	}
	if counts["action"] != 3 {
		t.Errorf("genre token repeated %d times, want 3", counts["action"])
	}
	if counts["nolan"] != 2 {
		t.Errorf("director token repeated %d times, want 2", counts["nolan"])
	}
	if counts["bale"] != 2 {
		t.Errorf("star token repeated %d times, want 2", counts["bale"])
	}
	if counts["gotham"] != 1 {
		t.Errorf("description token repeated %d times, want 1", counts["gotham"])
	}
}

func TestBuildDocumentAllEmpty(t *testing.T) {
	if doc := BuildDocument(CleanedFields{}); doc != "" {
		t.Errorf("empty fields should produce an empty document, got %q", doc)
	}
}

func TestBuildCorpusAlignment(t *testing.T) {
	fields := []CleanedFields{
		{Genres: []string{"action"}},
		{},
		{Description: "quiet drama"},
	}
	corpus := BuildCorpus(fields)
	if len(corpus) != 3 {
		t.Fatalf("corpus length = %d, want 3", len(corpus))
	}
	if corpus[0] != "action action action" {
		t.Errorf("corpus[0] = %q", corpus[0])
	}
	if corpus[1] != "" {
		t.Errorf("corpus[1] = %q, want empty", corpus[1])
	}
	if corpus[2] != "quiet drama" {
		t.Errorf("corpus[2] = %q", corpus[2])
	}
}
