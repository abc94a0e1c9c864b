package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const sampleCSV = `Title,Year,Genres,Directors,Stars,Description,Rating,Votes,Duration,MPA
The Dark Knight,2008,"['Action', 'Crime', 'Drama']",Christopher Nolan,"Christian Bale, Heath Ledger",Batman faces the Joker,9.0,2.9M,152 min,PG-13
Inception,2010,"Action, Sci-Fi",Christopher Nolan,Leonardo DiCaprio,A thief steals secrets through dreams,8.8,2.6M,148 min,PG-13
`

func TestLoadCSV(t *testing.T) {
	res, err := LoadCSV(strings.NewReader(sampleCSV), LoadOptions{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(res.Entries))
	}

	e := res.Entries[0]
	if e.ID != 0 || e.Title != "The Dark Knight" || e.Year != 2008 {
		t.Errorf("entry 0 = %+v", e)
	}
	if !reflect.DeepEqual(e.Genres, []string{"Action", "Crime", "Drama"}) {
		t.Errorf("genres = %v", e.Genres)
	}
	if !reflect.DeepEqual(e.Stars, []string{"Christian Bale", "Heath Ledger"}) {
		t.Errorf("stars = %v", e.Stars)
	}
	if e.Rating != 9.0 {
		t.Errorf("rating = %v", e.Rating)
	}
	if e.Votes != "2.9M" || e.Duration != "152 min" || e.MPA != "PG-13" {
		t.Errorf("passthrough fields = %q %q %q", e.Votes, e.Duration, e.MPA)
	}
	if res.Entries[1].ID != 1 {
		t.Errorf("entry 1 id = %d", res.Entries[1].ID)
	}
}

func TestLoadCSVHeaderCaseInsensitive(t *testing.T) {
	res, err := LoadCSV(strings.NewReader("TITLE,YEAR\nAlien,1979\n"), LoadOptions{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if res.Entries[0].Title != "Alien" || res.Entries[0].Year != 1979 {
		t.Errorf("entry = %+v", res.Entries[0])
	}
}

func TestLoadCSVMissingTitleColumn(t *testing.T) {
	if _, err := LoadCSV(strings.NewReader("name,year\nAlien,1979\n"), LoadOptions{}); err == nil {
		t.Error("catalog without a title column should fail")
	}
}

func TestLoadCSVMissingTitleRow(t *testing.T) {
	data := "title,year\nAlien,1979\n,1984\nBlade Runner,1982\n"

	_, err := LoadCSV(strings.NewReader(data), LoadOptions{})
	if err == nil {
		t.Error("row without a title should fail when SkipMalformed is off")
	}

	res, err := LoadCSV(strings.NewReader(data), LoadOptions{SkipMalformed: true})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if res.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", res.Skipped)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(res.Entries))
	}
	// IDs stay dense across the skipped row.
	if res.Entries[1].ID != 1 || res.Entries[1].Title != "Blade Runner" {
		t.Errorf("entry 1 = %+v", res.Entries[1])
	}
}

func TestLoadCSVRaggedAndUnparseableFields(t *testing.T) {
	data := "title,year,rating\nAlien,ninteen79,n/a\nShort Row\n"
	res, err := LoadCSV(strings.NewReader(data), LoadOptions{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(res.Entries))
	}
	if res.Entries[0].Year != 0 || res.Entries[0].Rating != 0 {
		t.Errorf("unparseable fields should zero out: %+v", res.Entries[0])
	}
	if res.Entries[1].Title != "Short Row" {
		t.Errorf("ragged row entry = %+v", res.Entries[1])
	}
}

func TestLoadCSVEmptyInput(t *testing.T) {
	res, err := LoadCSV(strings.NewReader(""), LoadOptions{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(res.Entries) != 0 || res.Skipped != 0 {
		t.Errorf("empty input gave %+v", res)
	}
}

func TestLoadFilesRenumbersIDs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	if err := os.WriteFile(a, []byte("title\nFirst\nSecond\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("title\nThird\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := LoadFiles([]string{a, b}, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if len(res.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(res.Entries))
	}
	for i, e := range res.Entries {
		if e.ID != i {
			t.Errorf("entry %d has id %d", i, e.ID)
		}
	}
	if res.Entries[2].Title != "Third" {
		t.Errorf("entry 2 = %+v", res.Entries[2])
	}
}

func TestLoadFilesMissingFile(t *testing.T) {
	if _, err := LoadFiles([]string{filepath.Join(t.TempDir(), "nope.csv")}, LoadOptions{}); err == nil {
		t.Error("missing catalog file should fail")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("title\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	sub := filepath.Join(dir, "extra")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "c.csv"), []byte("title\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(dir, []string{"*.csv"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Discover = %v, want %v", got, want)
	}

	got, err = Discover(dir, []string{"**/*.csv"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("recursive glob found %d files, want 3: %v", len(got), got)
	}

	// Overlapping patterns must not duplicate matches.
	got, err = Discover(dir, []string{"*.csv", "a.csv"})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("overlapping patterns gave %v", got)
	}
}

func TestDiscoverBadDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "missing"), []string{"*.csv"}); err == nil {
		t.Error("missing data directory should fail")
	}
}

func TestComputeStats(t *testing.T) {
	entries := []Entry{
		{Title: "A", Year: 1994, Genres: []string{"Crime", "Drama"}, Rating: 8.9},
		{Title: "B", Year: 2008, Genres: []string{"Action", "Crime"}, Rating: 9.0},
		{Title: "C", Year: 2010, Genres: []string{"Action"}, Rating: 8.8},
		{Title: "D", Genres: []string{"['Action']"}},
	}

	s := ComputeStats(entries)
	if s.TotalCount != 4 {
		t.Errorf("total = %d", s.TotalCount)
	}
	if s.GenreCounts["action"] != 3 || s.GenreCounts["crime"] != 2 || s.GenreCounts["drama"] != 1 {
		t.Errorf("genre counts = %v", s.GenreCounts)
	}
	if s.DecadeCounts[1990] != 1 || s.DecadeCounts[2000] != 1 || s.DecadeCounts[2010] != 1 {
		t.Errorf("decade counts = %v", s.DecadeCounts)
	}
	if s.RatingCounts[8] != 2 || s.RatingCounts[9] != 1 {
		t.Errorf("rating counts = %v", s.RatingCounts)
	}
	if s.YearMin != 1994 || s.YearMax != 2010 {
		t.Errorf("year range = [%d, %d]", s.YearMin, s.YearMax)
	}
	if s.RatingMin != 8.8 || s.RatingMax != 9.0 {
		t.Errorf("rating range = [%v, %v]", s.RatingMin, s.RatingMax)
	}
}

func TestTopGenres(t *testing.T) {
	s := Stats{GenreCounts: map[string]int{"action": 3, "crime": 2, "drama": 2, "romance": 1}}

	got := s.TopGenres(3)
	want := []GenreCount{{"action", 3}, {"crime", 2}, {"drama", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopGenres(3) = %v, want %v", got, want)
	}

	if got := s.TopGenres(0); len(got) != 4 {
		t.Errorf("TopGenres(0) should return all genres, got %v", got)
	}
}
