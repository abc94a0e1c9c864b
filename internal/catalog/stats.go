package catalog

import (
	"math"
	"sort"

	"github.com/ziadkadry99/cinematch/internal/features"
)

// Stats is a read-only aggregate view of a catalog, used for display.
// It has no effect on recommendation logic.
type Stats struct {
	TotalCount int

	// GenreCounts maps each normalized genre to the number of entries
	// carrying it.
	GenreCounts map[string]int

	// DecadeCounts maps a decade start year (1990, 2000, ...) to the
	// number of entries released in it. Entries without a year are not
	// counted.
	DecadeCounts map[int]int

	// RatingCounts is a unit-interval histogram of ratings, keyed by
	// the floored rating value.
	RatingCounts map[int]int

	YearMin, YearMax     int
	RatingMin, RatingMax float64
}

// GenreCount is one genre with its popularity, for sorted display.
type GenreCount struct {
	Genre string
	Count int
}

// ComputeStats aggregates the catalog into display statistics.
func ComputeStats(entries []Entry) Stats {
	s := Stats{
		TotalCount:   len(entries),
		GenreCounts:  make(map[string]int),
		DecadeCounts: make(map[int]int),
		RatingCounts: make(map[int]int),
	}

	for _, e := range entries {
		for _, g := range features.CleanList(e.Genres) {
			s.GenreCounts[g]++
		}

		if e.Year != 0 {
			s.DecadeCounts[e.Year/10*10]++
			if s.YearMin == 0 || e.Year < s.YearMin {
				s.YearMin = e.Year
			}
			if e.Year > s.YearMax {
				s.YearMax = e.Year
			}
		}

		if e.Rating != 0 {
			s.RatingCounts[int(math.Floor(e.Rating))]++
			if s.RatingMin == 0 || e.Rating < s.RatingMin {
				s.RatingMin = e.Rating
			}
			if e.Rating > s.RatingMax {
				s.RatingMax = e.Rating
			}
		}
	}

	return s
}

// TopGenres returns the n most frequent genres, most popular first,
// ties broken alphabetically so output is deterministic.
func (s Stats) TopGenres(n int) []GenreCount {
	out := make([]GenreCount, 0, len(s.GenreCounts))
	for g, c := range s.GenreCounts {
		out = append(out, GenreCount{Genre: g, Count: c})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Genre < out[b].Genre
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
