package engine

import (
	"fmt"

	"github.com/ziadkadry99/cinematch/internal/catalog"
	"github.com/ziadkadry99/cinematch/internal/titles"
)

// SortMode controls the display order of an already-selected
// recommendation list. It never influences which movies are selected.
type SortMode string

const (
	SortBySimilarity SortMode = "similarity"
	SortByRating     SortMode = "rating"
)

// ParseSortMode validates a user-supplied sort mode string. The empty
// string means SortBySimilarity.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case "", SortBySimilarity:
		return SortBySimilarity, nil
	case SortByRating:
		return SortByRating, nil
	}
	return "", fmt.Errorf("unknown sort mode %q (want %q or %q)", s, SortBySimilarity, SortByRating)
}

// Recommendation is one recommended movie with its similarity score to
// the query movie.
type Recommendation struct {
	Entry catalog.Entry
	Score float64
}

// ResultKind describes the outcome of a Recommend call.
type ResultKind string

const (
	// ResultFound means the query title resolved and recommendations
	// were produced.
	ResultFound ResultKind = "found"

	// ResultAmbiguous means the title did not resolve confidently; the
	// caller should disambiguate using Suggestions.
	ResultAmbiguous ResultKind = "ambiguous"

	// ResultNotFound means no catalog title resembles the query.
	ResultNotFound ResultKind = "not_found"
)

// Result is the outcome of a recommendation query. Exactly one of the
// variant field sets is populated, keyed by Kind.
type Result struct {
	Kind ResultKind

	// Found: the resolved catalog entry, the confidence of the title
	// resolution, and the ranked recommendations.
	Matched         catalog.Entry
	Confidence      float64
	Recommendations []Recommendation

	// Ambiguous: candidate titles for the caller to choose from.
	Suggestions []titles.Candidate
}
