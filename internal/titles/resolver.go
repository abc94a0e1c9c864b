// Package titles maps user-typed, possibly misspelled or partial movie
// titles to catalog entries using approximate string matching.
package titles

import (
	"regexp"
	"sort"
	"strings"
)

const (
	// HighConfidence is the similarity ratio at or above which the best
	// candidate is returned as a single fuzzy match instead of a
	// suggestion list.
	HighConfidence = 0.6

	// MaxSuggestions caps the length of a suggestion list.
	MaxSuggestions = 5
)

// MatchKind describes the outcome of a resolution attempt.
type MatchKind string

const (
	MatchExact       MatchKind = "exact"
	MatchFuzzy       MatchKind = "fuzzy"
	MatchSuggestions MatchKind = "suggestions"
	MatchNone        MatchKind = "none"
)

// Candidate is one possible catalog entry for a query, with the
// similarity ratio that produced it.
type Candidate struct {
	ID         int
	Title      string
	Confidence float64
}

// Resolution is the result of resolving a query title. Best is set for
// Exact and Fuzzy matches; Suggestions is set for MatchSuggestions.
type Resolution struct {
	Kind        MatchKind
	Best        Candidate
	Suggestions []Candidate
}

// Resolver holds the case-normalized title list for one catalog
// snapshot. It is read-only after construction and safe for concurrent
// use.
type Resolver struct {
	titles     []string
	normalized []string
	exact      map[string]int
}

var spaceRun = regexp.MustCompile(`\s+`)

// NormalizeTitle lowercases a title, collapses whitespace runs, and
// trims the result. Resolution compares titles in this form.
func NormalizeTitle(title string) string {
	t := strings.ToLower(title)
	t = spaceRun.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// NewResolver builds a resolver over the given display titles, whose
// positions are the catalog entry ids. When two entries normalize to
// the same title, exact matches go to the lower id.
func NewResolver(displayTitles []string) *Resolver {
	r := &Resolver{
		titles:     displayTitles,
		normalized: make([]string, len(displayTitles)),
		exact:      make(map[string]int, len(displayTitles)),
	}
	for id, title := range displayTitles {
		norm := NormalizeTitle(title)
		r.normalized[id] = norm
		if _, ok := r.exact[norm]; !ok {
			r.exact[norm] = id
		}
	}
	return r
}

// Resolve maps a query title to a catalog entry. An exact normalized
// match wins outright; otherwise every title is scored and the best
// candidate is returned alone when it clears HighConfidence, or as
// part of a suggestion list when it does not. Ties go to the lower id.
func (r *Resolver) Resolve(query string) Resolution {
	if len(r.titles) == 0 {
		return Resolution{Kind: MatchNone}
	}

	q := NormalizeTitle(query)
	if id, ok := r.exact[q]; ok {
		return Resolution{
			Kind: MatchExact,
			Best: Candidate{ID: id, Title: r.titles[id], Confidence: 1},
		}
	}

	cands := make([]Candidate, 0, len(r.titles))
	for id, norm := range r.normalized {
		score := Ratio(q, norm)
		if score > 0 {
			cands = append(cands, Candidate{ID: id, Title: r.titles[id], Confidence: score})
		}
	}
	if len(cands) == 0 {
		return Resolution{Kind: MatchNone}
	}

	sortCandidates(cands)

	if cands[0].Confidence >= HighConfidence {
		return Resolution{Kind: MatchFuzzy, Best: cands[0]}
	}
	if len(cands) > MaxSuggestions {
		cands = cands[:MaxSuggestions]
	}
	return Resolution{Kind: MatchSuggestions, Suggestions: cands}
}

// Suggest returns up to limit candidates for an incomplete query, the
// way a live search box needs them: titles containing the query come
// first in id order, then the best fuzzy candidates fill the remainder.
func (r *Resolver) Suggest(query string, limit int) []Candidate {
	q := NormalizeTitle(query)
	if q == "" || limit <= 0 {
		return nil
	}

	out := make([]Candidate, 0, limit)
	seen := make(map[int]bool)
	for id, norm := range r.normalized {
		if strings.Contains(norm, q) {
			out = append(out, Candidate{ID: id, Title: r.titles[id], Confidence: Ratio(q, norm)})
			seen[id] = true
			if len(out) == limit {
				return out
			}
		}
	}

	rest := make([]Candidate, 0, len(r.normalized))
	for id, norm := range r.normalized {
		if seen[id] {
			continue
		}
		if score := Ratio(q, norm); score > 0 {
			rest = append(rest, Candidate{ID: id, Title: r.titles[id], Confidence: score})
		}
	}
	sortCandidates(rest)
	if need := limit - len(out); need < len(rest) {
		rest = rest[:need]
	}
	return append(out, rest...)
}

// sortCandidates orders by descending confidence, ties to the lower id.
func sortCandidates(cands []Candidate) {
	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].Confidence != cands[b].Confidence {
			return cands[a].Confidence > cands[b].Confidence
		}
		return cands[a].ID < cands[b].ID
	})
}
