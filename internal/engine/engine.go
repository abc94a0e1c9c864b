// Package engine ties the feature normalizer, the TF-IDF index, and
// the title resolver into the recommendation engine. An Engine is a
// query-only snapshot: every shared structure is built once by Load
// and read-only afterwards, so concurrent queries need no locking.
// Rebuilding for a new catalog means calling Load again and swapping
// the handle.
package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/ziadkadry99/cinematch/internal/catalog"
	"github.com/ziadkadry99/cinematch/internal/features"
	"github.com/ziadkadry99/cinematch/internal/tfidf"
	"github.com/ziadkadry99/cinematch/internal/titles"
)

// Bounds for the recommendation list size. Out-of-range requests are
// clamped rather than rejected; this is an interactive tool.
const (
	MinLimit = 1
	MaxLimit = 20
)

// Engine is an immutable recommendation engine over one catalog
// snapshot.
type Engine struct {
	entries  []catalog.Entry
	index    *tfidf.Index
	resolver *titles.Resolver

	statsOnce sync.Once
	stats     catalog.Stats
}

// Load validates the catalog, builds the weighted corpus, fits the
// TF-IDF index, and prepares the title resolver. Structural failures
// (empty catalog, entry without a title, empty corpus) are fatal: no
// engine is returned, so a caller can never query a partially built
// index.
func Load(entries []catalog.Entry) (*Engine, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	displayTitles := make([]string, len(entries))
	fields := make([]features.CleanedFields, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("%w: entry %d has no title", ErrMalformedEntry, i)
		}
		displayTitles[i] = e.Title
		fields[i] = features.Normalize(e.Genres, e.Directors, e.Stars, e.Description)
	}

	index, err := tfidf.Fit(features.BuildCorpus(fields))
	if err != nil {
		return nil, fmt.Errorf("building vector index: %w", err)
	}

	return &Engine{
		entries:  entries,
		index:    index,
		resolver: titles.NewResolver(displayTitles),
	}, nil
}

// Size returns the number of catalog entries.
func (e *Engine) Size() int { return len(e.entries) }

// Entry returns the catalog entry with the given id.
func (e *Engine) Entry(id int) (catalog.Entry, bool) {
	if id < 0 || id >= len(e.entries) {
		return catalog.Entry{}, false
	}
	return e.entries[id], true
}

// ResolveTitle resolves a user-typed title without committing to a
// recommendation query, so callers can offer suggestions first.
func (e *Engine) ResolveTitle(query string) titles.Resolution {
	return e.resolver.Resolve(query)
}

// Suggest returns live-search candidates for a partial query.
func (e *Engine) Suggest(query string, limit int) []titles.Candidate {
	return e.resolver.Suggest(query, limit)
}

// Recommend resolves the query title and returns the movies most
// similar to it. limit is clamped to [MinLimit, MaxLimit]. With
// SortByRating the already-selected top results are re-ordered by
// rating descending (stable, so equal ratings keep similarity order);
// rating never influences which movies are selected. The returned
// Result is always one of the defined variants.
func (e *Engine) Recommend(query string, limit int, sortBy SortMode) (*Result, error) {
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	res := e.resolver.Resolve(query)
	switch res.Kind {
	case titles.MatchNone:
		return &Result{Kind: ResultNotFound}, nil
	case titles.MatchSuggestions:
		return &Result{Kind: ResultAmbiguous, Suggestions: res.Suggestions}, nil
	}

	hits, err := e.index.SimilarTo(res.Best.ID, limit)
	if err != nil {
		return nil, err
	}

	recs := make([]Recommendation, len(hits))
	for i, h := range hits {
		recs[i] = Recommendation{Entry: e.entries[h.ID], Score: h.Score}
	}
	if sortBy == SortByRating {
		sort.SliceStable(recs, func(a, b int) bool {
			return recs[a].Entry.Rating > recs[b].Entry.Rating
		})
	}

	return &Result{
		Kind:            ResultFound,
		Matched:         e.entries[res.Best.ID],
		Confidence:      res.Best.Confidence,
		Recommendations: recs,
	}, nil
}

// Stats returns aggregate catalog statistics, computed once and cached.
func (e *Engine) Stats() catalog.Stats {
	e.statsOnce.Do(func() {
		e.stats = catalog.ComputeStats(e.entries)
	})
	return e.stats
}

// Sample returns n distinct catalog entries chosen with the given
// seed, for the "discover movies" surface. Recommendation queries are
// unaffected; randomness lives only here.
func (e *Engine) Sample(n int, seed int64) []catalog.Entry {
	if n <= 0 {
		return nil
	}
	if n > len(e.entries) {
		n = len(e.entries)
	}
	perm := rand.New(rand.NewSource(seed)).Perm(len(e.entries))
	out := make([]catalog.Entry, n)
	for i := 0; i < n; i++ {
		out[i] = e.entries[perm[i]]
	}
	return out
}
