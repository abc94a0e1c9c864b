// Package tfidf builds an in-memory TF-IDF vector index over a
// document corpus and answers cosine-similarity queries against it.
//
// The index is read-only after Fit: concurrent SimilarTo calls are safe
// without locking. No pairwise similarity matrix is precomputed; each
// query scans the sparse rows once, which keeps memory linear in the
// number of nonzero terms.
package tfidf

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	// ErrEmptyCorpus is returned by Fit when there are no documents.
	ErrEmptyCorpus = errors.New("tfidf: empty corpus")

	// ErrInvalidDocID is returned when a query references a document
	// outside the corpus.
	ErrInvalidDocID = errors.New("tfidf: document id out of range")

	// ErrInvalidLimit is returned when a query asks for a non-positive
	// number of results.
	ErrInvalidLimit = errors.New("tfidf: limit must be positive")
)

// Hit pairs a document id with its cosine similarity to the query
// document. Scores always lie in [0, 1].
type Hit struct {
	ID    int
	Score float64
}

// cell is one nonzero entry of a sparse document row: vocabulary column
// plus the L2-normalized TF-IDF weight.
type cell struct {
	term   int
	weight float64
}

// Index is an immutable TF-IDF representation of a corpus.
type Index struct {
	vocab map[string]int
	rows  [][]cell
}

// Fit tokenizes the corpus, builds the vocabulary, and computes one
// L2-normalized sparse weight vector per document. Documents are
// whitespace-tokenized; they are expected to be normalized already.
//
// The per-term weight is raw term frequency times a smoothed
// log-scaled inverse document frequency, ln((1+n)/(1+df)) + 1. Terms
// appearing in every document keep a small positive weight rather than
// being filtered; the minor noise is accepted for simplicity.
func Fit(corpus []string) (*Index, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	vocab := make(map[string]int)
	counts := make([]map[int]int, len(corpus))
	var df []int

	for i, doc := range corpus {
		tc := make(map[int]int)
		for _, tok := range strings.Fields(doc) {
			col, ok := vocab[tok]
			if !ok {
				col = len(vocab)
				vocab[tok] = col
				df = append(df, 0)
			}
			tc[col]++
		}
		for col := range tc {
			df[col]++
		}
		counts[i] = tc
	}

	n := float64(len(corpus))
	idf := make([]float64, len(df))
	for col, d := range df {
		idf[col] = math.Log((1+n)/(1+float64(d))) + 1
	}

	rows := make([][]cell, len(corpus))
	for i, tc := range counts {
		row := make([]cell, 0, len(tc))
		var norm float64
		for col, c := range tc {
			w := float64(c) * idf[col]
			row = append(row, cell{term: col, weight: w})
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j].weight /= norm
			}
		}
		// Keep rows in column order so dot products accumulate in a
		// fixed order and scores stay bit-for-bit reproducible.
		sort.Slice(row, func(a, b int) bool { return row[a].term < row[b].term })
		rows[i] = row
	}

	return &Index{vocab: vocab, rows: rows}, nil
}

// Size returns the number of indexed documents.
func (ix *Index) Size() int { return len(ix.rows) }

// VocabularySize returns the number of distinct terms in the corpus.
func (ix *Index) VocabularySize() int { return len(ix.vocab) }

// SimilarTo returns up to limit documents most similar to the document
// with the given id, ordered by descending cosine similarity with ties
// broken by lower id. The query document itself is never included.
func (ix *Index) SimilarTo(id, limit int) ([]Hit, error) {
	if id < 0 || id >= len(ix.rows) {
		return nil, fmt.Errorf("%w: %d (corpus size %d)", ErrInvalidDocID, id, len(ix.rows))
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	query := make(map[int]float64, len(ix.rows[id]))
	for _, c := range ix.rows[id] {
		query[c.term] = c.weight
	}

	hits := make([]Hit, 0, len(ix.rows)-1)
	for other, row := range ix.rows {
		if other == id {
			continue
		}
		var dot float64
		for _, c := range row {
			dot += c.weight * query[c.term]
		}
		if dot > 1 {
			// Guard against accumulated rounding pushing an identical
			// document past 1.0.
			dot = 1
		}
		hits = append(hits, Hit{ID: other, Score: dot})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].Score != hits[b].Score {
			return hits[a].Score > hits[b].Score
		}
		return hits[a].ID < hits[b].ID
	})

	if limit < len(hits) {
		hits = hits[:limit]
	}
	return hits, nil
}
