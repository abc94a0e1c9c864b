// Package features turns raw catalog fields into the normalized,
// weighted text documents the vector index is built from.
package features

import (
	"regexp"
	"strings"
)

var (
	// Raw catalogs carry list fields either as plain comma-separated
	// strings ("Action, Crime, Drama") or as Python-style list literals
	// ("['Action', 'Crime']"). Brackets and quotes are never part of a
	// name and are stripped outright.
	listJunk = strings.NewReplacer("[", "", "]", "", "'", "", `"`, "")

	spaceRun = regexp.MustCompile(`\s+`)
)

// CleanedFields holds the normalized per-movie fields. List fields are
// never nil and the description is never absent, so downstream
// concatenation does not need to branch on missing data.
type CleanedFields struct {
	Genres      []string
	Directors   []string
	Stars       []string
	Description string
}

// SplitList parses a raw list-like field into trimmed tokens. Both
// comma-separated strings and list literal syntax are accepted.
// Duplicate tokens are kept: repetition carries weight downstream.
func SplitList(raw string) []string {
	raw = listJunk.Replace(raw)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// cleanToken lowercases a token, strips list punctuation, and collapses
// internal whitespace runs to single spaces.
func cleanToken(tok string) string {
	tok = strings.ToLower(listJunk.Replace(tok))
	tok = spaceRun.ReplaceAllString(tok, " ")
	return strings.TrimSpace(tok)
}

// CleanList normalizes an already-split list field. Elements that still
// carry embedded commas (a whole "Action, Crime" string stored as one
// element) are split further.
func CleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.Contains(v, ",") {
			for _, p := range SplitList(v) {
				if c := cleanToken(p); c != "" {
					out = append(out, c)
				}
			}
			continue
		}
		if c := cleanToken(v); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Normalize cleans the similarity-relevant fields of one catalog entry.
// It is a pure function: missing fields come back as empty (never nil
// descriptions or panics), and the input is not modified.
func Normalize(genres, directors, stars []string, description string) CleanedFields {
	return CleanedFields{
		Genres:      CleanList(genres),
		Directors:   CleanList(directors),
		Stars:       CleanList(stars),
		Description: cleanToken(description),
	}
}
