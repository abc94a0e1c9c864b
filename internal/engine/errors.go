package engine

import "errors"

var (
	// ErrEmptyCatalog is returned by Load when no entries are supplied.
	ErrEmptyCatalog = errors.New("engine: empty catalog")

	// ErrMalformedEntry is returned by Load when an entry is missing a
	// required field. The wrapping error names the offending entry.
	ErrMalformedEntry = errors.New("engine: malformed catalog entry")
)
