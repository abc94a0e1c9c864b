package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ziadkadry99/cinematch/internal/features"
	"github.com/ziadkadry99/cinematch/internal/progress"
)

// LoadOptions controls CSV parsing behaviour.
type LoadOptions struct {
	// SkipMalformed skips rows without a title instead of failing the
	// whole load. Skipped rows are counted in LoadResult.Skipped.
	SkipMalformed bool

	// Reporter receives per-file progress updates during LoadFiles.
	// Nil disables reporting.
	Reporter progress.Reporter
}

// LoadResult is the outcome of a catalog load. Entry IDs are dense and
// 0-based regardless of how many source rows were skipped.
type LoadResult struct {
	Entries []Entry
	Skipped int
}

// recognized CSV column names, matched case-insensitively.
const (
	colTitle       = "title"
	colYear        = "year"
	colGenres      = "genres"
	colDirectors   = "directors"
	colStars       = "stars"
	colDescription = "description"
	colRating      = "rating"
	colVotes       = "votes"
	colDuration    = "duration"
	colMPA         = "mpa"
)

// LoadCSV reads one catalog CSV from r. The first record is the
// header; columns are matched by name case-insensitively and unknown
// columns are ignored. Rows with a missing title are malformed: they
// are skipped or fail the load depending on opts.SkipMalformed.
func LoadCSV(r io.Reader, opts LoadOptions) (*LoadResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are tolerated, missing cells read as empty

	header, err := cr.Read()
	if err == io.EOF {
		return &LoadResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols[colTitle]; !ok {
		return nil, fmt.Errorf("catalog is missing the required %q column", colTitle)
	}

	result := &LoadResult{}
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", row+2, err)
		}
		row++

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		title := field(colTitle)
		if title == "" {
			if opts.SkipMalformed {
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("row %d: missing title", row+1)
		}

		entry := Entry{
			ID:          len(result.Entries),
			Title:       title,
			Genres:      features.SplitList(field(colGenres)),
			Directors:   features.SplitList(field(colDirectors)),
			Stars:       features.SplitList(field(colStars)),
			Description: field(colDescription),
			Votes:       field(colVotes),
			Duration:    field(colDuration),
			MPA:         field(colMPA),
		}
		if y, err := strconv.Atoi(field(colYear)); err == nil {
			entry.Year = y
		}
		if rt, err := strconv.ParseFloat(field(colRating), 64); err == nil {
			entry.Rating = rt
		}

		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// LoadFiles loads and concatenates the given catalog files in order,
// renumbering entry IDs so they stay dense across files.
func LoadFiles(paths []string, opts LoadOptions) (*LoadResult, error) {
	if opts.Reporter != nil {
		opts.Reporter.Start(len(paths))
		defer opts.Reporter.Finish()
	}

	combined := &LoadResult{}
	for i, path := range paths {
		if opts.Reporter != nil {
			opts.Reporter.Update(i, fmt.Sprintf("Loading %s", path))
		}

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening catalog %s: %w", path, err)
		}
		part, err := LoadCSV(f, opts)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("loading catalog %s: %w", path, err)
		}

		for _, e := range part.Entries {
			e.ID = len(combined.Entries)
			combined.Entries = append(combined.Entries, e)
		}
		combined.Skipped += part.Skipped

		if opts.Reporter != nil {
			opts.Reporter.Update(i+1, fmt.Sprintf("Loaded %s", path))
		}
	}

	return combined, nil
}
