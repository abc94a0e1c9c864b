// Package catalog loads movie catalogs from CSV files and computes
// display statistics over them.
package catalog

// Entry is one movie in the loaded catalog. ID is the dense 0-based
// position of the entry in the catalog and is the join key between the
// vector index, the title resolver, and display data; it is assigned
// once at load and never reassigned. Entries are not mutated after
// loading.
type Entry struct {
	ID          int
	Title       string
	Year        int // 0 when unknown
	Genres      []string
	Directors   []string
	Stars       []string
	Description string
	Rating      float64

	// Display-only passthrough fields, not used in similarity.
	Votes    string
	Duration string
	MPA      string
}
