package features

import "strings"

// Per-field repetition counts. Frequency-based vectorization rewards
// repeated terms, so repeating a field's text is how it comes to
// dominate the vector space: genres matter most for content
// similarity, directors and cast matter for style, the synopsis adds
// context but is noisy.
const (
	genreWeight       = 3
	directorWeight    = 2
	starWeight        = 2
	descriptionWeight = 1
)

// BuildDocument concatenates the cleaned fields of one movie into a
// single space-separated document, repeating each field by its weight.
// If every field is empty the document is the empty string; the index
// treats such a document as a zero vector.
func BuildDocument(c CleanedFields) string {
	var parts []string
	repeat := func(tokens []string, times int) {
		for i := 0; i < times; i++ {
			parts = append(parts, tokens...)
		}
	}
	repeat(c.Genres, genreWeight)
	repeat(c.Directors, directorWeight)
	repeat(c.Stars, starWeight)
	if c.Description != "" {
		for i := 0; i < descriptionWeight; i++ {
			parts = append(parts, c.Description)
		}
	}
	return strings.Join(parts, " ")
}

// BuildCorpus produces one document per entry, order-preserving, so
// document i always describes catalog entry i.
func BuildCorpus(fields []CleanedFields) []string {
	docs := make([]string, len(fields))
	for i, c := range fields {
		docs[i] = BuildDocument(c)
	}
	return docs
}
