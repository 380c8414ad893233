package domain

import "fmt"

// Chunk represents one indexed unit of reference-document text.
// Chunks arrive pre-split from the corpus file and are immutable after
// load; a reload replaces the whole corpus, never individual chunks.
type Chunk struct {
	// ID is the unique identifier for the chunk, stable across loads.
	ID string

	// SourceDocument is the ID of the DocumentMeta this chunk belongs to.
	SourceDocument string

	// Component is the canonical subject label the chunk primarily describes.
	Component string

	// Keywords are the matching terms for this chunk. May overlap with
	// Component. Non-empty is recommended but not required.
	Keywords []string

	// Section is the structural location within the source document.
	Section string

	// SectionTitle is the human-readable title of the section.
	SectionTitle string

	// Page is the 1-based page number within the source document.
	Page int

	// Figure is an optional illustration reference (empty when absent).
	Figure string

	// FigureTitle is the caption of the referenced figure.
	FigureTitle string

	// Content is the body text.
	Content string
}

// Validate checks the chunk invariants. Violations are reported as
// ErrCorpusInvalid naming the offending chunk.
func (c *Chunk) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: chunk with empty id", ErrCorpusInvalid)
	}
	if c.SourceDocument == "" {
		return fmt.Errorf("%w: chunk %q: missing source document", ErrCorpusInvalid, c.ID)
	}
	if c.Page < 1 {
		return fmt.Errorf("%w: chunk %q: page %d (must be >= 1)", ErrCorpusInvalid, c.ID, c.Page)
	}
	if c.Content == "" {
		return fmt.Errorf("%w: chunk %q: empty content", ErrCorpusInvalid, c.ID)
	}
	return nil
}
