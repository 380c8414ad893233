package domain

import (
	"fmt"
	"time"
)

// DocumentMeta holds the per-document metadata of the corpus.
type DocumentMeta struct {
	// ID is the unique identifier referenced by Chunk.SourceDocument.
	ID string

	// Title is the full document title.
	Title string

	// ShortName is the abbreviated name used in citation prefixes
	// (e.g., "MM" for a maintenance manual). Falls back to Title when empty.
	ShortName string

	// DocNumber is the publisher's document number.
	DocNumber string

	// Revision identifies the document revision the corpus was built from.
	Revision string

	// PageCount is the total page count of the source document.
	PageCount int

	// AssetPath locates the viewable asset (PDF or similar) so that a
	// viewer can resolve a Citation's Locator. The engine never opens it.
	AssetPath string
}

// DisplayName returns the name used for this document in citations.
func (d *DocumentMeta) DisplayName() string {
	if d.ShortName != "" {
		return d.ShortName
	}
	return d.Title
}

// Corpus is the full set of loaded chunks plus document metadata.
// It is immutable after load: all queries share one snapshot without
// locking, and a reload swaps in a complete replacement.
type Corpus struct {
	// Documents describes the source documents, in corpus file order.
	Documents []DocumentMeta

	// Chunks holds every chunk, in corpus file order. The order is the
	// tie-break for equal retrieval scores, so it must be preserved.
	Chunks []Chunk

	docsByID map[string]*DocumentMeta
}

// NewCorpus builds a Corpus and validates it. The returned corpus has
// its document index populated; callers must treat it as read-only.
func NewCorpus(documents []DocumentMeta, chunks []Chunk) (*Corpus, error) {
	c := &Corpus{
		Documents: documents,
		Chunks:    chunks,
		docsByID:  make(map[string]*DocumentMeta, len(documents)),
	}
	for i := range c.Documents {
		doc := &c.Documents[i]
		if doc.ID == "" {
			return nil, fmt.Errorf("%w: document with empty id", ErrCorpusInvalid)
		}
		if doc.Title == "" {
			return nil, fmt.Errorf("%w: document %q: missing title", ErrCorpusInvalid, doc.ID)
		}
		if _, dup := c.docsByID[doc.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate document id %q", ErrCorpusInvalid, doc.ID)
		}
		c.docsByID[doc.ID] = doc
	}
	seen := make(map[string]struct{}, len(chunks))
	for i := range c.Chunks {
		ch := &c.Chunks[i]
		if err := ch.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[ch.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate chunk id %q", ErrCorpusInvalid, ch.ID)
		}
		seen[ch.ID] = struct{}{}
		if _, ok := c.docsByID[ch.SourceDocument]; !ok {
			return nil, fmt.Errorf("%w: chunk %q: unknown source document %q",
				ErrCorpusInvalid, ch.ID, ch.SourceDocument)
		}
	}
	return c, nil
}

// Document returns the metadata for a document ID, or nil when unknown.
func (c *Corpus) Document(id string) *DocumentMeta {
	if c == nil {
		return nil
	}
	return c.docsByID[id]
}

// Len returns the number of chunks. Safe on a nil corpus.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Chunks)
}

// CorpusStatus summarises the loaded corpus for status displays.
type CorpusStatus struct {
	// Loaded reports whether a corpus is currently available.
	Loaded bool

	// Source describes where the corpus came from.
	Source string

	// DocumentCount is the number of source documents.
	DocumentCount int

	// ChunkCount is the number of chunks.
	ChunkCount int

	// Documents lists the loaded document metadata.
	Documents []DocumentMeta

	// LoadedAt is when the current corpus was swapped in.
	LoadedAt time.Time
}

// CitationFor builds the Citation for a chunk using the corpus document
// metadata. The caller guarantees the chunk belongs to this corpus.
func (c *Corpus) CitationFor(ch *Chunk) Citation {
	doc := c.Document(ch.SourceDocument)
	cit := Citation{
		DocumentID:   ch.SourceDocument,
		Page:         ch.Page,
		Section:      ch.Section,
		SectionTitle: ch.SectionTitle,
		Figure:       ch.Figure,
		FigureTitle:  ch.FigureTitle,
	}
	if doc != nil {
		cit.SourceDocument = doc.DisplayName()
		cit.Locator = Locator{Asset: doc.AssetPath, Page: ch.Page}
	}
	return cit
}
