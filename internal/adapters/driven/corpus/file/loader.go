package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.CorpusLoader = (*Loader)(nil)

// documentRecord mirrors one document entry of the corpus file.
type documentRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ShortName string `json:"short_name"`
	DocNumber string `json:"doc_number"`
	Revision  string `json:"revision"`
	PageCount int    `json:"page_count"`
	AssetPath string `json:"asset_path"`
}

// chunkRecord mirrors one chunk entry of the corpus file.
type chunkRecord struct {
	ID             string   `json:"id"`
	SourceDocument string   `json:"source_document"`
	Component      string   `json:"component"`
	Keywords       []string `json:"keywords"`
	Section        string   `json:"section"`
	SectionTitle   string   `json:"section_title"`
	Page           int      `json:"page"`
	Figure         string   `json:"figure,omitempty"`
	FigureTitle    string   `json:"figure_title,omitempty"`
	Content        string   `json:"content"`
}

// corpusFile is the top-level shape of the on-disk corpus document.
type corpusFile struct {
	Documents []documentRecord `json:"documents"`
	Chunks    []chunkRecord    `json:"chunks"`
}

// Loader reads a corpus from a JSON file.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given corpus file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and parses the corpus file. A missing or unreadable file
// surfaces as the underlying I/O error so callers can treat it as
// "no corpus available"; malformed JSON is reported as ErrCorpusInvalid.
func (l *Loader) Load(_ context.Context) ([]domain.DocumentMeta, []domain.Chunk, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, nil, err
	}

	var parsed corpusFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, nil, fmt.Errorf("%w: parse %s: %v", domain.ErrCorpusInvalid, l.path, err)
	}

	documents := make([]domain.DocumentMeta, 0, len(parsed.Documents))
	for _, rec := range parsed.Documents {
		documents = append(documents, domain.DocumentMeta{
			ID:        rec.ID,
			Title:     rec.Title,
			ShortName: rec.ShortName,
			DocNumber: rec.DocNumber,
			Revision:  rec.Revision,
			PageCount: rec.PageCount,
			AssetPath: rec.AssetPath,
		})
	}

	chunks := make([]domain.Chunk, 0, len(parsed.Chunks))
	for _, rec := range parsed.Chunks {
		chunks = append(chunks, domain.Chunk{
			ID:             rec.ID,
			SourceDocument: rec.SourceDocument,
			Component:      rec.Component,
			Keywords:       rec.Keywords,
			Section:        rec.Section,
			SectionTitle:   rec.SectionTitle,
			Page:           rec.Page,
			Figure:         rec.Figure,
			FigureTitle:    rec.FigureTitle,
			Content:        rec.Content,
		})
	}

	return documents, chunks, nil
}

// Source returns the corpus file path.
func (l *Loader) Source() string {
	return l.path
}
