package domain

import (
	"fmt"
	"strings"
)

// Locator is a document+page addressable pointer. The embedding
// application resolves it into "open asset X at page Y"; this engine
// performs no file I/O or URL construction itself.
type Locator struct {
	// Asset is the viewable asset path from the document metadata.
	Asset string

	// Page is the 1-based page to open the asset at.
	Page int
}

// Citation is a caller-facing reference derived from a ranked chunk.
// Citations are deduplicated by (DocumentID, Page); the highest-ranked
// occurrence wins.
type Citation struct {
	// DocumentID identifies the source document (dedup key half).
	DocumentID string

	// SourceDocument is the display name of the source document.
	SourceDocument string

	// Page is the 1-based page number (dedup key half).
	Page int

	// Section is the structural location within the document.
	Section string

	// SectionTitle is the human-readable section title.
	SectionTitle string

	// Figure references an illustration, empty when there is none.
	Figure string

	// FigureTitle is the caption of the referenced figure.
	FigureTitle string

	// Locator addresses the viewable asset at this citation's page.
	Locator Locator
}

// Key returns the deduplication key for this citation.
func (c *Citation) Key() string {
	return fmt.Sprintf("%s:%d", c.DocumentID, c.Page)
}

// ShortRef formats the compact reference used on overlay lines:
// "<document> p.<page>" with ", Fig <figure>" appended when a figure
// is referenced.
func (c *Citation) ShortRef() string {
	var b strings.Builder
	b.WriteString(c.SourceDocument)
	fmt.Fprintf(&b, " p.%d", c.Page)
	if c.Figure != "" {
		fmt.Fprintf(&b, ", Fig %s", c.Figure)
	}
	return b.String()
}

// ContextPrefix formats the bracketed prefix for a context block line:
// "[<document> Section <section>, p.<page>, Figure <figure>: <title>]".
// The figure part is omitted when no figure is referenced.
func (c *Citation) ContextPrefix() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(c.SourceDocument)
	fmt.Fprintf(&b, " Section %s, p.%d", c.Section, c.Page)
	if c.Figure != "" {
		fmt.Fprintf(&b, ", Figure %s: %s", c.Figure, c.FigureTitle)
	}
	b.WriteByte(']')
	return b.String()
}
