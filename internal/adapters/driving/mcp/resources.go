package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for refdex resources.
	uriScheme = "refdex://"
)

// documentView is the JSON shape of one corpus document.
type documentView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ShortName string `json:"short_name,omitempty"`
	DocNumber string `json:"doc_number,omitempty"`
	Revision  string `json:"revision,omitempty"`
	Pages     int    `json:"pages,omitempty"`
	Asset     string `json:"asset,omitempty"`
}

// corpusView is the JSON shape of the corpus resource.
type corpusView struct {
	Loaded        bool           `json:"loaded"`
	Source        string         `json:"source,omitempty"`
	DocumentCount int            `json:"document_count"`
	ChunkCount    int            `json:"chunk_count"`
	LoadedAt      string         `json:"loaded_at,omitempty"`
	Documents     []documentView `json:"documents"`
}

// sectionView is one chunk's location within a document.
type sectionView struct {
	ChunkID      string `json:"chunk_id"`
	Section      string `json:"section"`
	SectionTitle string `json:"section_title,omitempty"`
	Page         int    `json:"page"`
	Figure       string `json:"figure,omitempty"`
	Component    string `json:"component,omitempty"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the corpus summary.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpus",
		Name:        "corpus",
		Description: "Summary of the loaded documentation corpus",
		MIMEType:    "application/json",
	}, s.handleCorpusResource)

	// Template for per-document section listings.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "documents/{documentId}",
		Name:        "document-sections",
		Description: "Metadata and section list for one corpus document",
		MIMEType:    "application/json",
	}, s.handleDocumentResource)
}

// handleCorpusResource returns the corpus summary. A corpus that fails
// to load is reported as unloaded rather than as a read error, so
// clients can show the degraded state.
func (s *Server) handleCorpusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	view := corpusView{Documents: []documentView{}}

	if s.ports.Corpus != nil {
		// Ensure is best-effort here; Status reports whatever state
		// the service is left in.
		s.ports.Corpus.Ensure(ctx) //nolint:errcheck
		status := s.ports.Corpus.Status(ctx)

		view.Loaded = status.Loaded
		view.Source = status.Source
		view.DocumentCount = status.DocumentCount
		view.ChunkCount = status.ChunkCount
		if !status.LoadedAt.IsZero() {
			view.LoadedAt = status.LoadedAt.Format(time.RFC3339)
		}
		for i := range status.Documents {
			view.Documents = append(view.Documents, newDocumentView(&status.Documents[i]))
		}
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling corpus summary: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentResource returns metadata and the section list for one
// document.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract documentId from URI: refdex://documents/{documentId}
	docID := extractDocumentID(req.Params.URI)
	if docID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	corpus, err := s.ports.Corpus.Ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	doc := corpus.Document(docID)
	if doc == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	payload := struct {
		documentView
		Sections []sectionView `json:"sections"`
	}{
		documentView: newDocumentView(doc),
		Sections:     []sectionView{},
	}
	for i := range corpus.Chunks {
		chunk := &corpus.Chunks[i]
		if chunk.SourceDocument != docID {
			continue
		}
		payload.Sections = append(payload.Sections, sectionView{
			ChunkID:      chunk.ID,
			Section:      chunk.Section,
			SectionTitle: chunk.SectionTitle,
			Page:         chunk.Page,
			Figure:       chunk.Figure,
			Component:    chunk.Component,
		})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func newDocumentView(doc *domain.DocumentMeta) documentView {
	return documentView{
		ID:        doc.ID,
		Title:     doc.Title,
		ShortName: doc.ShortName,
		DocNumber: doc.DocNumber,
		Revision:  doc.Revision,
		Pages:     doc.PageCount,
		Asset:     doc.AssetPath,
	}
}

// extractDocumentID extracts the document ID from a URI like refdex://documents/{documentId}.
func extractDocumentID(uri string) string {
	const prefix = uriScheme + "documents/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
