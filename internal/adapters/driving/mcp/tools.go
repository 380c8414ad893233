package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// LookupInput is the input schema for the lookup tool.
type LookupInput struct {
	Query string `json:"query" jsonschema:"the part or procedure to find references for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of passages to return (0 = server default)"`
}

// LookupOutput is the output schema for the lookup tool.
type LookupOutput struct {
	Results   []PassageOutput  `json:"results"`
	Citations []CitationOutput `json:"citations"`
	Count     int              `json:"count"`
}

// PassageOutput is a single ranked passage.
type PassageOutput struct {
	ChunkID      string `json:"chunk_id"`
	DocumentID   string `json:"document_id"`
	Component    string `json:"component,omitempty"`
	Section      string `json:"section"`
	SectionTitle string `json:"section_title,omitempty"`
	Page         int    `json:"page"`
	Figure       string `json:"figure,omitempty"`
	Content      string `json:"content"`
}

// CitationOutput is a single resolved citation.
type CitationOutput struct {
	Document string `json:"document"`
	Page     int    `json:"page"`
	Section  string `json:"section,omitempty"`
	Figure   string `json:"figure,omitempty"`
	ShortRef string `json:"short_ref"`
	Asset    string `json:"asset,omitempty"`
}

// ContextInput is the input schema for the context tool.
type ContextInput struct {
	Query string `json:"query" jsonschema:"the part or procedure to build context for"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of passages in the context (default 3)"`
}

// ContextOutput is the output schema for the context tool.
type ContextOutput struct {
	Context   string           `json:"context"`
	Citations []CitationOutput `json:"citations"`
}

// OverlayInput is the input schema for the overlay tool.
type OverlayInput struct {
	Label      string `json:"label" jsonschema:"the recognised part or procedure label"`
	OnTaskCard bool   `json:"on_task_card,omitempty" jsonschema:"treat the label as flagged on a task card"`
	Annotation string `json:"annotation,omitempty" jsonschema:"caller-side note shown on the overlay line"`
}

// OverlayOutput is the output schema for the overlay tool.
type OverlayOutput struct {
	Emphasis string          `json:"emphasis"`
	Badge    string          `json:"badge,omitempty"`
	Line     string          `json:"line,omitempty"`
	Citation *CitationOutput `json:"citation,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup",
		Description: "Find the documentation passages and citations for a part or procedure",
	}, s.handleLookup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "context",
		Description: "Build a citation-prefixed context block for a part or procedure, for grounding an answer",
	}, s.handleContext)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "overlay",
		Description: "Resolve how a recognised label should be displayed: emphasis, badge, annotation line and citation",
	}, s.handleOverlay)
}

// handleLookup handles the lookup tool invocation. The limit
// is passed through; the retrieval service applies its own default for
// non-positive values.
func (s *Server) handleLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	result, err := s.ports.Retrieval.Retrieve(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, LookupOutput{}, err
	}

	output := LookupOutput{
		Results:   make([]PassageOutput, len(result.RankedChunks)),
		Citations: citationOutputs(result.Citations),
		Count:     len(result.RankedChunks),
	}
	for i := range result.RankedChunks {
		chunk := &result.RankedChunks[i]
		output.Results[i] = PassageOutput{
			ChunkID:      chunk.ID,
			DocumentID:   chunk.SourceDocument,
			Component:    chunk.Component,
			Section:      chunk.Section,
			SectionTitle: chunk.SectionTitle,
			Page:         chunk.Page,
			Figure:       chunk.Figure,
			Content:      chunk.Content,
		}
	}

	return nil, output, nil
}

// handleContext handles the context tool invocation.
func (s *Server) handleContext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContextInput,
) (*mcp.CallToolResult, ContextOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 3
	}

	result, err := s.ports.Retrieval.Retrieve(ctx, input.Query, limit)
	if err != nil {
		return nil, ContextOutput{}, err
	}

	return nil, ContextOutput{
		Context:   result.ContextText,
		Citations: citationOutputs(result.Citations),
	}, nil
}

// handleOverlay handles the overlay tool invocation. When the
// caller supplies signals the directive is composed from them,
// otherwise the configured task cards decide.
func (s *Server) handleOverlay(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OverlayInput,
) (*mcp.CallToolResult, OverlayOutput, error) {
	if s.ports.Overlay == nil {
		return nil, OverlayOutput{}, errors.New("overlay service not configured")
	}

	var directive domain.DisplayDirective
	if input.OnTaskCard || input.Annotation != "" {
		signals := &domain.PrioritySignals{
			OnTaskCard: input.OnTaskCard,
			Annotation: input.Annotation,
		}
		retrieval, err := s.ports.Retrieval.Retrieve(ctx, input.Label, 1)
		if err != nil {
			if !errors.Is(err, domain.ErrCorpusUnavailable) {
				return nil, OverlayOutput{}, err
			}
			retrieval = nil
		}
		directive = s.ports.Overlay.Compose(input.Label, signals, retrieval)
	} else {
		var err error
		directive, err = s.ports.Overlay.Annotate(ctx, input.Label)
		if err != nil {
			return nil, OverlayOutput{}, err
		}
	}

	output := OverlayOutput{
		Emphasis: string(directive.Emphasis),
		Badge:    directive.Badge,
		Line:     directive.Line,
	}
	if directive.Citation != nil {
		cit := citationOutput(directive.Citation)
		output.Citation = &cit
	}
	return nil, output, nil
}

func citationOutput(cit *domain.Citation) CitationOutput {
	return CitationOutput{
		Document: cit.SourceDocument,
		Page:     cit.Page,
		Section:  cit.Section,
		Figure:   cit.Figure,
		ShortRef: cit.ShortRef(),
		Asset:    cit.Locator.Asset,
	}
}

func citationOutputs(citations []domain.Citation) []CitationOutput {
	outputs := make([]CitationOutput, len(citations))
	for i := range citations {
		outputs[i] = citationOutput(&citations[i])
	}
	return outputs
}
