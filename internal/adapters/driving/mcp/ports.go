package mcp

import (
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retrieval answers reference queries.
	Retrieval driving.RetrievalService

	// Overlay composes display directives for labels.
	Overlay driving.OverlayService

	// Corpus reports on and loads the corpus.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	// Overlay and Corpus are optional; their tools and resources
	// degrade when absent.
	return nil
}
