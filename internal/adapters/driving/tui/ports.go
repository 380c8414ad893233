// Package tui provides an interactive terminal user interface for refdex.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retrieval answers reference queries.
	Retrieval driving.RetrievalService

	// Overlay resolves display directives for labels.
	Overlay driving.OverlayService

	// Corpus reports on and reloads the corpus.
	Corpus driving.CorpusService

	// TaskCards exposes the operator's task cards.
	TaskCards driving.TaskCardService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	if p.Corpus == nil {
		return ErrMissingCorpusService
	}
	// Overlay and TaskCards are optional; the views that need them
	// show a hint instead when they are absent.
	return nil
}
