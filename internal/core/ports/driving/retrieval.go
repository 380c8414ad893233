package driving

import (
	"context"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// RetrievalService answers natural-language queries against the corpus.
type RetrievalService interface {
	// Retrieve scores every chunk against the query and returns the top
	// matches with deduplicated citations and assembled context text.
	// maxResults caps the ranked list; zero or negative selects the
	// default. An empty result is a valid answer, not an error.
	Retrieve(ctx context.Context, query string, maxResults int) (*domain.RetrievalResult, error)
}
