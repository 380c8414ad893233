package driving

import (
	"context"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// CorpusService manages the corpus lifecycle.
type CorpusService interface {
	// Ensure loads the corpus if it is not loaded yet. Concurrent
	// callers share a single load.
	Ensure(ctx context.Context) (*domain.Corpus, error)

	// Reload re-reads the corpus from its source and swaps it in. On
	// failure the previous corpus stays active.
	Reload(ctx context.Context) (*domain.Corpus, error)

	// Status reports what is currently loaded.
	Status(ctx context.Context) domain.CorpusStatus
}
