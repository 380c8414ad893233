package driven

import (
	"context"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// CorpusStore holds the loaded corpus in memory.
//
// The store exposes the corpus as an immutable snapshot: Replace
// validates the incoming records and swaps the whole corpus atomically,
// so a snapshot obtained before a reload stays valid for any retrieval
// already using it. There are no partial updates.
type CorpusStore interface {
	// Replace validates the records, builds a new corpus, and swaps it
	// in atomically. On validation failure it returns ErrCorpusInvalid
	// (naming the offending chunk) and leaves the current corpus
	// untouched.
	Replace(ctx context.Context, documents []domain.DocumentMeta, chunks []domain.Chunk) (*domain.Corpus, error)

	// Snapshot returns the current corpus handle, nil when nothing has
	// been loaded. Obtaining the handle is O(1); the snapshot is
	// read-only and safe to share across goroutines.
	Snapshot(ctx context.Context) *domain.Corpus
}
