package memory

import (
	"context"
	"sync"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory implementation of driven.CorpusStore.
// The corpus is held behind a single replaceable handle: Replace
// validates a full replacement and swaps the pointer, so readers either
// see the old corpus or the new one, never a mix.
type CorpusStore struct {
	mu     sync.RWMutex
	corpus *domain.Corpus
}

// NewCorpusStore creates a new in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{}
}

// Replace validates the records and swaps in the resulting corpus. On
// validation failure the current corpus is left untouched.
func (s *CorpusStore) Replace(_ context.Context, documents []domain.DocumentMeta, chunks []domain.Chunk) (*domain.Corpus, error) {
	corpus, err := domain.NewCorpus(documents, chunks)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.corpus = corpus
	s.mu.Unlock()
	return corpus, nil
}

// Snapshot returns the current corpus handle, nil when nothing has been
// loaded. The snapshot stays valid after later Replace calls.
func (s *CorpusStore) Snapshot(_ context.Context) *domain.Corpus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corpus
}
