package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driven"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driving"
	"github.com/spanner-labs/refdex-cli/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService manages the corpus lifecycle: lazy first load, explicit
// reloads, and status reporting.
type CorpusService struct {
	loader driven.CorpusLoader
	store  driven.CorpusStore

	// mu serialises load attempts so concurrent callers never trigger
	// parallel reads of the corpus source.
	mu       sync.Mutex
	loadedAt time.Time
}

// NewCorpusService creates a new corpus service.
func NewCorpusService(loader driven.CorpusLoader, store driven.CorpusStore) *CorpusService {
	return &CorpusService{
		loader: loader,
		store:  store,
	}
}

// Ensure returns the loaded corpus, loading it on first use. Concurrent
// callers block on the same load and then share its result. A failed
// attempt is not cached: the next caller retries.
func (s *CorpusService) Ensure(ctx context.Context) (*domain.Corpus, error) {
	if corpus := s.store.Snapshot(ctx); corpus != nil {
		return corpus, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have finished the load while we waited.
	if corpus := s.store.Snapshot(ctx); corpus != nil {
		return corpus, nil
	}
	return s.load(ctx)
}

// Reload re-reads the corpus source and swaps the result in atomically.
// On failure the previous corpus stays active and the error is
// returned.
func (s *CorpusService) Reload(ctx context.Context) (*domain.Corpus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// load reads the source and replaces the stored corpus. Callers must
// hold mu.
func (s *CorpusService) load(ctx context.Context) (*domain.Corpus, error) {
	logger.Debug("Loading corpus from %s", s.loader.Source())

	documents, chunks, err := s.loader.Load(ctx)
	if err != nil {
		logger.Warn("Corpus load failed: %v", err)
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	corpus, err := s.store.Replace(ctx, documents, chunks)
	if err != nil {
		logger.Warn("Corpus rejected: %v", err)
		return nil, fmt.Errorf("replace corpus: %w", err)
	}

	s.loadedAt = time.Now()
	logger.Info("Corpus loaded: %d documents, %d chunks",
		len(corpus.Documents), corpus.Len())
	return corpus, nil
}

// Status reports what is currently loaded. A missing corpus is a valid
// state, not an error.
func (s *CorpusService) Status(ctx context.Context) domain.CorpusStatus {
	status := domain.CorpusStatus{
		Source: s.loader.Source(),
	}

	corpus := s.store.Snapshot(ctx)
	if corpus == nil {
		return status
	}

	s.mu.Lock()
	status.LoadedAt = s.loadedAt
	s.mu.Unlock()

	status.Loaded = true
	status.DocumentCount = len(corpus.Documents)
	status.ChunkCount = corpus.Len()
	status.Documents = corpus.Documents
	return status
}
