package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driven"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driving"
	"github.com/spanner-labs/refdex-cli/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// DefaultMaxResults caps the ranked list when the caller does not ask
// for a specific size.
const DefaultMaxResults = 4

// cancelCheckEvery is how many chunks are scored between context
// checks. Scoring a chunk is cheaper than polling the context, so the
// poll is amortised over batches.
const cancelCheckEvery = 256

// scoredChunk holds an intermediate match before ranking.
type scoredChunk struct {
	chunk *domain.Chunk
	score int
}

// RetrievalService answers queries against the corpus: it scores every
// chunk, ranks the matches, deduplicates citations, and assembles the
// context text.
type RetrievalService struct {
	corpus       driving.CorpusService
	scorer       driven.Scorer
	defaultLimit int
}

// NewRetrievalService creates a new retrieval service.
func NewRetrievalService(corpus driving.CorpusService, scorer driven.Scorer) *RetrievalService {
	return &RetrievalService{
		corpus:       corpus,
		scorer:       scorer,
		defaultLimit: DefaultMaxResults,
	}
}

// SetDefaultLimit overrides the result cap applied when callers pass a
// non-positive maxResults.
func (s *RetrievalService) SetDefaultLimit(limit int) {
	if limit > 0 {
		s.defaultLimit = limit
	}
}

// Retrieve scores every chunk against the query and returns the top
// matches. An empty result is the valid answer for an out-of-corpus
// query or an empty corpus; only an unavailable corpus is an error.
// Cancellation mid-scan degrades to ranking whatever has been scored
// so far.
func (s *RetrievalService) Retrieve(ctx context.Context, query string, maxResults int) (*domain.RetrievalResult, error) {
	logger.Section("Retrieval")
	logger.Debug("Query: %q", query)

	result := &domain.RetrievalResult{}

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return result, nil
	}

	limit := maxResults
	if limit <= 0 {
		limit = s.defaultLimit
	}
	logger.Debug("Limit: %d", limit)

	corpus, err := s.corpus.Ensure(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusUnavailable, err)
	}
	if corpus.Len() == 0 {
		logger.Debug("Corpus is empty, returning no results")
		return result, nil
	}

	chunks := corpus.Chunks
	var scored []scoredChunk
	for i := range chunks {
		if i%cancelCheckEvery == 0 && ctx.Err() != nil {
			logger.Warn("Retrieval cancelled after %d of %d chunks, ranking partial results",
				i, len(chunks))
			break
		}
		if score := s.scorer.Score(query, &chunks[i]); score > 0 {
			scored = append(scored, scoredChunk{chunk: &chunks[i], score: score})
		}
	}
	logger.Debug("Matched %d of %d chunks", len(scored), len(chunks))

	// Stable sort keeps corpus order for equal scores, which makes the
	// ranking reproducible for identical input.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	if len(scored) == 0 {
		return result, nil
	}

	result.RankedChunks = make([]domain.Chunk, 0, len(scored))
	result.Citations = make([]domain.Citation, 0, len(scored))
	seen := make(map[string]struct{}, len(scored))
	blocks := make([]string, 0, len(scored))

	for _, sc := range scored {
		result.RankedChunks = append(result.RankedChunks, *sc.chunk)

		cit := corpus.CitationFor(sc.chunk)
		if _, dup := seen[cit.Key()]; !dup {
			seen[cit.Key()] = struct{}{}
			result.Citations = append(result.Citations, cit)
		}

		blocks = append(blocks, cit.ContextPrefix()+": "+sc.chunk.Content)
	}
	result.PrimaryCitation = &result.Citations[0]
	result.ContextText = strings.Join(blocks, "\n\n")

	logger.Info("Retrieved %d chunks, %d citations", len(result.RankedChunks), len(result.Citations))
	return result, nil
}
