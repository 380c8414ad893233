package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driven/storage/memory"
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/scoring"
)

// mockScorer implements driven.Scorer with canned per-chunk scores.
type mockScorer struct {
	scores map[string]int
}

func (m *mockScorer) Score(_ string, chunk *domain.Chunk) int {
	return m.scores[chunk.ID]
}

// cancellingScorer cancels the retrieval context after a fixed number
// of Score calls.
type cancellingScorer struct {
	cancel context.CancelFunc
	after  int
	calls  int
}

func (m *cancellingScorer) Score(_ string, _ *domain.Chunk) int {
	m.calls++
	if m.calls == m.after {
		m.cancel()
	}
	return 1
}

func newTestRetrieval(scores map[string]int) (*RetrievalService, *mockLoader) {
	loader := newMockLoader()
	corpusSvc := NewCorpusService(loader, memory.NewCorpusStore())
	return NewRetrievalService(corpusSvc, &mockScorer{scores: scores}), loader
}

func rankedScores() map[string]int {
	return map[string]int{
		"mm-7420-spark-plug": 50,
		"mm-7420-gap-check":  30,
		"mm-7914-magneto":    20,
		"ipc-3210-tire":      10,
		"mm-1210-oil":        0,
	}
}

func rankedIDs(result *domain.RetrievalResult) []string {
	ids := make([]string, 0, len(result.RankedChunks))
	for _, ch := range result.RankedChunks {
		ids = append(ids, ch.ID)
	}
	return ids
}

func TestRetrieve_RanksFiltersAndTruncates(t *testing.T) {
	svc, _ := newTestRetrieval(rankedScores())

	result, err := svc.Retrieve(context.Background(), "spark plug", 3)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Zero-scored chunks are excluded, the rest ranked and truncated.
	assert.Equal(t, []string{
		"mm-7420-spark-plug",
		"mm-7420-gap-check",
		"mm-7914-magneto",
	}, rankedIDs(result))
}

func TestRetrieve_CitationDedupByDocumentAndPage(t *testing.T) {
	svc, _ := newTestRetrieval(rankedScores())

	result, err := svc.Retrieve(context.Background(), "spark plug", 3)
	require.NoError(t, err)

	// The two page-305 chunks collapse into one citation; the
	// highest-ranked occurrence wins.
	require.Len(t, result.Citations, 2)
	assert.Equal(t, "mm", result.Citations[0].DocumentID)
	assert.Equal(t, 305, result.Citations[0].Page)
	assert.Equal(t, "74-20-01", result.Citations[0].Section)
	assert.Equal(t, 298, result.Citations[1].Page)

	require.NotNil(t, result.PrimaryCitation)
	assert.Equal(t, "MM p.305", result.PrimaryCitation.ShortRef())
	assert.Equal(t, "docs/mm.pdf", result.PrimaryCitation.Locator.Asset)
	assert.Equal(t, 305, result.PrimaryCitation.Locator.Page)
}

func TestRetrieve_TieKeepsCorpusOrder(t *testing.T) {
	svc, _ := newTestRetrieval(map[string]int{
		"mm-7420-spark-plug": 10,
		"mm-7420-gap-check":  10,
		"mm-7914-magneto":    10,
	})

	result, err := svc.Retrieve(context.Background(), "ignition", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"mm-7420-spark-plug",
		"mm-7420-gap-check",
		"mm-7914-magneto",
	}, rankedIDs(result))
}

func TestRetrieve_ContextText(t *testing.T) {
	svc, _ := newTestRetrieval(rankedScores())

	result, err := svc.Retrieve(context.Background(), "spark plug", 3)
	require.NoError(t, err)

	want := "[MM Section 74-20-01, p.305]: Remove the spark plugs and inspect the electrode gap." +
		"\n\n" +
		"[MM Section 74-20-02, p.305]: Set the electrode gap to 0.016-0.021 in using a feeler gauge." +
		"\n\n" +
		"[MM Section 79-14-02, p.298, Figure 74-3: Timing marks]: Check magneto-to-engine timing at 25 degrees BTDC."
	assert.Equal(t, want, result.ContextText)
}

func TestRetrieve_EmptyQuery(t *testing.T) {
	svc, loader := newTestRetrieval(rankedScores())

	result, err := svc.Retrieve(context.Background(), "   ", 3)
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Empty(t, result.ContextText)

	// An empty query never touches the corpus source.
	assert.Equal(t, 0, loader.loadCalls())
}

func TestRetrieve_NoMatch(t *testing.T) {
	svc, _ := newTestRetrieval(map[string]int{})

	result, err := svc.Retrieve(context.Background(), "hydraulic accumulator", 4)
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Empty(t, result.Citations)
	assert.Nil(t, result.PrimaryCitation)
	assert.Empty(t, result.ContextText)
}

func TestRetrieve_EmptyCorpus(t *testing.T) {
	loader := &mockLoader{}
	corpusSvc := NewCorpusService(loader, memory.NewCorpusStore())
	svc := NewRetrievalService(corpusSvc, &mockScorer{})

	result, err := svc.Retrieve(context.Background(), "spark plug", 4)
	require.NoError(t, err)
	assert.True(t, result.Empty())
}

func TestRetrieve_CorpusUnavailable(t *testing.T) {
	loader := newMockLoader()
	loader.setErr(errors.New("no such file"))
	corpusSvc := NewCorpusService(loader, memory.NewCorpusStore())
	svc := NewRetrievalService(corpusSvc, &mockScorer{})

	result, err := svc.Retrieve(context.Background(), "spark plug", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCorpusUnavailable)
	assert.Nil(t, result)
}

func TestRetrieve_DefaultLimit(t *testing.T) {
	svc, _ := newTestRetrieval(rankedScores())
	ctx := context.Background()

	result, err := svc.Retrieve(ctx, "spark plug", 0)
	require.NoError(t, err)
	assert.Len(t, result.RankedChunks, DefaultMaxResults)

	svc.SetDefaultLimit(2)
	result, err = svc.Retrieve(ctx, "spark plug", -1)
	require.NoError(t, err)
	assert.Len(t, result.RankedChunks, 2)
}

func TestRetrieve_Deterministic(t *testing.T) {
	svc, _ := newTestRetrieval(rankedScores())
	ctx := context.Background()

	first, err := svc.Retrieve(ctx, "spark plug", 4)
	require.NoError(t, err)
	second, err := svc.Retrieve(ctx, "spark plug", 4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRetrieve_MonotonicTruncation(t *testing.T) {
	svc, _ := newTestRetrieval(rankedScores())
	ctx := context.Background()

	smaller, err := svc.Retrieve(ctx, "spark plug", 2)
	require.NoError(t, err)
	larger, err := svc.Retrieve(ctx, "spark plug", 3)
	require.NoError(t, err)

	require.Len(t, larger.RankedChunks, 3)
	assert.Equal(t, rankedIDs(smaller), rankedIDs(larger)[:2])
}

func TestRetrieve_CancelledBeforeScan(t *testing.T) {
	svc, _ := newTestRetrieval(rankedScores())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.Retrieve(ctx, "spark plug", 4)
	require.NoError(t, err)
	assert.True(t, result.Empty())
}

func TestRetrieve_CancelMidScanReturnsPartial(t *testing.T) {
	documents := []domain.DocumentMeta{
		{ID: "mm", Title: "Maintenance Manual", ShortName: "MM"},
	}
	chunks := make([]domain.Chunk, 600)
	for i := range chunks {
		chunks[i] = domain.Chunk{
			ID:             fmt.Sprintf("c-%03d", i),
			SourceDocument: "mm",
			Component:      "part",
			Page:           i + 1,
			Content:        "body",
		}
	}
	loader := &mockLoader{documents: documents, chunks: chunks}
	corpusSvc := NewCorpusService(loader, memory.NewCorpusStore())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scorer := &cancellingScorer{cancel: cancel, after: 10}
	svc := NewRetrievalService(corpusSvc, scorer)

	result, err := svc.Retrieve(ctx, "part", 5)
	require.NoError(t, err)

	// The scan stops at the next cancellation check and ranks what it
	// has; the caller still gets a full page of results.
	assert.Equal(t, cancelCheckEvery, scorer.calls)
	require.Len(t, result.RankedChunks, 5)
	assert.Equal(t, "c-000", result.RankedChunks[0].ID)
}

func TestRetrieve_WithLexicalScorer(t *testing.T) {
	loader := newMockLoader()
	corpusSvc := NewCorpusService(loader, memory.NewCorpusStore())
	svc := NewRetrievalService(corpusSvc, scoring.NewLexical())

	result, err := svc.Retrieve(context.Background(), "spark plug", 3)
	require.NoError(t, err)
	require.False(t, result.Empty())
	assert.Equal(t, "mm-7420-spark-plug", result.RankedChunks[0].ID)
	require.NotNil(t, result.PrimaryCitation)
	assert.Equal(t, "MM p.305", result.PrimaryCitation.ShortRef())
}
