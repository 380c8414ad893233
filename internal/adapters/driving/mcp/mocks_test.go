package mcp

import (
	"context"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	result    *domain.RetrievalResult
	err       error
	lastQuery string
	lastLimit int
}

func (m *mockRetrievalService) Retrieve(
	_ context.Context,
	query string,
	maxResults int,
) (*domain.RetrievalResult, error) {
	m.lastQuery = query
	m.lastLimit = maxResults
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.RetrievalResult{}, nil
}

// mockOverlayService is a mock implementation of driving.OverlayService.
type mockOverlayService struct {
	annotated     domain.DisplayDirective
	composed      domain.DisplayDirective
	err           error
	lastLabel     string
	lastSignals   *domain.PrioritySignals
	lastRetrieval *domain.RetrievalResult
}

func (m *mockOverlayService) Annotate(_ context.Context, label string) (domain.DisplayDirective, error) {
	m.lastLabel = label
	if m.err != nil {
		return domain.DisplayDirective{}, m.err
	}
	return m.annotated, nil
}

func (m *mockOverlayService) Compose(
	label string,
	signals *domain.PrioritySignals,
	retrieval *domain.RetrievalResult,
) domain.DisplayDirective {
	m.lastLabel = label
	m.lastSignals = signals
	m.lastRetrieval = retrieval
	return m.composed
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	corpus *domain.Corpus
	status domain.CorpusStatus
	err    error
}

func (m *mockCorpusService) Ensure(context.Context) (*domain.Corpus, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.corpus, nil
}

func (m *mockCorpusService) Reload(context.Context) (*domain.Corpus, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.corpus, nil
}

func (m *mockCorpusService) Status(context.Context) domain.CorpusStatus {
	return m.status
}
