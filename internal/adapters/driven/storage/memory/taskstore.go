package memory

import (
	"context"
	"sync"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driven"
)

// Ensure TaskCardStore implements the interface.
var _ driven.TaskCardStore = (*TaskCardStore)(nil)

// TaskCardStore is an in-memory implementation of driven.TaskCardStore.
type TaskCardStore struct {
	mu    sync.RWMutex
	cards []domain.TaskCard
}

// NewTaskCardStore creates a new in-memory task card store.
func NewTaskCardStore() *TaskCardStore {
	return &TaskCardStore{}
}

// Replace swaps the full card set.
func (s *TaskCardStore) Replace(_ context.Context, cards []domain.TaskCard) error {
	copied := make([]domain.TaskCard, len(cards))
	copy(copied, cards)

	s.mu.Lock()
	s.cards = copied
	s.mu.Unlock()
	return nil
}

// List returns a copy of all cards in insertion order.
func (s *TaskCardStore) List(_ context.Context) ([]domain.TaskCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]domain.TaskCard, len(s.cards))
	copy(cards, s.cards)
	return cards, nil
}
