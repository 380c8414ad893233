package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driven"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driving"
	"github.com/spanner-labs/refdex-cli/internal/logger"
)

// Ensure TaskCardService implements the interface.
var _ driving.TaskCardService = (*TaskCardService)(nil)

// TaskCardService derives priority signals from the operator's task
// cards.
type TaskCardService struct {
	store driven.TaskCardStore
}

// NewTaskCardService creates a new task card service. store may be
// nil; every label then resolves without signals.
func NewTaskCardService(store driven.TaskCardStore) *TaskCardService {
	return &TaskCardService{store: store}
}

// Signals returns the priority signals for a label, nil when no active
// card matches. When several cards match, the first in card order
// wins.
func (s *TaskCardService) Signals(ctx context.Context, label string) (*domain.PrioritySignals, error) {
	if s.store == nil {
		return nil, nil
	}

	cards, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list task cards: %w", err)
	}

	for i := range cards {
		card := &cards[i]
		if !card.Active || !card.Matches(label) {
			continue
		}
		logger.Debug("Label %q matches task card %s (%s)", label, card.ID, card.Item)
		return &domain.PrioritySignals{
			OnTaskCard: true,
			Annotation: card.Note,
		}, nil
	}
	return nil, nil
}

// List returns all task cards.
func (s *TaskCardService) List(ctx context.Context) ([]domain.TaskCard, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx)
}

// Add appends a task card to the checklist.
func (s *TaskCardService) Add(ctx context.Context, card domain.TaskCard) error {
	if s.store == nil {
		return errors.New("no task card store configured")
	}
	if strings.TrimSpace(card.Item) == "" {
		return fmt.Errorf("%w: task card item is empty", domain.ErrInvalidInput)
	}

	cards, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list task cards: %w", err)
	}
	if err := s.store.Replace(ctx, append(cards, card)); err != nil {
		return fmt.Errorf("store task cards: %w", err)
	}
	logger.Info("Added task card for %q", card.Item)
	return nil
}

// Complete deactivates the first card whose id or item equals ref
// (item comparison is case-insensitive) and returns the updated card.
func (s *TaskCardService) Complete(ctx context.Context, ref string) (domain.TaskCard, error) {
	if s.store == nil {
		return domain.TaskCard{}, errors.New("no task card store configured")
	}

	cards, err := s.store.List(ctx)
	if err != nil {
		return domain.TaskCard{}, fmt.Errorf("list task cards: %w", err)
	}
	for i := range cards {
		if cards[i].ID != ref && !strings.EqualFold(cards[i].Item, ref) {
			continue
		}
		cards[i].Active = false
		if err := s.store.Replace(ctx, cards); err != nil {
			return domain.TaskCard{}, fmt.Errorf("store task cards: %w", err)
		}
		logger.Info("Completed task card %s (%s)", cards[i].ID, cards[i].Item)
		return cards[i], nil
	}
	return domain.TaskCard{}, fmt.Errorf("%w: task card %q", domain.ErrNotFound, ref)
}
