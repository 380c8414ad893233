package driving

import (
	"context"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// TaskCardService exposes the operator's task cards and derives
// priority signals from them.
type TaskCardService interface {
	// Signals returns the priority signals for a label, nil when no
	// active card matches.
	Signals(ctx context.Context, label string) (*domain.PrioritySignals, error)

	// List returns all task cards.
	List(ctx context.Context) ([]domain.TaskCard, error)

	// Add appends a task card. An empty item is rejected with
	// ErrInvalidInput. A card without an id gets one assigned by the
	// store.
	Add(ctx context.Context, card domain.TaskCard) error

	// Complete deactivates the card matching ref by id or item and
	// returns the updated card. An unknown ref is ErrNotFound.
	Complete(ctx context.Context, ref string) (domain.TaskCard, error)
}
