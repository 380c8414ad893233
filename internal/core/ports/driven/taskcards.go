package driven

import (
	"context"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// TaskCardStore keeps the operator's task cards. Cards are optional:
// services treat an empty store the same as no store at all and fall
// back to unprioritised display.
type TaskCardStore interface {
	// Replace swaps the full card set.
	Replace(ctx context.Context, cards []domain.TaskCard) error

	// List returns all cards. The returned slice is a copy; callers may
	// modify it freely.
	List(ctx context.Context) ([]domain.TaskCard, error)
}
