package driving

import (
	"context"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// OverlayService decides how a recognised part or procedure label
// should be presented to the operator.
type OverlayService interface {
	// Annotate resolves a label end to end: it gathers priority signals
	// from the task cards, retrieves the best citation for the label,
	// and composes the display directive.
	Annotate(ctx context.Context, label string) (domain.DisplayDirective, error)

	// Compose merges retrieval output and priority signals into a
	// display directive. signals may be nil when no task card context
	// exists; retrieval may be nil or empty when nothing matched.
	Compose(label string, signals *domain.PrioritySignals, retrieval *domain.RetrievalResult) domain.DisplayDirective
}
