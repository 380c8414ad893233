package driven

import (
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// Scorer rates how well a chunk answers a query. Higher is better,
// zero means no match. Implementations must be deterministic and safe
// for concurrent use; the retrieval engine calls Score once per chunk
// per query.
type Scorer interface {
	Score(query string, chunk *domain.Chunk) int
}
