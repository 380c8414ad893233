package driven

import (
	"context"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// CorpusLoader reads corpus records from an external source, e.g. a
// bundled JSON file. Loaders parse and map the source format only;
// structural validation happens in the store when the records are
// swapped in.
type CorpusLoader interface {
	// Load reads and parses the source, returning document metadata and
	// chunk records. Malformed source data is reported as
	// ErrCorpusInvalid; I/O failures are returned as-is so callers can
	// distinguish a missing corpus from a broken one.
	Load(ctx context.Context) ([]domain.DocumentMeta, []domain.Chunk, error)

	// Source describes where the corpus comes from, for status output
	// and log lines.
	Source() string
}
