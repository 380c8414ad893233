// Package domain defines the core business entities for Refdex.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Chunk: An indexed unit of reference-document text
//   - Corpus: The loaded chunk set plus per-document metadata
//   - Citation: A caller-facing pointer to a document page/figure
//   - RetrievalResult: Ranked chunks, citations, and context text for one query
//   - DisplayDirective: The emphasis/badge/line bundle handed to a renderer
//   - TaskCard: A checklist entry that raises overlay priority
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
