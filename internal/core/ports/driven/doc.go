// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CorpusStore: Holds the immutable in-memory corpus behind an
//     atomically replaceable handle
//   - CorpusLoader: Parses the raw corpus file into document and chunk
//     records (external format adapter)
//   - Scorer: Computes query/chunk relevance
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - TaskCardStore: The caller-side checklist. Without it, overlay
//     composition runs without priority signals.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
