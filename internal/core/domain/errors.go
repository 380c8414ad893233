package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrCorpusInvalid indicates a corpus failed load-time validation.
	// The failed load never replaces a previously loaded corpus.
	// Wrapping messages name the offending chunk or document id.
	ErrCorpusInvalid = errors.New("corpus invalid")

	// ErrCorpusUnavailable indicates the corpus could not be loaded at
	// all. Retrieval wraps load failures in it so callers can tell "no
	// corpus" from "no matches"; overlay composition catches it and
	// degrades to a citation-free directive instead of failing.
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid caller input.
	ErrInvalidInput = errors.New("invalid input")
)
