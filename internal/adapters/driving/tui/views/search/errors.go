package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoRetrievalService indicates that no retrieval service was provided.
	ErrNoRetrievalService = errors.New("retrieval service is required")

	// ErrNoOverlayService indicates that no overlay service was provided.
	ErrNoOverlayService = errors.New("overlay service is not available")
)
