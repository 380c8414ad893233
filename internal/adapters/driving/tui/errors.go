package tui

import "errors"

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("tui: retrieval service is required")

// ErrMissingCorpusService is returned when the corpus service is not provided.
var ErrMissingCorpusService = errors.New("tui: corpus service is required")
