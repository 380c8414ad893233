package domain

// RetrievalResult is the outcome of one retrieval call: the ranked
// chunks, the deduplicated citations derived from them, and the
// flattened context text for prompt injection. An empty result is a
// valid outcome ("no relevant reference found"), not an error.
type RetrievalResult struct {
	// RankedChunks holds the matching chunks, best first, at most the
	// requested limit. Ties keep corpus order (stable sort).
	RankedChunks []Chunk

	// Citations are derived from RankedChunks in rank order and
	// deduplicated by (document, page); first occurrence wins.
	Citations []Citation

	// PrimaryCitation is the first citation, nil when there are none.
	PrimaryCitation *Citation

	// ContextText concatenates the ranked chunks' content, each line
	// prefixed with its citation, separated by blank lines. Empty when
	// nothing matched.
	ContextText string
}

// Empty reports whether the retrieval found nothing.
func (r *RetrievalResult) Empty() bool {
	return r == nil || len(r.RankedChunks) == 0
}
