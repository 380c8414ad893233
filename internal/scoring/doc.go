// Package scoring implements the lexical relevance scorers behind the
// driven Scorer port. Scorers are pure functions of (query, chunk):
// deterministic, allocation-light, and safe for concurrent use.
package scoring
