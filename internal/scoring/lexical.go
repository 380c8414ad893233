package scoring

import (
	"regexp"
	"strings"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driven"
)

// Ensure Lexical implements the interface.
var _ driven.Scorer = (*Lexical)(nil)

// Tier weights. The totals are load-bearing: ranking tests and the
// guarantee that a query equal to a chunk's component scores at least
// the full-phrase weight both depend on these exact values.
const (
	weightComponentExact   = 25 // normalized query equals the component
	weightComponentContain = 12 // containment, each direction scored separately
	weightKeywordPhrase    = 20 // a keyword equals the whole query
	weightKeywordPartial   = 8  // the query contains a keyword
	weightTokenExact       = 10 // a query token equals an entry
	weightTokenInEntry     = 5  // an entry contains a query token
	weightEntryInToken     = 3  // a query token contains an entry
	weightContentHit       = 2  // a query token appears in the chunk body
)

// Substring checks ignore entries and tokens of three characters or
// fewer; they match too many unrelated strings.
const minPartialLen = 4

var queryStrip = regexp.MustCompile(`[^a-z0-9\s]+`)

// Lexical is a tiered additive scorer. Each tier inspects a different
// chunk field and the tiers sum, so a chunk matching on its component,
// keywords and body outranks one matching on body text alone.
type Lexical struct{}

// NewLexical creates a lexical scorer.
func NewLexical() *Lexical {
	return &Lexical{}
}

// Score rates how well the chunk answers the query. Zero means no
// match. Case-insensitive; non-alphanumeric characters are stripped
// from the query before matching.
func (s *Lexical) Score(query string, chunk *domain.Chunk) int {
	if chunk == nil {
		return 0
	}
	normQuery := normalizeQuery(query)
	if normQuery == "" {
		return 0
	}
	tokens := strings.Fields(normQuery)
	component := strings.ToLower(chunk.Component)

	score := 0

	// Full-phrase tier: the whole query against the component, or
	// failing that against each keyword. One branch at most; a keyword
	// repeating the component must not score the same relation twice.
	if component != "" && normQuery == component {
		score += weightComponentExact
	} else {
		for _, k := range chunk.Keywords {
			k = strings.ToLower(k)
			if k == "" {
				continue
			}
			if k == normQuery {
				score += weightKeywordPhrase
				break
			}
			if len(k) >= minPartialLen && strings.Contains(normQuery, k) {
				score += weightKeywordPartial
				break
			}
		}
	}

	// Containment tier, both directions, independent of the full-phrase
	// tier. An exact component match triggers both directions.
	if component != "" {
		if strings.Contains(normQuery, component) {
			score += weightComponentContain
		}
		if strings.Contains(component, normQuery) {
			score += weightComponentContain
		}
	}

	// Token tier: each query token is matched against the keywords,
	// the component, and the section title. First entry that matches
	// in any of the three ways settles the token.
	entries := matchEntries(chunk, component)
	for _, tok := range tokens {
		for _, entry := range entries {
			if entry == tok {
				score += weightTokenExact
				break
			}
			if strings.Contains(entry, tok) {
				score += weightTokenInEntry
				break
			}
			if len(entry) >= minPartialLen && strings.Contains(tok, entry) {
				score += weightEntryInToken
				break
			}
		}
	}

	// Body tier: longer tokens found anywhere in the chunk content.
	content := strings.ToLower(chunk.Content)
	for _, tok := range tokens {
		if len(tok) >= minPartialLen && strings.Contains(content, tok) {
			score += weightContentHit
		}
	}

	return score
}

// normalizeQuery lowercases the query and strips everything that is
// not a letter, digit or whitespace.
func normalizeQuery(query string) string {
	q := strings.ToLower(query)
	q = queryStrip.ReplaceAllString(q, "")
	return strings.TrimSpace(q)
}

// matchEntries collects the lowercased strings the token tier scans:
// keywords first, then the component, then the section title. Empty
// entries are dropped so they cannot satisfy a containment check.
func matchEntries(chunk *domain.Chunk, component string) []string {
	entries := make([]string, 0, len(chunk.Keywords)+2)
	for _, k := range chunk.Keywords {
		k = strings.ToLower(k)
		if k != "" {
			entries = append(entries, k)
		}
	}
	if component != "" {
		entries = append(entries, component)
	}
	if title := strings.ToLower(chunk.SectionTitle); title != "" {
		entries = append(entries, title)
	}
	return entries
}
