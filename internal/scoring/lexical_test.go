package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

func sparkPlugChunk() *domain.Chunk {
	return &domain.Chunk{
		ID:             "mm-7420-spark-plug",
		SourceDocument: "mm",
		Component:      "spark plug",
		Keywords:       []string{"spark plug", "ignition", "champion", "gap"},
		Section:        "74-20-01",
		SectionTitle:   "Spark Plug Servicing",
		Page:           305,
		Content:        "Remove the spark plugs and inspect the electrode gap. Set gap to 0.016-0.021 in.",
	}
}

func TestNewLexical(t *testing.T) {
	scorer := NewLexical()
	require.NotNil(t, scorer)
}

func TestScore_Tiers(t *testing.T) {
	scorer := NewLexical()
	chunk := sparkPlugChunk()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{
			// 25 exact component + 12+12 both containments
			// + 5+5 token hits + 2+2 body hits.
			name:  "exact component match",
			query: "spark plug",
			want:  63,
		},
		{
			// 20 exact keyword + 10 exact token. Not a component match.
			name:  "exact keyword match",
			query: "ignition",
			want:  30,
		},
		{
			// 8 query-contains-keyword + 12 query-contains-component
			// + 5+5+10 token hits + 2+2 body hits.
			name:  "component embedded in longer query",
			query: "spark plug gap check",
			want:  44,
		},
		{
			// 20 exact keyword + 10 exact token; "gap" is too short
			// for the body tier.
			name:  "punctuation stripped before matching",
			query: "gap?",
			want:  30,
		},
		{
			// Each token occurrence scores on its own.
			name:  "repeated token scores per occurrence",
			query: "gap gap",
			want:  20,
		},
		{
			name:  "case insensitive",
			query: "IGNITION",
			want:  30,
		},
		{
			name:  "no lexical overlap",
			query: "hydraulic fluid",
			want:  0,
		},
		{
			name:  "empty query",
			query: "",
			want:  0,
		},
		{
			name:  "query of stripped characters only",
			query: "!?#",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scorer.Score(tt.query, chunk))
		})
	}
}

// A chunk queried by its own component must always clear the exact
// full-phrase weight, whatever its keywords look like.
func TestScore_ComponentSelfQuery(t *testing.T) {
	scorer := NewLexical()

	chunks := []*domain.Chunk{
		sparkPlugChunk(),
		{
			ID:             "mm-7914-magneto",
			SourceDocument: "mm",
			Component:      "magneto",
			Keywords:       []string{"timing", "slick"},
			SectionTitle:   "Magneto Timing",
			Page:           298,
			Content:        "Check magneto-to-engine timing at 25 degrees BTDC.",
		},
		{
			ID:             "ipc-3210-tire",
			SourceDocument: "ipc",
			Component:      "main tire",
			Keywords:       nil,
			Page:           402,
			Content:        "Main gear tire, 6.00-6, 6 ply rating.",
		},
	}

	for _, chunk := range chunks {
		score := scorer.Score(chunk.Component, chunk)
		assert.GreaterOrEqual(t, score, weightComponentExact,
			"chunk %s scored %d against its own component", chunk.ID, score)
	}
}

func TestScore_EmptyComponent(t *testing.T) {
	scorer := NewLexical()
	chunk := &domain.Chunk{
		ID:             "mm-misc",
		SourceDocument: "mm",
		Component:      "",
		Keywords:       []string{"torque"},
		Page:           12,
		Content:        "General torque values for standard hardware.",
	}

	// An empty component must never satisfy a containment check.
	assert.Equal(t, 0, scorer.Score("brake caliper", chunk))

	// 20 exact keyword + 10 exact token + 2 body hit.
	assert.Equal(t, 32, scorer.Score("torque", chunk))
}

func TestScore_EmptyKeywordEntriesSkipped(t *testing.T) {
	scorer := NewLexical()
	chunk := &domain.Chunk{
		ID:             "mm-blank-keywords",
		SourceDocument: "mm",
		Component:      "oil filter",
		Keywords:       []string{"", "", ""},
		Page:           88,
		Content:        "Replace the oil filter at each oil change.",
	}

	// 25+12+12 component + 5+5 tokens + 2 body hit; "oil" is too
	// short for the body tier.
	assert.Equal(t, 61, scorer.Score("oil filter", chunk))
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewLexical()
	chunk := sparkPlugChunk()

	first := scorer.Score("spark plug gap", chunk)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score("spark plug gap", chunk))
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercases", in: "Spark Plug", want: "spark plug"},
		{name: "strips punctuation", in: "what's the gap?", want: "whats the gap"},
		{name: "keeps digits", in: "set to 25 BTDC", want: "set to 25 btdc"},
		{name: "trims whitespace", in: "  magneto  ", want: "magneto"},
		{name: "symbols only", in: "!?#", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeQuery(tt.in))
		})
	}
}
