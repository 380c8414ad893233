package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCitation_Key tests the deduplication key
func TestCitation_Key(t *testing.T) {
	a := Citation{DocumentID: "mm", Page: 305}
	b := Citation{DocumentID: "mm", Page: 305, Section: "74-20-01"}
	c := Citation{DocumentID: "ipc", Page: 305}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

// TestCitation_ShortRef tests overlay line formatting
func TestCitation_ShortRef(t *testing.T) {
	plain := Citation{SourceDocument: "MM", Page: 305}
	assert.Equal(t, "MM p.305", plain.ShortRef())

	figured := Citation{SourceDocument: "MM", Page: 298, Figure: "74-3"}
	assert.Equal(t, "MM p.298, Fig 74-3", figured.ShortRef())
}

// TestCitation_ContextPrefix tests context block prefix formatting
func TestCitation_ContextPrefix(t *testing.T) {
	plain := Citation{SourceDocument: "MM", Section: "74-20-01", Page: 305}
	assert.Equal(t, "[MM Section 74-20-01, p.305]", plain.ContextPrefix())

	figured := Citation{
		SourceDocument: "MM",
		Section:        "74-10-02",
		Page:           298,
		Figure:         "74-3",
		FigureTitle:    "Magneto Timing Marks",
	}
	assert.Equal(t,
		"[MM Section 74-10-02, p.298, Figure 74-3: Magneto Timing Marks]",
		figured.ContextPrefix())
}
