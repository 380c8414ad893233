package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChunk_Validate tests chunk invariant checks
func TestChunk_Validate(t *testing.T) {
	valid := Chunk{
		ID:             "mm-27-001",
		SourceDocument: "mm",
		Component:      "aileron cable",
		Keywords:       []string{"aileron", "cable", "rigging"},
		Section:        "27-10-01",
		SectionTitle:   "Aileron Control Rigging",
		Page:           143,
		Content:        "Rig the aileron cables to the tension in Figure 27-3.",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Chunk)
		detail string
	}{
		{
			name:   "empty id",
			mutate: func(c *Chunk) { c.ID = "" },
			detail: "empty id",
		},
		{
			name:   "missing source document",
			mutate: func(c *Chunk) { c.SourceDocument = "" },
			detail: "mm-27-001",
		},
		{
			name:   "page zero",
			mutate: func(c *Chunk) { c.Page = 0 },
			detail: "mm-27-001",
		},
		{
			name:   "negative page",
			mutate: func(c *Chunk) { c.Page = -3 },
			detail: "mm-27-001",
		},
		{
			name:   "empty content",
			mutate: func(c *Chunk) { c.Content = "" },
			detail: "mm-27-001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorpusInvalid)
			assert.Contains(t, err.Error(), tt.detail)
		})
	}
}

// TestChunk_Validate_EmptyKeywordsAllowed tests that keywords are optional
func TestChunk_Validate_EmptyKeywordsAllowed(t *testing.T) {
	c := Chunk{
		ID:             "mm-00-001",
		SourceDocument: "mm",
		Component:      "placard",
		Page:           1,
		Content:        "Placard locations are shown on page 1.",
	}
	assert.NoError(t, c.Validate())
}
