package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTaskCard_Matches tests label matching rules
func TestTaskCard_Matches(t *testing.T) {
	card := TaskCard{ID: "tc-1", Item: "Spark Plug", Note: "AD Required", Active: true}

	tests := []struct {
		name  string
		label string
		want  bool
	}{
		{name: "exact", label: "Spark Plug", want: true},
		{name: "case insensitive", label: "spark plug", want: true},
		{name: "label contains item", label: "left magneto spark plug", want: true},
		{name: "item contains label", label: "plug", want: true},
		{name: "no overlap", label: "brake caliper", want: false},
		{name: "empty label", label: "", want: false},
		{name: "whitespace label", label: "   ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, card.Matches(tt.label))
		})
	}
}

// TestTaskCard_Matches_EmptyItem tests that an unset item never matches
func TestTaskCard_Matches_EmptyItem(t *testing.T) {
	card := TaskCard{ID: "tc-2", Active: true}
	assert.False(t, card.Matches("spark plug"))
}
