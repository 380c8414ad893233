package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

func sampleResult() *domain.RetrievalResult {
	return &domain.RetrievalResult{
		RankedChunks: []domain.Chunk{
			{
				ID:             "mm-7420-spark-plug",
				SourceDocument: "mm",
				Component:      "spark plug",
				Section:        "74-20-01",
				SectionTitle:   "Spark Plug Removal",
				Page:           305,
				Content:        "Remove the spark plugs using the deep socket.",
			},
			{
				ID:             "mm-7914-magneto",
				SourceDocument: "mm",
				SectionTitle:   "Magneto Timing",
				Page:           298,
				Content:        "Check the magneto timing against the data plate.",
			},
			{
				ID:             "ipc-2810-fuel-line",
				SourceDocument: "ipc",
				Page:           41,
				Content:        "Fuel line assembly part numbers.",
			},
		},
		Citations: []domain.Citation{
			{DocumentID: "mm", SourceDocument: "MM", Page: 305, Section: "74-20-01"},
			{DocumentID: "mm", SourceDocument: "MM", Page: 298},
		},
	}
}

func TestNewPassageList(t *testing.T) {
	s := styles.DefaultStyles()
	list := NewPassageList(s)

	require.NotNil(t, list)
	assert.Equal(t, 0, list.Selected())
	assert.True(t, list.IsEmpty())
}

func TestNewPassageList_NilStyles(t *testing.T) {
	list := NewPassageList(nil)

	require.NotNil(t, list)
	assert.NotNil(t, list.styles)
}

func TestPassageList_Init(t *testing.T) {
	list := NewPassageList(nil)

	cmd := list.Init()

	assert.Nil(t, cmd)
}

func TestPassageList_SetResult(t *testing.T) {
	list := NewPassageList(nil)
	result := sampleResult()

	list.SetResult(result)

	assert.Equal(t, 3, list.Count())
	assert.False(t, list.IsEmpty())
	assert.Equal(t, 0, list.Selected())
}

func TestPassageList_SetResult_ResetsSelection(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())
	list.SetSelected(2)

	list.SetResult(sampleResult())

	assert.Equal(t, 0, list.Selected())
}

func TestPassageList_Result(t *testing.T) {
	list := NewPassageList(nil)
	result := sampleResult()
	list.SetResult(result)

	got := list.Result()

	assert.Equal(t, result, got)
}

func TestPassageList_Chunks_NilResult(t *testing.T) {
	list := NewPassageList(nil)

	assert.Nil(t, list.Chunks())
	assert.Equal(t, 0, list.Count())
}

func TestPassageList_SetSelected_Valid(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())

	list.SetSelected(2)

	assert.Equal(t, 2, list.Selected())
}

func TestPassageList_SetSelected_OutOfBounds(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())

	list.SetSelected(99)

	assert.Equal(t, 0, list.Selected()) // Unchanged
}

func TestPassageList_SetSelected_Negative(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())

	list.SetSelected(-1)

	assert.Equal(t, 0, list.Selected()) // Unchanged
}

func TestPassageList_SelectedChunk(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())

	chunk := list.SelectedChunk()

	require.NotNil(t, chunk)
	assert.Equal(t, "mm-7420-spark-plug", chunk.ID)
}

func TestPassageList_SelectedChunk_Empty(t *testing.T) {
	list := NewPassageList(nil)

	chunk := list.SelectedChunk()

	assert.Nil(t, chunk)
}

func TestPassageList_RefFor(t *testing.T) {
	list := NewPassageList(nil)
	result := sampleResult()
	list.SetResult(result)

	cit := list.RefFor(&result.RankedChunks[0])

	require.NotNil(t, cit)
	assert.Equal(t, "MM p.305", cit.ShortRef())
}

func TestPassageList_RefFor_NoCitation(t *testing.T) {
	list := NewPassageList(nil)
	result := sampleResult()
	list.SetResult(result)

	// The ipc chunk has no matching citation in the result.
	cit := list.RefFor(&result.RankedChunks[2])

	assert.Nil(t, cit)
}

func TestPassageList_RefFor_NilResult(t *testing.T) {
	list := NewPassageList(nil)

	cit := list.RefFor(&domain.Chunk{SourceDocument: "mm", Page: 305})

	assert.Nil(t, cit)
}

func TestPassageList_MoveUp(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())
	list.SetSelected(1)

	list.MoveUp()

	assert.Equal(t, 0, list.Selected())
}

func TestPassageList_MoveUp_AtTop(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())

	list.MoveUp()

	assert.Equal(t, 0, list.Selected()) // Stays at 0
}

func TestPassageList_MoveDown(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())

	list.MoveDown()

	assert.Equal(t, 1, list.Selected())
}

func TestPassageList_MoveDown_AtBottom(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())
	list.SetSelected(2)

	list.MoveDown()

	assert.Equal(t, 2, list.Selected()) // Stays at 2
}

func TestPassageList_Update_KeyUp(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())
	list.SetSelected(1)

	msg := tea.KeyMsg{Type: tea.KeyUp}
	updated, cmd := list.Update(msg)

	assert.Equal(t, list, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, list.Selected())
}

func TestPassageList_Update_KeyDown(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())

	msg := tea.KeyMsg{Type: tea.KeyDown}
	updated, cmd := list.Update(msg)

	assert.Equal(t, list, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, list.Selected())
}

func TestPassageList_Update_KeyK(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())
	list.SetSelected(1)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	list.Update(msg)

	assert.Equal(t, 0, list.Selected())
}

func TestPassageList_Update_KeyJ(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	list.Update(msg)

	assert.Equal(t, 1, list.Selected())
}

func TestPassageList_View_Empty(t *testing.T) {
	list := NewPassageList(nil)

	view := list.View()

	assert.Contains(t, view, "No matching reference")
}

func TestPassageList_View_WithPassages(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())

	view := list.View()

	assert.Contains(t, view, "Passages (3)")
	assert.Contains(t, view, "spark plug")
	assert.Contains(t, view, "MM p.305")
}

func TestPassageList_View_SelectedIndicator(t *testing.T) {
	list := NewPassageList(nil)
	list.SetResult(sampleResult())

	view := list.View()

	assert.Contains(t, view, ">") // Selected indicator
}

func TestPassageList_SetDimensions(t *testing.T) {
	list := NewPassageList(nil)

	list.SetDimensions(100, 20)

	assert.Equal(t, 100, list.Width())
	assert.Equal(t, 20, list.Height())
}

func TestChunkTitle(t *testing.T) {
	tests := []struct {
		name     string
		chunk    domain.Chunk
		expected string
	}{
		{
			"component wins",
			domain.Chunk{ID: "mm-7420", Component: "spark plug", SectionTitle: "Spark Plug Removal"},
			"spark plug",
		},
		{
			"section title fallback",
			domain.Chunk{ID: "mm-7914", SectionTitle: "Magneto Timing"},
			"Magneto Timing",
		},
		{
			"id fallback",
			domain.Chunk{ID: "ipc-2810-fuel-line"},
			"ipc-2810-fuel-line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, chunkTitle(&tt.chunk))
		})
	}
}
