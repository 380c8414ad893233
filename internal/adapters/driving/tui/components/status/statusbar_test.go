package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/keymap"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	bar := NewBar(s, km)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_Init(t *testing.T) {
	bar := NewBar(nil, nil)

	cmd := bar.Init()

	assert.Nil(t, cmd)
}

func TestStatusBar_Update(t *testing.T) {
	bar := NewBar(nil, nil)

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	updated, cmd := bar.Update(msg)

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_SetState(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateSearching)

	assert.Equal(t, StateSearching, bar.State())
}

func TestStatusBar_SetMessage(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetMessage("test message")

	assert.Equal(t, "test message", bar.Message())
}

func TestStatusBar_SetResultCount(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetResultCount(42)

	assert.Equal(t, 42, bar.ResultCount())
}

func TestStatusBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}

func TestStatusBar_Width_Default(t *testing.T) {
	bar := NewBar(nil, nil)

	assert.Equal(t, 80, bar.Width())
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("error message")
	bar.SetResultCount(10)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 0, bar.ResultCount())
}

func TestStatusBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)

	view := bar.View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Ready")
}

func TestStatusBar_View_Searching(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateSearching)

	view := bar.View()

	assert.Contains(t, view, "Searching")
}

func TestStatusBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)

	view := bar.View()

	assert.Contains(t, view, "Error")
}

func TestStatusBar_View_ErrorWithMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("corpus load failed")

	view := bar.View()

	assert.Contains(t, view, "Error")
	assert.Contains(t, view, "corpus load failed")
}

func TestStatusBar_View_NoCorpus(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateNoCorpus)

	view := bar.View()

	assert.Contains(t, view, "No corpus loaded")
}

func TestStatusBar_View_WithPassages(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetResultCount(5)

	view := bar.View()

	assert.Contains(t, view, "5 passages")
}

func TestStatusBar_View_MessageOverridesCount(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetResultCount(5)
	bar.SetMessage("Overlay: card store broken")

	view := bar.View()

	assert.Contains(t, view, "Overlay: card store broken")
}

func TestStatusBar_View_ShowsKeybindings(t *testing.T) {
	bar := NewBar(nil, nil)

	view := bar.View()

	// Should show quit keybinding
	assert.Contains(t, view, "quit")
}

func TestStatusBar_View_ResultsHelp(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateResults)
	bar.SetResultCount(3)

	view := bar.View()

	assert.Contains(t, view, "new search")
	assert.Contains(t, view, "preview")
}

func TestStatusBar_View_CorpusSummary(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetCorpus(3, 41)

	view := bar.View()

	assert.Contains(t, view, "3 docs, 41 chunks")
	assert.NotContains(t, view, "watching")
}

func TestStatusBar_View_CorpusSummaryWatching(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetCorpus(3, 41)
	bar.SetWatching(true)

	view := bar.View()

	assert.Contains(t, view, "3 docs, 41 chunks (watching)")
}

func TestStatusBar_View_NoSummaryBeforeLoad(t *testing.T) {
	bar := NewBar(nil, nil)

	view := bar.View()

	assert.NotContains(t, view, "docs")
	assert.NotContains(t, view, "chunks")
}

func TestStatusBar_Clear_KeepsCorpusSummary(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetCorpus(3, 41)
	bar.SetState(StateResults)
	bar.SetResultCount(4)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 0, bar.ResultCount())
	assert.Contains(t, bar.View(), "3 docs, 41 chunks",
		"corpus facts outlive a lookup reset")
}

func TestState_Constants(t *testing.T) {
	assert.Equal(t, State("ready"), StateReady)
	assert.Equal(t, State("searching"), StateSearching)
	assert.Equal(t, State("error"), StateError)
	assert.Equal(t, State("results"), StateResults)
	assert.Equal(t, State("no_corpus"), StateNoCorpus)
}
