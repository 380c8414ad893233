package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
)

func TestNewQueryInput(t *testing.T) {
	s := styles.DefaultStyles()
	input := NewQueryInput(s)

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
}

func TestNewQueryInput_NilStyles(t *testing.T) {
	input := NewQueryInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestQueryInput_Init(t *testing.T) {
	input := NewQueryInput(nil)

	cmd := input.Init()

	// Blink command should be returned
	assert.NotNil(t, cmd)
}

func TestQueryInput_Update(t *testing.T) {
	input := NewQueryInput(nil)

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	updated, cmd := input.Update(msg)

	assert.Equal(t, input, updated)
	// textinput returns nil cmd for regular key presses
	_ = cmd
	assert.Equal(t, "a", input.Value())
}

func TestQueryInput_View(t *testing.T) {
	input := NewQueryInput(nil)

	view := input.View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Lookup")
}

func TestQueryInput_SetValue(t *testing.T) {
	input := NewQueryInput(nil)

	input.SetValue("spark plug")

	assert.Equal(t, "spark plug", input.Value())
}

func TestQueryInput_SetLabel(t *testing.T) {
	input := NewQueryInput(nil)

	input.SetLabel("New card: ")
	view := input.View()

	assert.Contains(t, view, "New card")
}

func TestQueryInput_SetPlaceholder(t *testing.T) {
	input := NewQueryInput(nil)

	input.SetPlaceholder("Item to add...")
	view := input.View()

	assert.Contains(t, view, "Item to add")
}

func TestQueryInput_Focus(t *testing.T) {
	input := NewQueryInput(nil)
	input.Blur()

	assert.False(t, input.Focused())

	cmd := input.Focus()

	assert.NotNil(t, cmd)
	assert.True(t, input.Focused())
}

func TestQueryInput_Blur(t *testing.T) {
	input := NewQueryInput(nil)

	assert.True(t, input.Focused())

	input.Blur()

	assert.False(t, input.Focused())
}

func TestQueryInput_SetWidth(t *testing.T) {
	input := NewQueryInput(nil)

	input.SetWidth(100)

	assert.Equal(t, 100, input.Width())
}

func TestQueryInput_SetWidth_Minimum(t *testing.T) {
	input := NewQueryInput(nil)

	input.SetWidth(10) // Very small, should use minimum

	assert.Equal(t, 10, input.Width())
	// Internal textinput width should be at least 20
	assert.GreaterOrEqual(t, input.textinput.Width, 20)
}

func TestQueryInput_Reset(t *testing.T) {
	input := NewQueryInput(nil)
	input.SetValue("spark plug")

	input.Reset()

	assert.Equal(t, "", input.Value())
}
