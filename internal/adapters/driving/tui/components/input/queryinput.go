// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
)

// QueryInput wraps a bubbles textinput for entering lookup labels.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewQueryInput creates a new query input component.
func NewQueryInput(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Part or procedure..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &QueryInput{
		textinput: ti,
		styles:    s,
		label:     "Lookup: ",
		width:     50,
	}
}

// Init initialises the query input.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders the query input.
func (q *QueryInput) View() string {
	label := q.styles.Title.Render(q.label)
	input := q.styles.InputField.Render(q.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue sets the input value.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
}

// SetLabel sets the label rendered before the input field.
func (q *QueryInput) SetLabel(label string) {
	q.label = label
}

// SetPlaceholder sets the placeholder text.
func (q *QueryInput) SetPlaceholder(placeholder string) {
	q.textinput.Placeholder = placeholder
}

// Focus sets focus on the input.
func (q *QueryInput) Focus() tea.Cmd {
	return q.textinput.Focus()
}

// Blur removes focus from the input.
func (q *QueryInput) Blur() {
	q.textinput.Blur()
}

// Focused returns whether the input is focused.
func (q *QueryInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth sets the width of the input.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	// Account for label and padding
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	q.textinput.Width = inputWidth
}

// Width returns the current width.
func (q *QueryInput) Width() int {
	return q.width
}

// Reset clears the input.
func (q *QueryInput) Reset() {
	q.textinput.Reset()
}
