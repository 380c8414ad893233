// Package status provides the corpus-aware status bar for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/keymap"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
	StateResults   State = "results"
	StateNoCorpus  State = "no_corpus"
)

// Bar displays the lookup state and a summary of the loaded corpus on
// the left, and keybinding hints on the right.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	// Lookup state, driven by the search view.
	state       State
	message     string
	resultCount int

	// Corpus facts, driven by the app whenever a load completes. They
	// outlive individual lookups.
	docCount   int
	chunkCount int
	watching   bool

	width int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages. The bar has no message-driven
// behaviour; callers drive it through the setters.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderState()
	if corpus := s.renderCorpus(); corpus != "" {
		left += s.styles.Muted.Render(" · ") + corpus
	}
	right := s.renderHints()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderState renders the lookup state segment.
func (s *Bar) renderState() string {
	switch s.state {
	case StateSearching:
		return s.styles.Muted.Render("Searching...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render("Error: " + s.message)
		}
		return s.styles.Error.Render("Error")
	case StateNoCorpus:
		return s.styles.Warning.Render("No corpus loaded")
	case StateReady, StateResults:
		if s.message != "" {
			return s.styles.Normal.Render(s.message)
		}
		if s.resultCount > 0 {
			return s.styles.Normal.Render(fmt.Sprintf("%d passages", s.resultCount))
		}
		return s.styles.Muted.Render("Ready")
	}
	return s.styles.Muted.Render("Ready")
}

// renderCorpus summarises the loaded corpus. Empty until a load has
// completed, so the bar does not claim "0 docs" before the first
// Ensure.
func (s *Bar) renderCorpus() string {
	if s.docCount == 0 && s.chunkCount == 0 {
		return ""
	}
	summary := fmt.Sprintf("%d docs, %d chunks", s.docCount, s.chunkCount)
	if s.watching {
		summary += " (watching)"
	}
	return s.styles.Muted.Render(summary)
}

// renderHints renders keybinding hints for the current state.
func (s *Bar) renderHints() string {
	var bindings []key.Binding
	if s.state == StateResults && s.resultCount > 0 {
		bindings = s.keymap.ResultsHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetResultCount sets the result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// ResultCount returns the current result count.
func (s *Bar) ResultCount() int {
	return s.resultCount
}

// SetCorpus records the loaded corpus counts for the summary segment.
func (s *Bar) SetCorpus(docs, chunks int) {
	s.docCount = docs
	s.chunkCount = chunks
}

// SetWatching marks whether live corpus reload is active.
func (s *Bar) SetWatching(watching bool) {
	s.watching = watching
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the lookup state. The corpus summary reflects the
// store, not the current lookup, so it survives a clear.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.resultCount = 0
}
