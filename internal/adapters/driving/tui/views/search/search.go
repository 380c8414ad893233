// Package search provides the reference lookup view for the TUI.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/components/input"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/components/list"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/components/status"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/keymap"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/messages"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driving"
)

// View represents the lookup view with input, passage list, preview
// pane and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.PassageList
	statusbar *status.Bar

	retrievalService driving.RetrievalService
	overlayService   driving.OverlayService
	ctx              context.Context

	width       int
	height      int
	ready       bool
	err         error
	focusInput  bool // true = input mode (typing), false = results mode (navigating)
	showPreview bool
	directive   *domain.DisplayDirective
}

// NewView creates a new lookup view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	retrievalService driving.RetrievalService,
	overlayService driving.OverlayService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:           s,
		keymap:           km,
		input:            input.NewQueryInput(s),
		list:             list.NewPassageList(s),
		statusbar:        status.NewBar(s, km),
		retrievalService: retrievalService,
		overlayService:   overlayService,
		ctx:              context.Background(),
		width:            80,
		height:           24,
		ready:            false,
		focusInput:       true, // Start in input mode
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetShowPreview controls whether the passage preview pane starts open.
func (v *View) SetShowPreview(show bool) {
	v.showPreview = show
}

// ShowPreview returns whether the preview pane is open.
func (v *View) ShowPreview() bool {
	return v.showPreview
}

// SetCorpusSummary feeds the loaded corpus counts into the status bar.
func (v *View) SetCorpusSummary(docs, chunks int) {
	v.statusbar.SetCorpus(docs, chunks)
}

// SetWatching marks whether live corpus reload is active.
func (v *View) SetWatching(watching bool) {
	v.statusbar.SetWatching(watching)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the lookup view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.RetrievalCompleted:
		v.handleRetrievalCompleted(msg)
		return v, nil

	case messages.OverlayResolved:
		v.handleOverlayResolved(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to input component
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	// Forward to list component
	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	if listCmd != nil {
		cmds = append(cmds, listCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Enter in input mode submits the lookup
	if msg.Type == tea.KeyEnter && v.focusInput {
		query := v.input.Value()
		if query == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateSearching)
		v.focusInput = false // Move to results mode after the lookup
		v.input.Blur()
		return v, v.performRetrieve(query)
	}

	// Input mode: all keys go to input
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Results mode: navigation and actions
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	case tea.KeyTab:
		v.showPreview = !v.showPreview
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "o":
		return v, v.resolveOverlay(v.input.Value())
	case "n":
		// New lookup: clear input and focus it
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		v.directive = nil
		return v, nil
	}

	return v, nil
}

// performRetrieve executes a retrieval and reports the result.
func (v *View) performRetrieve(query string) tea.Cmd {
	return func() tea.Msg {
		if v.retrievalService == nil {
			return messages.ErrorOccurred{Err: ErrNoRetrievalService}
		}

		result, err := v.retrievalService.Retrieve(v.ctx, query, 0)
		return messages.RetrievalCompleted{Query: query, Result: result, Err: err}
	}
}

// resolveOverlay resolves the display directive for the current label.
func (v *View) resolveOverlay(label string) tea.Cmd {
	return func() tea.Msg {
		if v.overlayService == nil {
			return messages.OverlayResolved{Label: label, Err: ErrNoOverlayService}
		}

		directive, err := v.overlayService.Annotate(v.ctx, label)
		return messages.OverlayResolved{Label: label, Directive: directive, Err: err}
	}
}

// handleRetrievalCompleted processes a finished lookup.
func (v *View) handleRetrievalCompleted(msg messages.RetrievalCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		if errors.Is(msg.Err, domain.ErrCorpusUnavailable) {
			v.statusbar.SetState(status.StateNoCorpus)
			return
		}
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.directive = nil
	v.list.SetResult(msg.Result)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(v.list.Count())

	// Switch to results mode after a successful lookup
	v.focusInput = false
	v.input.Blur()
}

// handleOverlayResolved stores the resolved directive for display.
func (v *View) handleOverlayResolved(msg messages.OverlayResolved) {
	if msg.Err != nil {
		v.statusbar.SetMessage("Overlay: " + msg.Err.Error())
		return
	}
	directive := msg.Directive
	v.directive = &directive
	v.showPreview = true
}

// View renders the lookup view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	sections = append(sections, v.styles.Title.Render("refdex"), "")
	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View())

	if v.showPreview {
		if preview := v.renderPreview(); preview != "" {
			sections = append(sections, "", preview)
		}
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderPreview renders the selected passage with its citation prefix,
// plus the overlay directive when one has been resolved.
func (v *View) renderPreview() string {
	chunk := v.list.SelectedChunk()
	if chunk == nil && v.directive == nil {
		return ""
	}

	lines := make([]string, 0, 6)

	if chunk != nil {
		if cit := v.list.RefFor(chunk); cit != nil {
			lines = append(lines, v.styles.Subtitle.Render(cit.ContextPrefix()))
		} else {
			lines = append(lines, v.styles.Subtitle.Render(
				fmt.Sprintf("[Section %s, p.%d]", chunk.Section, chunk.Page)))
		}
		body := v.styles.Normal.Width(v.previewWidth()).Render(chunk.Content)
		lines = append(lines, body)
	}

	if v.directive != nil {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, v.renderDirective(*v.directive))
	}

	box := v.styles.Border.Padding(0, 1).Width(v.previewWidth())
	return box.Render(strings.Join(lines, "\n"))
}

// renderDirective renders an overlay directive on a single line.
func (v *View) renderDirective(d domain.DisplayDirective) string {
	parts := make([]string, 0, 4)

	switch d.Emphasis {
	case domain.EmphasisHigh:
		parts = append(parts, v.styles.EmphasisHigh.Render("HIGH"))
	case domain.EmphasisMedium:
		parts = append(parts, v.styles.EmphasisMedium.Render("MEDIUM"))
	case domain.EmphasisNone:
		parts = append(parts, v.styles.Muted.Render("none"))
	}

	if d.Badge != "" {
		parts = append(parts, v.styles.Badge.Render(d.Badge))
	}
	if d.Line != "" {
		parts = append(parts, v.styles.Normal.Render(d.Line))
	}

	return strings.Join(parts, "  ")
}

// previewWidth returns the inner width available to the preview pane.
func (v *View) previewWidth() int {
	w := v.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current lookup query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the lookup query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Result returns the current retrieval result.
func (v *View) Result() *domain.RetrievalResult {
	return v.list.Result()
}

// SelectedIndex returns the index of the selected passage.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedChunk returns the currently selected passage.
func (v *View) SelectedChunk() *domain.Chunk {
	return v.list.SelectedChunk()
}

// Directive returns the resolved overlay directive, nil when none.
func (v *View) Directive() *domain.DisplayDirective {
	return v.directive
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetResult(nil)
	v.directive = nil
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
