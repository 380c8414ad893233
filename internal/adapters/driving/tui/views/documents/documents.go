// Package documents provides the corpus document list view for the TUI.
package documents

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/messages"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driving"
)

// View is the corpus documents view. It shows what is loaded, where it
// came from, and the per-document metadata behind citations.
type View struct {
	styles        *styles.Styles
	corpusService driving.CorpusService
	ctx           context.Context

	status       domain.CorpusStatus
	selected     int
	scrollOffset int
	width        int
	height       int
	ready        bool
	loading      bool
	err          error
}

// NewView creates a new documents view.
func NewView(s *styles.Styles, corpusService driving.CorpusService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:        s,
		corpusService: corpusService,
		ctx:           context.Background(),
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the corpus when the view is entered.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadCorpus(false)
}

// loadCorpus returns a command that loads or reloads the corpus and
// reports its status.
func (v *View) loadCorpus(reload bool) tea.Cmd {
	return func() tea.Msg {
		if v.corpusService == nil {
			return messages.CorpusLoaded{Err: fmt.Errorf("corpus service not available")}
		}

		var err error
		if reload {
			_, err = v.corpusService.Reload(v.ctx)
		} else {
			_, err = v.corpusService.Ensure(v.ctx)
		}
		return messages.CorpusLoaded{Status: v.corpusService.Status(v.ctx), Err: err}
	}
}

// Update handles messages for the documents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.CorpusLoaded:
		v.loading = false
		v.status = msg.Status
		v.err = msg.Err
		if v.selected >= len(v.status.Documents) {
			v.selected = 0
			v.scrollOffset = 0
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
			v.adjustScroll()
		}
	case "down", "j":
		if v.selected < len(v.status.Documents)-1 {
			v.selected++
			v.adjustScroll()
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "r":
		v.loading = true
		return v, v.loadCorpus(true)
	}

	return v, nil
}

// adjustScroll keeps the selected document visible.
func (v *View) adjustScroll() {
	visibleItems := v.visibleItemCount()
	if v.selected < v.scrollOffset {
		v.scrollOffset = v.selected
	} else if v.selected >= v.scrollOffset+visibleItems {
		v.scrollOffset = v.selected - visibleItems + 1
	}
}

// visibleItemCount returns the number of items that can be displayed.
func (v *View) visibleItemCount() int {
	// Reserve lines for title, summary, help, and padding
	reserved := 9
	available := v.height - reserved
	if available < 1 {
		available = 1
	}
	return available
}

// View renders the documents view.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Corpus documents (%d)", len(v.status.Documents))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading corpus..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	b.WriteString(v.renderSummary())
	b.WriteString("\n\n")

	if len(v.status.Documents) == 0 {
		b.WriteString(v.styles.Muted.Render("No documents in the corpus."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	visibleItems := v.visibleItemCount()
	for i := v.scrollOffset; i < len(v.status.Documents) && i < v.scrollOffset+visibleItems; i++ {
		b.WriteString(v.renderDocument(i, &v.status.Documents[i]))
		b.WriteString("\n")
	}

	if len(v.status.Documents) > visibleItems {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [%d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visibleItems, len(v.status.Documents)),
			len(v.status.Documents))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderSummary renders the one-line load summary under the title.
func (v *View) renderSummary() string {
	if !v.status.Loaded {
		return v.styles.Warning.Render("No corpus loaded")
	}
	summary := fmt.Sprintf("%s  (%d chunks)", v.status.Source, v.status.ChunkCount)
	return v.styles.Muted.Render(summary)
}

// renderDocument renders a single document line.
func (v *View) renderDocument(index int, doc *domain.DocumentMeta) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	name := doc.DisplayName()
	maxNameLen := v.width/2 - 4
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	detail := describeDocument(doc)
	maxDetailLen := v.width/2 - 4
	if maxDetailLen < 10 {
		maxDetailLen = 10
	}
	if len(detail) > maxDetailLen {
		detail = detail[:maxDetailLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxNameLen, name, detail))
	}

	return v.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxNameLen, name)) +
		v.styles.Muted.Render(detail)
}

// describeDocument summarises a document's identifying metadata.
func describeDocument(doc *domain.DocumentMeta) string {
	parts := make([]string, 0, 3)
	if doc.DocNumber != "" {
		parts = append(parts, doc.DocNumber)
	}
	if doc.Revision != "" {
		parts = append(parts, "Rev "+doc.Revision)
	}
	if doc.PageCount > 0 {
		parts = append(parts, fmt.Sprintf("%d pages", doc.PageCount))
	}
	if len(parts) == 0 {
		return doc.Title
	}
	return strings.Join(parts, ", ")
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [r] reload  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Status returns the current corpus status.
func (v *View) Status() domain.CorpusStatus {
	return v.status
}

// SelectedIndex returns the currently selected document index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedDocument returns the currently selected document.
func (v *View) SelectedDocument() *domain.DocumentMeta {
	if v.selected < len(v.status.Documents) {
		return &v.status.Documents[v.selected]
	}
	return nil
}

// Loading returns whether a corpus load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
