// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// PassageList displays ranked retrieval passages in a navigable list.
type PassageList struct {
	result   *domain.RetrievalResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewPassageList creates a new passage list component.
func NewPassageList(s *styles.Styles) *PassageList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &PassageList{
		result:   nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the passage list.
func (p *PassageList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (p *PassageList) Update(msg tea.Msg) (*PassageList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			p.MoveUp()
		case tea.KeyDown:
			p.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			p.MoveUp()
		case "j":
			p.MoveDown()
		}
	}
	return p, nil
}

// View renders the passage list.
func (p *PassageList) View() string {
	chunks := p.Chunks()
	if len(chunks) == 0 {
		return p.styles.Muted.Render("No matching reference")
	}

	lines := make([]string, 0, len(chunks)*2+2)

	header := p.styles.Subtitle.Render(fmt.Sprintf("Passages (%d)", len(chunks)))
	lines = append(lines, header, "")

	// Each passage takes a title line plus a preview line.
	visibleCount := (p.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if p.selected >= visibleCount {
		start = p.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(chunks) {
		end = len(chunks)
	}

	for i := start; i < end; i++ {
		lines = append(lines, p.renderPassage(i, &chunks[i]))
	}

	return strings.Join(lines, "\n")
}

// renderPassage formats a single ranked passage with its citation ref.
func (p *PassageList) renderPassage(index int, chunk *domain.Chunk) string {
	indicator := "  "
	if index == p.selected {
		indicator = "> "
	}

	title := chunkTitle(chunk)

	maxTitleLen := p.width - 20
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	ref := ""
	if cit := p.RefFor(chunk); cit != nil {
		ref = cit.ShortRef()
	}

	var titleLine string
	if index == p.selected {
		titleLine = p.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, ref))
	} else {
		titleLine = p.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			p.styles.Muted.Render(ref)
	}

	preview := chunk.Content
	maxPreviewLen := p.width - 6
	if maxPreviewLen < 20 {
		maxPreviewLen = 20
	}
	if len(preview) > maxPreviewLen {
		preview = preview[:maxPreviewLen-3] + "..."
	}
	previewLine := p.styles.Muted.Render("    " + preview)

	return titleLine + "\n" + previewLine
}

// chunkTitle picks a display title for a passage.
func chunkTitle(chunk *domain.Chunk) string {
	if chunk.Component != "" {
		return chunk.Component
	}
	if chunk.SectionTitle != "" {
		return chunk.SectionTitle
	}
	return chunk.ID
}

// RefFor returns the citation backing a chunk, nil when the result
// carries none for its document and page.
func (p *PassageList) RefFor(chunk *domain.Chunk) *domain.Citation {
	if p.result == nil || chunk == nil {
		return nil
	}
	for i := range p.result.Citations {
		cit := &p.result.Citations[i]
		if cit.DocumentID == chunk.SourceDocument && cit.Page == chunk.Page {
			return cit
		}
	}
	return nil
}

// SetResult replaces the displayed retrieval result.
func (p *PassageList) SetResult(result *domain.RetrievalResult) {
	p.result = result
	p.selected = 0
}

// Result returns the current retrieval result.
func (p *PassageList) Result() *domain.RetrievalResult {
	return p.result
}

// Chunks returns the ranked chunks of the current result.
func (p *PassageList) Chunks() []domain.Chunk {
	if p.result == nil {
		return nil
	}
	return p.result.RankedChunks
}

// Selected returns the index of the selected passage.
func (p *PassageList) Selected() int {
	return p.selected
}

// SetSelected sets the selected index.
func (p *PassageList) SetSelected(index int) {
	if index >= 0 && index < len(p.Chunks()) {
		p.selected = index
	}
}

// SelectedChunk returns the currently selected passage, or nil if none.
func (p *PassageList) SelectedChunk() *domain.Chunk {
	chunks := p.Chunks()
	if len(chunks) == 0 || p.selected < 0 || p.selected >= len(chunks) {
		return nil
	}
	return &chunks[p.selected]
}

// MoveUp moves selection up.
func (p *PassageList) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves selection down.
func (p *PassageList) MoveDown() {
	if p.selected < len(p.Chunks())-1 {
		p.selected++
	}
}

// SetDimensions sets the component dimensions.
func (p *PassageList) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the current width.
func (p *PassageList) Width() int {
	return p.width
}

// Height returns the current height.
func (p *PassageList) Height() int {
	return p.height
}

// Count returns the number of passages.
func (p *PassageList) Count() int {
	return len(p.Chunks())
}

// IsEmpty returns whether the list is empty.
func (p *PassageList) IsEmpty() bool {
	return len(p.Chunks()) == 0
}
