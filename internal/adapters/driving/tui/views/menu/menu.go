// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/messages"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label string
	Desc  string
	View  messages.ViewType
	Quit  bool // If true, selecting this item quits the app
}

// View is the landing menu. Besides navigation it surfaces corpus
// health, so an operator sees a missing corpus before the first
// lookup fails.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	corpus   domain.CorpusStatus
	watching bool
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Lookup", Desc: "find passages for a component or label", View: messages.ViewSearch},
			{Label: "Documents", Desc: "browse the loaded corpus", View: messages.ViewDocuments},
			{Label: "Task cards", Desc: "manage overlay priorities", View: messages.ViewCards},
			{Label: "Help", Desc: "keybindings", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetCorpusStatus records the corpus status for the health line.
func (v *View) SetCorpusStatus(status domain.CorpusStatus) {
	v.corpus = status
}

// SetWatching marks whether live corpus reload is active.
func (v *View) SetWatching(watching bool) {
	v.watching = watching
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("refdex"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Muted.Render("Reference Retrieval"))
	b.WriteString("\n")
	b.WriteString(v.renderCorpusLine())
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		line := v.styles.Normal.Render(item.Label)
		if i == v.selected {
			cursor = "> "
			line = v.styles.Subtitle.Render(item.Label)
			if item.Desc != "" {
				line += v.styles.Muted.Render("  " + item.Desc)
			}
		}
		b.WriteString(cursor + line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// renderCorpusLine summarises corpus health under the subtitle.
func (v *View) renderCorpusLine() string {
	if !v.corpus.Loaded {
		return v.styles.Warning.Render("No corpus loaded")
	}
	line := fmt.Sprintf("%d documents, %d chunks", v.corpus.DocumentCount, v.corpus.ChunkCount)
	if v.watching {
		line += " (watching)"
	}
	return v.styles.Muted.Render(line)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
