// Package cards provides the task card view for the TUI.
package cards

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/components/input"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/messages"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driving"
)

// View lists the operator's task cards and lets them be added and
// marked done. Active cards drive overlay priority, so edits here
// change what the lookup view emphasises.
type View struct {
	styles      *styles.Styles
	cardService driving.TaskCardService
	ctx         context.Context

	input *input.QueryInput

	cards    []domain.TaskCard
	selected int
	width    int
	height   int
	ready    bool
	loading  bool
	adding   bool
	message  string
	err      error
}

// NewView creates a new task card view.
func NewView(s *styles.Styles, cardService driving.TaskCardService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	in := input.NewQueryInput(s)
	in.SetLabel("New card: ")
	in.SetPlaceholder("Item to add...")
	in.Blur()

	return &View{
		styles:      s,
		cardService: cardService,
		ctx:         context.Background(),
		input:       in,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the task cards when the view is entered.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadCards()
}

// loadCards returns a command that loads the task card list.
func (v *View) loadCards() tea.Cmd {
	return func() tea.Msg {
		if v.cardService == nil {
			return messages.CardsLoaded{Err: fmt.Errorf("task card service not available")}
		}

		cards, err := v.cardService.List(v.ctx)
		return messages.CardsLoaded{Cards: cards, Err: err}
	}
}

// completeCard returns a command that marks a card done.
func (v *View) completeCard(ref string) tea.Cmd {
	return func() tea.Msg {
		if v.cardService == nil {
			return messages.CardCompleted{Err: fmt.Errorf("task card service not available")}
		}

		card, err := v.cardService.Complete(v.ctx, ref)
		return messages.CardCompleted{Card: card, Err: err}
	}
}

// addCard returns a command that stores a new active card.
func (v *View) addCard(item string) tea.Cmd {
	return func() tea.Msg {
		if v.cardService == nil {
			return messages.CardAdded{Err: fmt.Errorf("task card service not available")}
		}

		err := v.cardService.Add(v.ctx, domain.TaskCard{Item: item, Active: true})
		return messages.CardAdded{Err: err}
	}
}

// Update handles messages for the task card view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		if v.adding {
			return v.handleAddKeyMsg(msg)
		}
		return v.handleKeyMsg(msg)

	case messages.CardsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.cards = msg.Cards
			v.err = nil
			if v.selected >= len(v.cards) {
				v.selected = 0
			}
		}
		return v, nil

	case messages.CardCompleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.message = "Marked done: " + msg.Card.Item
		return v, v.loadCards()

	case messages.CardAdded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.message = "Card added"
		return v, v.loadCards()

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses in list mode.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.cards)-1 {
			v.selected++
		}
	case "enter":
		if card := v.SelectedCard(); card != nil && card.Active {
			return v, v.completeCard(card.ID)
		}
	case "a":
		v.adding = true
		v.message = ""
		v.input.SetValue("")
		return v, v.input.Focus()
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	return v, nil
}

// handleAddKeyMsg handles key presses while entering a new card.
func (v *View) handleAddKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		v.adding = false
		v.input.Blur()
		return v, nil
	case tea.KeyEnter:
		item := strings.TrimSpace(v.input.Value())
		if item == "" {
			return v, nil
		}
		v.adding = false
		v.input.Blur()
		return v, v.addCard(item)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the task card view.
func (v *View) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Task cards (%d)", len(v.cards))
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(v.styles.Muted.Render("Loading task cards..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.adding {
		b.WriteString(v.input.View())
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("[enter] add  [esc] cancel"))
		return b.String()
	}

	if len(v.cards) == 0 {
		b.WriteString(v.styles.Muted.Render("No task cards configured."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	for i := range v.cards {
		b.WriteString(v.renderCard(i, &v.cards[i]))
		b.WriteString("\n")
	}

	if v.message != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.message))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderCard renders a single task card line, with the note below it
// when present.
func (v *View) renderCard(index int, card *domain.TaskCard) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	state := "[done]  "
	if card.Active {
		state = "[active]"
	}

	line := fmt.Sprintf("%s%s %s", indicator, state, card.Item)

	var rendered string
	switch {
	case index == v.selected:
		rendered = v.styles.Selected.Render(line)
	case card.Active:
		rendered = v.styles.Normal.Render(line)
	default:
		rendered = v.styles.Muted.Render(line)
	}

	if card.Note != "" {
		rendered += "\n" + v.styles.Muted.Render("           "+card.Note)
	}

	return rendered
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] navigate  [enter] mark done  [a] add  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// Cards returns the current task cards.
func (v *View) Cards() []domain.TaskCard {
	return v.cards
}

// SelectedIndex returns the currently selected card index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedCard returns the currently selected card.
func (v *View) SelectedCard() *domain.TaskCard {
	if v.selected < len(v.cards) {
		return &v.cards[v.selected]
	}
	return nil
}

// Adding returns whether the add-card input is open.
func (v *View) Adding() bool {
	return v.adding
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
