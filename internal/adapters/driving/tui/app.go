package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/messages"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/styles"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/views/cards"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/views/documents"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/views/menu"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui/views/search"
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView is the reference lookup view.
	searchView *search.View

	// documentsView lists the corpus documents.
	documentsView *documents.View

	// cardsView is the task card view.
	cardsView *cards.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// query is the current lookup query (kept for accessor compatibility).
	query string

	// result holds the current retrieval result (kept for accessor compatibility).
	result *domain.RetrievalResult

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		menuView:      menu.NewView(s),
		searchView:    search.NewView(s, nil, ports.Retrieval, ports.Overlay),
		documentsView: documents.NewView(s, ports.Corpus),
		cardsView:     cards.NewView(s, ports.TaskCards),
		currentView:   messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.documentsView.WithContext(ctx)
	a.cardsView.WithContext(ctx)
	return a
}

// SetShowPreview controls whether the lookup view starts with the
// passage preview pane open.
func (a *App) SetShowPreview(show bool) {
	a.searchView.SetShowPreview(show)
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("refdex - Reference Lookup"),
		a.loadCorpus(),
	)
}

// loadCorpus warms the corpus on startup so the landing menu shows its
// health before the first lookup runs.
func (a *App) loadCorpus() tea.Cmd {
	return func() tea.Msg {
		_, err := a.ports.Corpus.Ensure(a.ctx)
		return messages.CorpusLoaded{Status: a.ports.Corpus.Status(a.ctx), Err: err}
	}
}

// SetWatching tells the views whether live corpus reload is active.
func (a *App) SetWatching(watching bool) {
	a.menuView.SetWatching(watching)
	a.searchView.SetWatching(watching)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.documentsView.SetDimensions(msg.Width, msg.Height)
		a.cardsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forward key messages to active view
		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.syncSearchState()
			return a, cmd

		case messages.ViewDocuments:
			a.documentsView, cmd = a.documentsView.Update(msg)
			return a, cmd

		case messages.ViewCards:
			a.cardsView, cmd = a.cardsView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes to menu
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.RetrievalCompleted, messages.OverlayResolved:
		a.searchView, cmd = a.searchView.Update(msg)
		a.syncSearchState()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		// Initialise views when switching to them
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewDocuments:
			return a, a.documentsView.Init()
		case messages.ViewCards:
			return a, a.cardsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.CorpusLoaded:
		// Corpus facts feed the landing menu and the lookup status bar
		// as well as the documents view.
		a.menuView.SetCorpusStatus(msg.Status)
		a.searchView.SetCorpusSummary(msg.Status.DocumentCount, msg.Status.ChunkCount)
		a.documentsView, cmd = a.documentsView.Update(msg)
		return a, cmd

	case messages.CardsLoaded, messages.CardCompleted, messages.CardAdded:
		a.cardsView, cmd = a.cardsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		// Forward to current view
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewDocuments:
			a.documentsView, cmd = a.documentsView.Update(msg)
		case messages.ViewCards:
			a.cardsView, cmd = a.cardsView.Update(msg)
		case messages.ViewMenu, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewDocuments:
		a.documentsView, cmd = a.documentsView.Update(msg)
	case messages.ViewCards:
		a.cardsView, cmd = a.cardsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// syncSearchState mirrors lookup view state into the app accessors.
func (a *App) syncSearchState() {
	a.query = a.searchView.Query()
	a.result = a.searchView.Result()
	a.err = a.searchView.Err()
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewDocuments:
		return a.documentsView.View()
	case messages.ViewCards:
		return a.cardsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc         Back to Menu
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  q           Quit

Lookup:
  (type)      Enter part or procedure
  enter       Submit lookup
  esc         Back to Menu

Passages:
  j/k, ↑/↓    Navigate passages
  tab         Toggle preview pane
  o           Resolve overlay directive
  n           New lookup

Documents:
  r           Reload the corpus

Task cards:
  enter       Mark card done
  a           Add a card

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current lookup query.
func (a *App) Query() string {
	return a.query
}

// Result returns the current retrieval result.
func (a *App) Result() *domain.RetrievalResult {
	return a.result
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.documentsView.SetDimensions(width, height)
	a.cardsView.SetDimensions(width, height)
}
