// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the reference lookup view.
	ViewSearch
	// ViewDocuments lists the corpus documents.
	ViewDocuments
	// ViewCards is the task card view.
	ViewCards
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewDocuments:
		return "documents"
	case ViewCards:
		return "cards"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// RetrievalCompleted carries a retrieval result back to the model.
type RetrievalCompleted struct {
	Query  string
	Result *domain.RetrievalResult
	Err    error
}

// OverlayResolved carries the display directive for the current label.
type OverlayResolved struct {
	Label     string
	Directive domain.DisplayDirective
	Err       error
}

// CorpusLoaded carries the corpus status after a load or reload.
type CorpusLoaded struct {
	Status domain.CorpusStatus
	Err    error
}

// CardsLoaded carries the task card list from the service.
type CardsLoaded struct {
	Cards []domain.TaskCard
	Err   error
}

// CardCompleted signals a task card was marked done.
type CardCompleted struct {
	Card domain.TaskCard
	Err  error
}

// CardAdded signals a new task card was stored.
type CardAdded struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
