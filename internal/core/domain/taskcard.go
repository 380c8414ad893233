package domain

import "strings"

// TaskCard is one entry of the caller-side checklist. Labels matching
// an active card are flagged in overlay composition.
type TaskCard struct {
	// ID is the unique identifier; generated at load time when the
	// configuration omits it.
	ID string

	// Item is the subject label the card targets (e.g., "spark plug").
	Item string

	// Note is an optional annotation surfaced on the overlay line
	// (e.g., "AD Required").
	Note string

	// Active marks the card as part of the current work scope.
	// Inactive cards never produce priority signals.
	Active bool
}

// Matches reports whether the card targets the given label. Matching is
// case-insensitive and accepts containment in either direction, so
// "spark plug" matches a card for "plug" and vice versa.
func (t *TaskCard) Matches(label string) bool {
	item := strings.ToLower(strings.TrimSpace(t.Item))
	l := strings.ToLower(strings.TrimSpace(label))
	if item == "" || l == "" {
		return false
	}
	return item == l || strings.Contains(l, item) || strings.Contains(item, l)
}
