package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driving"
	"github.com/spanner-labs/refdex-cli/internal/logger"
)

// Ensure OverlayService implements the interface.
var _ driving.OverlayService = (*OverlayService)(nil)

// OverlayService turns a recognised label into a display directive:
// which emphasis to render, whether to show the task card badge, and
// the citation line to print under the label.
type OverlayService struct {
	retrieval driving.RetrievalService
	taskCards driving.TaskCardService
}

// NewOverlayService creates a new overlay service. taskCards may be
// nil; labels then render without priority signals.
func NewOverlayService(retrieval driving.RetrievalService, taskCards driving.TaskCardService) *OverlayService {
	return &OverlayService{
		retrieval: retrieval,
		taskCards: taskCards,
	}
}

// Annotate resolves a label end to end: priority signals from the task
// cards, best citation from retrieval, then composition. An
// unavailable corpus degrades to composing without a citation.
func (s *OverlayService) Annotate(ctx context.Context, label string) (domain.DisplayDirective, error) {
	logger.Section("Overlay")
	logger.Debug("Label: %q", label)

	var signals *domain.PrioritySignals
	if s.taskCards != nil {
		sig, err := s.taskCards.Signals(ctx, label)
		if err != nil {
			return domain.DisplayDirective{}, fmt.Errorf("task card signals: %w", err)
		}
		signals = sig
	}

	retrieval, err := s.retrieval.Retrieve(ctx, label, 1)
	if err != nil {
		if !errors.Is(err, domain.ErrCorpusUnavailable) {
			return domain.DisplayDirective{}, err
		}
		logger.Warn("Composing without citation: %v", err)
		retrieval = nil
	}

	return s.Compose(label, signals, retrieval), nil
}

// Compose merges retrieval output and priority signals into a display
// directive. It is pure and cheap enough to call once per rendered
// label per frame.
//
// Emphasis precedence: a flagged label is always high; an unflagged
// label with a line is medium when the line is citation-only and high
// when an annotation contributed; everything else renders without
// emphasis.
func (s *OverlayService) Compose(label string, signals *domain.PrioritySignals, retrieval *domain.RetrievalResult) domain.DisplayDirective {
	directive := domain.DisplayDirective{Emphasis: domain.EmphasisNone}

	var citation *domain.Citation
	if retrieval != nil {
		citation = retrieval.PrimaryCitation
	}

	if signals == nil {
		if citation != nil {
			directive.Emphasis = domain.EmphasisMedium
			directive.Line = citation.ShortRef()
			directive.Citation = citation
		}
		return directive
	}

	// Assemble the line from the annotation and the citation. The
	// citation is skipped when the annotation already embeds a page
	// reference, so the same page is never mentioned twice.
	annotation := signals.Annotation
	var parts []string
	if annotation != "" {
		parts = append(parts, annotation)
	}
	if citation != nil {
		directive.Citation = citation
		if !strings.Contains(annotation, " p.") {
			parts = append(parts, citation.ShortRef())
		}
	}
	line := strings.Join(parts, " · ")

	switch {
	case signals.OnTaskCard && line != "":
		directive.Emphasis = domain.EmphasisHigh
		directive.Badge = domain.BadgeOnTaskCard
		directive.Line = line
	case signals.OnTaskCard:
		directive.Emphasis = domain.EmphasisHigh
		directive.Badge = domain.BadgeOnTaskCard
	case line != "":
		if annotation == "" {
			directive.Emphasis = domain.EmphasisMedium
		} else {
			directive.Emphasis = domain.EmphasisHigh
		}
		directive.Line = line
	}
	return directive
}
