package domain

// Emphasis is the display weight of an overlay label.
type Emphasis string

const (
	// EmphasisNone renders the label with no extra weight.
	EmphasisNone Emphasis = "none"

	// EmphasisMedium renders the label with a reference available.
	EmphasisMedium Emphasis = "medium"

	// EmphasisHigh renders the label as priority (task card or caller
	// annotation present).
	EmphasisHigh Emphasis = "high"
)

// BadgeOnTaskCard is the badge shown for labels flagged by the
// caller-side checklist.
const BadgeOnTaskCard = "On task card"

// PrioritySignals carries the caller-supplied priority inputs for one
// label. A nil *PrioritySignals means the caller supplied no signals at
// all, which composes differently from zero-valued signals.
type PrioritySignals struct {
	// OnTaskCard is true when the label is flagged by the caller-side
	// checklist or profile.
	OnTaskCard bool

	// Annotation is an optional short note supplied by the caller,
	// surfaced verbatim on the overlay line.
	Annotation string
}

// DisplayDirective is the final emphasis/badge/line/citation bundle
// handed to a rendering layer. It is recomputed whenever its inputs
// change and carries no state of its own.
type DisplayDirective struct {
	// Emphasis is the display weight determined by the precedence rules.
	Emphasis Emphasis

	// Badge is a short label ("On task card"), empty when absent.
	Badge string

	// Line is the short annotation under the label, empty when absent.
	Line string

	// Citation is the primary citation backing the line, nil when the
	// retrieval found nothing.
	Citation *Citation
}
