package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

var (
	overlayAnnotation string
	overlayFlagged    bool
	overlayJSON       bool
)

var overlayCmd = &cobra.Command{
	Use:   "overlay [label]",
	Short: "Resolve the display directive for a recognised label",
	Long: `Compose the overlay display directive for a label the way a camera
frame would: priority signals plus the best citation decide the
emphasis, badge and annotation line.

Signals normally come from the configured task cards. Pass --flagged
or --annotation to supply them explicitly instead, for example to
preview how an external checklist entry would render.`,
	Args: cobra.ExactArgs(1),
	RunE: runOverlay,
}

func init() {
	overlayCmd.Flags().StringVar(&overlayAnnotation, "annotation", "", "caller-side note shown on the overlay line")
	overlayCmd.Flags().BoolVar(&overlayFlagged, "flagged", false, "treat the label as flagged on a task card")
	overlayCmd.Flags().BoolVar(&overlayJSON, "json", false, "output the directive as JSON")
	rootCmd.AddCommand(overlayCmd)
}

func runOverlay(cmd *cobra.Command, args []string) error {
	if overlayService == nil {
		return errors.New("overlay service not configured")
	}
	label := args[0]

	ctx, cancel := queryContext(cmd)
	defer cancel()

	explicit := cmd.Flags().Changed("flagged") || cmd.Flags().Changed("annotation")

	var directive domain.DisplayDirective
	if explicit {
		if retrievalService == nil {
			return errors.New("retrieval service not configured")
		}
		signals := &domain.PrioritySignals{
			OnTaskCard: overlayFlagged,
			Annotation: overlayAnnotation,
		}
		retrieval, err := retrievalService.Retrieve(ctx, label, 1)
		if err != nil {
			if !errors.Is(err, domain.ErrCorpusUnavailable) {
				return fmt.Errorf("retrieve: %w", err)
			}
			retrieval = nil
		}
		directive = overlayService.Compose(label, signals, retrieval)
	} else {
		var err error
		directive, err = overlayService.Annotate(ctx, label)
		if err != nil {
			return fmt.Errorf("annotate: %w", err)
		}
	}

	if overlayJSON {
		return outputDirectiveJSON(cmd, directive)
	}
	outputDirective(cmd, label, directive)
	return nil
}

func outputDirectiveJSON(cmd *cobra.Command, directive domain.DisplayDirective) error {
	output, err := json.MarshalIndent(directive, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal directive: %w", err)
	}
	cmd.Println(string(output))
	return nil
}

func outputDirective(cmd *cobra.Command, label string, directive domain.DisplayDirective) {
	cmd.Printf("Label:    %s\n", label)
	cmd.Printf("Emphasis: %s\n", directive.Emphasis)
	if directive.Badge != "" {
		cmd.Printf("Badge:    %s\n", directive.Badge)
	}
	if directive.Line != "" {
		cmd.Printf("Line:     %s\n", directive.Line)
	}
	if cit := directive.Citation; cit != nil && cit.Locator.Asset != "" {
		cmd.Printf("Open:     %s, page %d\n", cit.Locator.Asset, cit.Locator.Page)
	}
}
