package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the reference corpus",
	Long: `Inspect and validate the indexed documentation corpus.

Without a subcommand, prints the corpus summary.`,
	RunE: runCorpusInfo,
}

var corpusInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the loaded corpus",
	RunE:  runCorpusInfo,
}

var corpusValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Load a corpus from disk and report problems",
	Long: `Re-read the corpus from its source and run the load-time checks:
unique ids, resolvable document references, non-empty content and
valid page numbers.

With a file argument, validates that file instead, leaving the loaded
corpus untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCorpusValidate,
}

func init() {
	corpusCmd.AddCommand(corpusInfoCmd)
	corpusCmd.AddCommand(corpusValidateCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusInfo(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	ctx, cancel := queryContext(cmd)
	defer cancel()

	if _, err := corpusService.Ensure(ctx); err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	status := corpusService.Status(ctx)
	cmd.Printf("Source:    %s\n", status.Source)
	cmd.Printf("Documents: %d\n", status.DocumentCount)
	cmd.Printf("Chunks:    %d\n", status.ChunkCount)
	if !status.LoadedAt.IsZero() {
		cmd.Printf("Loaded at: %s\n", status.LoadedAt.Format(time.RFC3339))
	}

	if len(status.Documents) > 0 {
		cmd.Println()
		for i := range status.Documents {
			doc := &status.Documents[i]
			cmd.Printf("  %-8s %s\n", doc.DisplayName(), describeDocument(doc))
		}
	}
	return nil
}

func runCorpusValidate(cmd *cobra.Command, args []string) error {
	ctx, cancel := queryContext(cmd)
	defer cancel()

	var (
		corpus *domain.Corpus
		err    error
	)
	switch {
	case len(args) == 1:
		if options.ValidateCorpus == nil {
			return errors.New("standalone validation not configured")
		}
		corpus, err = options.ValidateCorpus(ctx, args[0])
	case corpusService != nil:
		corpus, err = corpusService.Reload(ctx)
	default:
		return errors.New("corpus service not configured")
	}
	if err != nil {
		return fmt.Errorf("corpus validation failed: %w", err)
	}

	cmd.Printf("Corpus valid: %d documents, %d chunks\n", len(corpus.Documents), corpus.Len())
	return nil
}

func describeDocument(doc *domain.DocumentMeta) string {
	desc := doc.Title
	var details []string
	if doc.DocNumber != "" {
		details = append(details, doc.DocNumber)
	}
	if doc.Revision != "" {
		details = append(details, "Rev "+doc.Revision)
	}
	if doc.PageCount > 0 {
		details = append(details, fmt.Sprintf("%d pages", doc.PageCount))
	}
	if len(details) > 0 {
		desc += " (" + strings.Join(details, ", ") + ")"
	}
	return desc
}
