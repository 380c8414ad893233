package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var contextLimit int

var contextCmd = &cobra.Command{
	Use:   "context [query]",
	Short: "Print citation-prefixed context for a query",
	Long: `Build the flattened context block for a query: each ranked chunk
rendered as a paragraph prefixed with its bracketed citation, separated
by blank lines.

The output is meant for piping into a prompt or a worksheet, so every
statement stays attributable to a document and page.`,
	Args: cobra.ExactArgs(1),
	RunE: runContext,
}

func init() {
	contextCmd.Flags().IntVarP(&contextLimit, "limit", "n", 3, "maximum number of context passages")
	rootCmd.AddCommand(contextCmd)
}

func runContext(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	ctx, cancel := queryContext(cmd)
	defer cancel()

	result, err := retrievalService.Retrieve(ctx, args[0], contextLimit)
	if err != nil {
		return fmt.Errorf("retrieve: %w", err)
	}

	if result.Empty() {
		cmd.Println("No matching reference found.")
		return nil
	}
	cmd.Println(result.ContextText)
	return nil
}
