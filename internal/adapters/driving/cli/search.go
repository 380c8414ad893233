package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the reference corpus",
	Long: `Score every corpus chunk against the query and print the ranked
matches with their citations.

The query is matched against component names, keywords, section titles
and chunk content. Results are ordered by relevance; ties keep corpus
order, so identical queries always rank identically.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = configured default)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	ctx, cancel := queryContext(cmd)
	defer cancel()

	result, err := retrievalService.Retrieve(ctx, args[0], searchLimit)
	if err != nil {
		return fmt.Errorf("retrieve: %w", err)
	}

	if searchJSON {
		return outputResultJSON(cmd, result)
	}
	return outputResultTable(cmd, result)
}

func outputResultJSON(cmd *cobra.Command, result *domain.RetrievalResult) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(output))
	return nil
}

func outputResultTable(cmd *cobra.Command, result *domain.RetrievalResult) error {
	if result.Empty() {
		cmd.Println("No matching reference found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range result.RankedChunks {
		chunk := &result.RankedChunks[i]
		if ref := chunkRef(result, chunk); ref != "" {
			cmd.Printf("  %d. %s  (%s)\n", i+1, chunkTitle(chunk), ref)
		} else {
			cmd.Printf("  %d. %s\n", i+1, chunkTitle(chunk))
		}
		cmd.Printf("     %s\n", snippet(chunk.Content, 160))
	}

	cmd.Println()
	cmd.Println("Citations:")
	for i := range result.Citations {
		cmd.Printf("  - %s\n", result.Citations[i].ShortRef())
	}
	return nil
}

// chunkTitle names a ranked chunk in the table: the component when the
// chunk has one, otherwise the section title, otherwise the chunk id.
func chunkTitle(chunk *domain.Chunk) string {
	switch {
	case chunk.Component != "":
		return chunk.Component
	case chunk.SectionTitle != "":
		return chunk.SectionTitle
	default:
		return chunk.ID
	}
}

// chunkRef finds the short reference for a chunk's document and page.
// Every ranked chunk has a citation with its key, deduplication only
// drops repeats.
func chunkRef(result *domain.RetrievalResult, chunk *domain.Chunk) string {
	for i := range result.Citations {
		cit := &result.Citations[i]
		if cit.DocumentID == chunk.SourceDocument && cit.Page == chunk.Page {
			return cit.ShortRef()
		}
	}
	return ""
}

// snippet truncates content at a word boundary for single-line display.
func snippet(content string, maxLen int) string {
	content = strings.Join(strings.Fields(content), " ")
	if len(content) <= maxLen {
		return content
	}
	cut := strings.LastIndex(content[:maxLen], " ")
	if cut <= 0 {
		cut = maxLen
	}
	return content[:cut] + "..."
}
