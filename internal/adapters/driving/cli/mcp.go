package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can look up
references, fetch citation-prefixed context and resolve overlay
directives through tool calls.

By default, the server communicates over stdio using JSON-RPC and can
be wired into any MCP-compatible assistant.

Use --port to start an HTTP server instead, which enables:
  - Testing with the MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default)
  refdex mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  refdex mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Retrieval: retrievalService,
		Overlay:   overlayService,
		Corpus:    corpusService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	// The server is long-running, so corpus file changes should be
	// picked up while it serves.
	stopWatch := startCorpusWatch(cmd.Context())
	defer stopWatch()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
