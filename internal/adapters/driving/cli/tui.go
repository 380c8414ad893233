package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for refdex.

The TUI provides reference lookup with keyboard navigation: type a
label, browse the ranked passages, and inspect citations and the
loaded corpus documents.

Controls:
  ↑/k, ↓/j - Navigate results
  Enter    - Search / Select
  Esc      - Back / Cancel
  ?        - Toggle help
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery keeps stack traces readable after the alt screen
	// is torn down.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the tui requires an interactive terminal")
	}

	ports := &tui.Ports{
		Retrieval: retrievalService,
		Overlay:   overlayService,
		Corpus:    corpusService,
		TaskCards: taskCardService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())
	app.SetShowPreview(options.ShowPreview)
	app.SetWatching(options.WatchCorpus != nil)

	// The TUI is long-running, so corpus file changes should be picked
	// up while it is open.
	stopWatch := startCorpusWatch(cmd.Context())
	defer stopWatch()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
