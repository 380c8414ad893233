// Package cli implements the command-line interface. Commands talk to
// the core exclusively through driving ports; the composition root in
// cmd/refdex injects the concrete services before Execute runs.
package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driving"
	"github.com/spanner-labs/refdex-cli/internal/logger"
)

// version is overridden at build time via ldflags or SetVersion.
var version = "dev"

// Persistent flag values.
var (
	verbose    bool
	configDir  string
	corpusPath string
)

// Injected services. Nil until the composition root calls the setters;
// commands guard against running unconfigured.
var (
	retrievalService driving.RetrievalService
	overlayService   driving.OverlayService
	corpusService    driving.CorpusService
	taskCardService  driving.TaskCardService
)

// WireFunc builds and injects the services once the persistent flags
// are parsed. The composition root supplies it before Execute runs, so
// --config and --corpus can influence the wiring.
type WireFunc func(configDir, corpusPath string) error

var wireFunc WireFunc

// Options holds CLI-wide wiring that comes from the configuration file
// rather than from flags.
type Options struct {
	// RetrievalTimeout bounds one retrieval call. Zero means no bound.
	RetrievalTimeout time.Duration

	// ShowPreview starts the TUI search view with the passage preview
	// pane open.
	ShowPreview bool

	// WatchCorpus, when non-nil, is started by long-running commands
	// (tui, mcp serve) to reload the corpus on file changes. It blocks
	// until its context is cancelled.
	WatchCorpus func(ctx context.Context) error

	// ValidateCorpus loads and validates a corpus file without
	// touching the live corpus, for checking a candidate file before
	// swapping it in.
	ValidateCorpus func(ctx context.Context, path string) (*domain.Corpus, error)
}

var options Options

var rootCmd = &cobra.Command{
	Use:   "refdex",
	Short: "Reference retrieval for camera-assisted maintenance",
	Long: `Refdex resolves part and procedure labels against an indexed
documentation corpus and returns ranked excerpts with page-accurate
citations.

It is the reference backend of a camera-based maintenance assistant:
when the assistant recognises a part, refdex finds the manual passages
that cover it, formats the citation line for the overlay, and flags
items that appear on the operator's task cards.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if wireFunc == nil {
			return nil
		}
		return wireFunc(configDir, corpusPath)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.refdex)")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "corpus file (overrides the configured path)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion overrides the version string reported by the version
// command.
func SetVersion(v string) {
	version = v
}

// SetWire installs the composition function invoked after persistent
// flag parsing and before any command runs.
func SetWire(fn WireFunc) {
	wireFunc = fn
}

// SetRetrievalService injects the retrieval service.
func SetRetrievalService(svc driving.RetrievalService) {
	retrievalService = svc
}

// SetOverlayService injects the overlay service.
func SetOverlayService(svc driving.OverlayService) {
	overlayService = svc
}

// SetCorpusService injects the corpus lifecycle service.
func SetCorpusService(svc driving.CorpusService) {
	corpusService = svc
}

// SetTaskCardService injects the task card service.
func SetTaskCardService(svc driving.TaskCardService) {
	taskCardService = svc
}

// SetOptions injects the configuration-derived options.
func SetOptions(opts Options) {
	options = opts
}

// queryContext derives the context for a single retrieval-backed
// command, applying the configured timeout when one is set. An
// exceeded timeout degrades to partial results rather than an error,
// so commands still print whatever was ranked.
func queryContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if options.RetrievalTimeout > 0 {
		return context.WithTimeout(ctx, options.RetrievalTimeout)
	}
	return context.WithCancel(ctx)
}

// startCorpusWatch launches the corpus watcher for long-running
// commands. The returned stop function cancels it; both are no-ops
// when no watcher is wired.
func startCorpusWatch(parent context.Context) func() {
	if options.WatchCorpus == nil {
		return func() {}
	}

	ctx, cancel := context.WithCancel(parent)
	go func() {
		if err := options.WatchCorpus(ctx); err != nil && ctx.Err() == nil {
			logger.Error("corpus watcher stopped: %v", err)
		}
	}()
	return cancel
}
