// Command refdex is the reference retrieval CLI. It assembles the
// concrete adapters and core services, injects them into the command
// layer, and runs the root command.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	configfile "github.com/spanner-labs/refdex-cli/internal/adapters/driven/config/file"
	corpusfile "github.com/spanner-labs/refdex-cli/internal/adapters/driven/corpus/file"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driven/storage/memory"
	"github.com/spanner-labs/refdex-cli/internal/adapters/driving/cli"
	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/services"
	"github.com/spanner-labs/refdex-cli/internal/scoring"
)

// version is set at build time via -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetWire(wire)
	if err := cli.Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}

// wire builds the object graph and injects it into the cli package.
// It runs after flag parsing; flags beat environment variables beat
// the configuration file.
func wire(configDir, corpusPath string) error {
	if configDir == "" {
		configDir = os.Getenv("REFDEX_CONFIG_DIR")
	}
	configStore, err := configfile.NewStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	config := configStore.Config()

	if corpusPath == "" {
		corpusPath = os.Getenv("REFDEX_CORPUS")
	}
	if corpusPath == "" {
		corpusPath = config.Corpus.Path
	}

	corpusService := services.NewCorpusService(
		corpusfile.NewLoader(corpusPath),
		memory.NewCorpusStore(),
	)

	retrievalService := services.NewRetrievalService(corpusService, scoring.NewLexical())
	if config.Retrieval.DefaultLimit > 0 {
		retrievalService.SetDefaultLimit(config.Retrieval.DefaultLimit)
	}

	// The config store doubles as the task card store, so card edits
	// persist to the config file.
	taskCardService := services.NewTaskCardService(configStore)
	overlayService := services.NewOverlayService(retrievalService, taskCardService)

	options := cli.Options{
		RetrievalTimeout: time.Duration(config.Retrieval.TimeoutMS) * time.Millisecond,
		ShowPreview:      config.TUI.ShowPreview,
		ValidateCorpus:   validateCorpusFile,
	}
	if config.Corpus.Watch {
		watcher := corpusfile.NewWatcher(corpusPath, func(ctx context.Context) error {
			_, err := corpusService.Reload(ctx)
			return err
		})
		options.WatchCorpus = watcher.Watch
	}

	cli.SetRetrievalService(retrievalService)
	cli.SetOverlayService(overlayService)
	cli.SetCorpusService(corpusService)
	cli.SetTaskCardService(taskCardService)
	cli.SetOptions(options)

	return nil
}

// validateCorpusFile loads and validates an arbitrary corpus file
// without touching the live corpus.
func validateCorpusFile(ctx context.Context, path string) (*domain.Corpus, error) {
	documents, chunks, err := corpusfile.NewLoader(path).Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewCorpus(documents, chunks)
}
