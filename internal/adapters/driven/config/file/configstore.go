package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/spanner-labs/refdex-cli/internal/core/domain"
	"github.com/spanner-labs/refdex-cli/internal/core/ports/driven"
)

// Ensure Store can back the task card service directly.
var _ driven.TaskCardStore = (*Store)(nil)

// AppConfig is the on-disk configuration.
type AppConfig struct {
	Corpus    CorpusConfig     `toml:"corpus"`
	Retrieval RetrievalConfig  `toml:"retrieval"`
	TUI       TUIConfig        `toml:"tui"`
	TaskCards []TaskCardConfig `toml:"task_cards"`
}

// CorpusConfig locates the corpus source.
type CorpusConfig struct {
	// Path to the corpus JSON file.
	Path string `toml:"path"`

	// Watch reloads the corpus when the file changes on disk.
	Watch bool `toml:"watch"`
}

// RetrievalConfig tunes the retrieval engine.
type RetrievalConfig struct {
	// DefaultLimit caps ranked results when a command does not pass
	// its own limit.
	DefaultLimit int `toml:"default_limit"`

	// TimeoutMS bounds one retrieval call in milliseconds. Zero means
	// no bound; an exceeded bound degrades to partial results.
	TimeoutMS int `toml:"timeout_ms"`
}

// TUIConfig tunes the interactive terminal UI.
type TUIConfig struct {
	// ShowPreview starts the search view with the passage preview pane
	// open.
	ShowPreview bool `toml:"show_preview"`
}

// TaskCardConfig is one task card entry. Cards without an id get one
// assigned on load and keep it on the next save.
type TaskCardConfig struct {
	ID     string `toml:"id,omitempty"`
	Item   string `toml:"item"`
	Note   string `toml:"note,omitempty"`
	Active bool   `toml:"active"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() AppConfig {
	return AppConfig{
		Corpus:    CorpusConfig{Path: "corpus.json"},
		Retrieval: RetrievalConfig{DefaultLimit: 4},
	}
}

// Store reads and writes the refdex configuration file.
type Store struct {
	mu       sync.RWMutex
	filePath string
	config   AppConfig
}

// NewStore creates a config store rooted at configDir. If configDir is
// empty, defaults to ~/.refdex/config.toml. A missing file is not an
// error; the store starts from defaults.
func NewStore(configDir string) (*Store, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".refdex")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &Store{
		filePath: filepath.Join(configDir, "config.toml"),
		config:   DefaultConfig(),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// Load re-reads the configuration file. Fields absent from the file
// keep their default values.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	fillCardIDs(config.TaskCards)

	s.config = config
	return nil
}

// Save writes the current configuration back to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	config := s.config
	s.mu.RUnlock()

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Config returns a snapshot of the current configuration.
func (s *Store) Config() AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	config := s.config
	config.TaskCards = make([]TaskCardConfig, len(s.config.TaskCards))
	copy(config.TaskCards, s.config.TaskCards)
	return config
}

// SetTaskCards replaces the task card entries, assigning ids where
// missing. Call Save to persist.
func (s *Store) SetTaskCards(cards []TaskCardConfig) {
	copied := make([]TaskCardConfig, len(cards))
	copy(copied, cards)
	fillCardIDs(copied)

	s.mu.Lock()
	s.config.TaskCards = copied
	s.mu.Unlock()
}

// SetCorpusPath overrides the corpus file location. Call Save to
// persist.
func (s *Store) SetCorpusPath(path string) {
	s.mu.Lock()
	s.config.Corpus.Path = path
	s.mu.Unlock()
}

// Path returns the configuration file path.
func (s *Store) Path() string {
	return s.filePath
}

// Replace swaps the task card list and persists it, assigning ids
// where missing. This is the driven.TaskCardStore write side, so task
// card edits made through the service survive restarts.
func (s *Store) Replace(_ context.Context, cards []domain.TaskCard) error {
	entries := make([]TaskCardConfig, 0, len(cards))
	for _, card := range cards {
		entries = append(entries, TaskCardConfig{
			ID:     card.ID,
			Item:   card.Item,
			Note:   card.Note,
			Active: card.Active,
		})
	}
	s.SetTaskCards(entries)
	return s.Save()
}

// List returns the configured task cards as domain values.
func (s *Store) List(_ context.Context) ([]domain.TaskCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]domain.TaskCard, 0, len(s.config.TaskCards))
	for _, entry := range s.config.TaskCards {
		cards = append(cards, domain.TaskCard{
			ID:     entry.ID,
			Item:   entry.Item,
			Note:   entry.Note,
			Active: entry.Active,
		})
	}
	return cards, nil
}

func fillCardIDs(cards []TaskCardConfig) {
	for i := range cards {
		if cards[i].ID == "" {
			cards[i].ID = uuid.New().String()
		}
	}
}
