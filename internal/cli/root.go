// Package cli wires the command-line surface: parsing utterances,
// managing clients and tasks against the local database.
package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmm-1987/segurymat/internal/config"
	"github.com/jmm-1987/segurymat/internal/llm"
	"github.com/jmm-1987/segurymat/internal/llm/openai"
	"github.com/jmm-1987/segurymat/internal/parse"
	"github.com/jmm-1987/segurymat/internal/store"
)

const version = "0.1.0"

func NewRoot(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "segurymat",
		Short: "Segurymat parses Spanish task requests and manages the task database",
	}

	root.AddCommand(newParseCommand(logger))
	root.AddCommand(newClientsCommand(logger))
	root.AddCommand(newTasksCommand(logger))
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version)
		},
	}
}

// openStore opens the configured database, creating the data directory
// and schema on first use.
func openStore(cfg config.Config) (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, err
	}
	return store.New(cfg.DBPath)
}

func newParser(cfg config.Config, st *store.Store, logger *slog.Logger) *parse.Parser {
	registry := store.NewRegistry(st)

	var assist llm.Extractor
	if cfg.AssistEnabled() {
		assist = openai.New(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Timeout: time.Duration(cfg.OpenAITimeoutSec) * time.Second,
		}, logger)
	}

	return parse.New(parse.Config{
		AutoThreshold:    cfg.ClientMatchThresholdAuto,
		ConfirmThreshold: cfg.ClientMatchThresholdConfirm,
		MaxCandidates:    cfg.ClientMatchMaxCandidates,
	}, registry, registry, assist, logger)
}
