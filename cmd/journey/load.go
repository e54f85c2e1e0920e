package main

import (
	"log"
	"os"

	"github.com/amonks/journey/board"
	"github.com/amonks/journey/internal/config"
	"github.com/amonks/journey/internal/paths"
	"github.com/spf13/cobra"
)

func newLogger() *log.Logger {
	return log.New(os.Stderr, "journey: ", log.LstdFlags)
}

func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	return config.Load(cwd)
}

// resolveDataSource picks the --data flag, then the configured source
// (which includes $JOURNEY_DATA), then data.json.
func resolveDataSource(cmd *cobra.Command, cfg *config.Config) board.Source {
	if hasChangedFlags(cmd, "data") {
		return board.ResolveSource(dataSource)
	}
	if cfg != nil && cfg.Data.Source != "" {
		return board.ResolveSource(cfg.Data.Source)
	}
	return board.ResolveSource(board.DefaultSource)
}

// loadStore loads the configured tasks, falling back to the built-in sample
// data when they cannot be read.
func loadStore(cmd *cobra.Command, cfg *config.Config, logger *log.Logger) (*board.Store, board.LoadResult) {
	result := board.Load(cmd.Context(), resolveDataSource(cmd, cfg), logger)
	return board.NewStore(result.Tasks), result
}
