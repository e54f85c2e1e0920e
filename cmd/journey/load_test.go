package main

import (
	"testing"

	"github.com/amonks/journey/board"
	"github.com/amonks/journey/internal/config"
	"github.com/spf13/cobra"
)

func newDataCommand(t *testing.T) *cobra.Command {
	t.Helper()
	prev := dataSource
	t.Cleanup(func() { dataSource = prev })
	dataSource = ""

	cmd := &cobra.Command{Use: "example"}
	cmd.Flags().StringVar(&dataSource, "data", "", "Example data")
	return cmd
}

func TestResolveDataSourcePrefersFlag(t *testing.T) {
	cmd := newDataCommand(t)
	if err := cmd.Flags().Set("data", "flag.json"); err != nil {
		t.Fatalf("set data: %v", err)
	}
	cfg := config.Default()
	cfg.Data.Source = "config.json"

	source := resolveDataSource(cmd, cfg)
	if source.String() != "flag.json" {
		t.Fatalf("expected flag source, got %q", source.String())
	}
}

func TestResolveDataSourceUsesConfig(t *testing.T) {
	cmd := newDataCommand(t)
	cfg := config.Default()
	cfg.Data.Source = "https://example.com/tasks.yaml"

	source := resolveDataSource(cmd, cfg)
	if _, ok := source.(board.HTTPSource); !ok {
		t.Fatalf("expected http source, got %T", source)
	}
	if source.Format() != board.FormatYAML {
		t.Fatalf("expected yaml format, got %q", source.Format())
	}
}

func TestResolveDataSourceDefaultsToDataJSON(t *testing.T) {
	cmd := newDataCommand(t)

	source := resolveDataSource(cmd, config.Default())
	if source.String() != board.DefaultSource {
		t.Fatalf("expected %q, got %q", board.DefaultSource, source.String())
	}
}
