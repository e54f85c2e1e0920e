package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSourceAliasSetsDataFlag(t *testing.T) {
	var data string
	cmd := &cobra.Command{Use: "example"}
	cmd.Flags().StringVar(&data, "data", "", "Example data")
	setFlagAliases(cmd.Flags(), dataFlagAliases)

	if err := cmd.Flags().Set("source", "tasks.yaml"); err != nil {
		t.Fatalf("set source alias: %v", err)
	}
	if data != "tasks.yaml" {
		t.Fatalf("expected data to be set via alias, got %q", data)
	}
	if !hasChangedFlags(cmd, "data") {
		t.Fatal("expected data flag to be marked as changed")
	}
	if strings.Contains(cmd.Flags().FlagUsages(), "--source") {
		t.Fatal("did not expect alias to appear in usage")
	}
}

func TestSetFlagAliasesIgnoresEmptyMap(t *testing.T) {
	cmd := &cobra.Command{Use: "example"}
	cmd.Flags().String("data", "", "Example data")
	setFlagAliases(cmd.Flags(), nil)

	if err := cmd.Flags().Set("source", "x"); err == nil {
		t.Fatal("expected unknown flag error without aliases")
	}
}

func TestRootAliasReachesSubcommands(t *testing.T) {
	flags := boardCmd.Flags()
	normalized := flags.GetNormalizeFunc()(flags, "source")
	if normalized != "data" {
		t.Fatalf("expected source to normalize to data, got %q", normalized)
	}
}
