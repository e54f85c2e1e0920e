// Package main implements the journey CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "journey",
	Short:        "Journey - a task board for learning assets",
	SilenceUsage: true,
}

var dataSource string

func init() {
	rootCmd.PersistentFlags().StringVar(&dataSource, "data", "", "Task data file or http(s) URL (default: config, $JOURNEY_DATA, or data.json)")
	rootCmd.SetGlobalNormalizationFunc(aliasNormalizer(dataFlagAliases, nil))
}
