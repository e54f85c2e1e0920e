package main

import (
	"fmt"

	"github.com/amonks/journey/internal/boardtui"
	"github.com/amonks/journey/internal/browser"
	"github.com/spf13/cobra"
)

var tuiNoOpen bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the board in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().BoolVar(&tuiNoOpen, "no-open", false, "Show content URLs instead of opening them in a browser")
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !browser.IsInteractive() {
		return fmt.Errorf("tui requires an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, result := loadStore(cmd, cfg, newLogger())
	return boardtui.Run(cmd.Context(), boardtui.Options{
		Store:     store,
		Opener:    browser.System{},
		OpenLinks: cfg.TUI.OpenLinks && !tuiNoOpen,
		Fallback:  result.Fallback,
	})
}
