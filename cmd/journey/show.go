package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amonks/journey/internal/markdown"
	"github.com/amonks/journey/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	showLineWidth    = 80
	showDescIndent   = 5
	showMinDescWidth = 20
)

var showExpand bool

var showCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Print a task and its assets",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showExpand, "expand", false, "Include asset descriptions")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, _ := loadStore(cmd, cfg, newLogger())
	session := view.NewSession(store, nil)
	if len(args) == 1 {
		taskID := strings.TrimSpace(args[0])
		if !session.Select(taskID) {
			return exitError{code: exitNotFound, err: fmt.Errorf("task not found: %s", taskID)}
		}
	}
	if showExpand {
		session.SetExpandAll(true)
	}

	detail, ok := session.Detail()
	if !ok {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
		return err
	}
	printTaskDetail(cmd.OutOrStdout(), detail, outputWidth())
	return nil
}

// printTaskDetail prints a task's detail pane.
func printTaskDetail(w io.Writer, detail view.DetailPane, width int) {
	fmt.Fprintf(w, "ID:       %s\n", detail.TaskID)
	fmt.Fprintf(w, "Task:     %s\n", detail.Name)
	fmt.Fprintf(w, "Status:   %s\n", detail.Badge.Label)
	fmt.Fprintf(w, "Assets:   %s\n", view.AssetCountLabel(len(detail.Cards)))

	descWidth := width - showDescIndent
	if descWidth < showMinDescWidth {
		descWidth = showMinDescWidth
	}
	for i, card := range detail.Cards {
		fmt.Fprintf(w, "\n%2d. %s %s\n", i+1, card.Glyph, card.Name)
		fmt.Fprintf(w, "    %s · %s\n", card.TypeLabel, card.Duration)
		if card.HasContent() {
			fmt.Fprintf(w, "    %s\n", card.ContentURL)
		}
		if !card.Expanded || strings.TrimSpace(card.Description) == "" {
			continue
		}
		rendered := markdown.SafeRender(descWidth, showDescIndent, []byte(card.Description))
		if len(rendered) > 0 {
			fmt.Fprintf(w, "\n%s\n", rendered)
		}
	}
}

func outputWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return showLineWidth
	}
	return width
}
