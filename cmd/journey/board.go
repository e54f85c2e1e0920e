package main

import (
	"fmt"

	"github.com/amonks/journey/board"
	"github.com/amonks/journey/internal/listflags"
	"github.com/amonks/journey/internal/ui"
	"github.com/amonks/journey/view"
	"github.com/spf13/cobra"
)

var (
	boardJSON     bool
	boardExpand   bool
	boardStatuses []string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the task board",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().BoolVar(&boardJSON, "json", false, "Output the task document as JSON")
	boardCmd.Flags().BoolVar(&boardExpand, "expand", false, "List each task's assets")
	listflags.AddStatusFlag(boardCmd, &boardStatuses)
}

func runBoard(cmd *cobra.Command, args []string) error {
	statuses, err := listflags.ParseStatuses(boardStatuses)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, _ := loadStore(cmd, cfg, newLogger())
	if boardJSON {
		data, err := board.Encode(store.Tasks())
		if err != nil {
			return fmt.Errorf("encode tasks: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	session := view.NewSession(store, nil)
	if boardExpand {
		session.SetExpandAll(true)
	}
	rows := filterRows(session.Board(), statuses)
	if len(rows) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), formatBoardTable(rows))
	return err
}

func formatBoardTable(rows []view.BoardRow) string {
	table := ui.NewTable("DONE", "ID", "TASK", "STATUS", "ASSETS")
	for _, row := range rows {
		table.Row(ui.Checkbox(row.Checked), row.TaskID, row.Name, ui.HighlightStatus(row.Status), row.AssetCount)
		if !row.Expanded {
			continue
		}
		for _, asset := range row.Assets {
			table.Row("", "", "  "+asset.Glyph+" "+asset.Name, view.TypeLabel(asset.Type))
		}
	}
	return table.String()
}

func filterRows(rows []view.BoardRow, statuses map[board.Status]bool) []view.BoardRow {
	if len(statuses) == 0 {
		return rows
	}
	filtered := make([]view.BoardRow, 0, len(rows))
	for _, row := range rows {
		if statuses[row.Status] {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
