// Package view projects a board.Store and a render-only State into rows and
// cards that a hosting shell can draw, and turns named events into state
// changes.
package view

import (
	"fmt"

	"github.com/amonks/journey/board"
)

// Status label colours on the board.
const (
	ColorInProgress = "#92400e"
	ColorCompleted  = "#065f46"
	ColorPending    = "#6b7280"
)

// BoardRow is one task on the board.
type BoardRow struct {
	TaskID      string
	Name        string
	AssetCount  string
	Status      board.Status
	StatusLabel string
	StatusColor string
	Checked     bool
	Highlighted bool
	Expanded    bool
	Assets      []AssetLine
}

// AssetLine is an entry in a row's collapsible asset list.
type AssetLine struct {
	ID    string
	Name  string
	Type  board.AssetType
	Icon  string
	Color string
	Glyph string
}

// RenderBoard returns one row per task in store order.
func RenderBoard(store *board.Store, state State) []BoardRow {
	tasks := store.Tasks()
	rows := make([]BoardRow, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, renderRow(task, state))
	}
	return rows
}

func renderRow(task board.Task, state State) BoardRow {
	lines := make([]AssetLine, 0, len(task.Assets))
	for _, asset := range task.Assets {
		presentation := board.PresentationFor(asset.Type)
		lines = append(lines, AssetLine{
			ID:    asset.ID,
			Name:  asset.Name,
			Type:  asset.Type,
			Icon:  presentation.Icon,
			Color: presentation.Color,
			Glyph: presentation.Glyph,
		})
	}
	return BoardRow{
		TaskID:      task.ID,
		Name:        task.Name,
		AssetCount:  AssetCountLabel(len(task.Assets)),
		Status:      task.Status,
		StatusLabel: task.Status.Label(),
		StatusColor: StatusColor(task.Status),
		Checked:     task.Status == board.StatusCompleted,
		Highlighted: state.SelectedID != "" && state.SelectedID == task.ID,
		Expanded:    state.RowExpanded[task.ID],
		Assets:      lines,
	}
}

// AssetCountLabel formats an asset count, e.g. "1 asset" or "3 assets".
func AssetCountLabel(count int) string {
	if count == 1 {
		return "1 asset"
	}
	return fmt.Sprintf("%d assets", count)
}

// StatusColor returns the board's label colour for a status.
func StatusColor(status board.Status) string {
	switch status {
	case board.StatusInProgress:
		return ColorInProgress
	case board.StatusCompleted:
		return ColorCompleted
	default:
		return ColorPending
	}
}
