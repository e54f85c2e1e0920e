package boardtui

import (
	"fmt"
	"strings"

	"github.com/amonks/journey/internal/ui"
	"github.com/amonks/journey/view"
	"github.com/mattn/go-runewidth"
)

// renderBoard draws the board rows and reports the line where the
// highlighted row starts, or -1.
func renderBoard(rows []view.BoardRow, width int) (string, int) {
	if len(rows) == 0 {
		return valueMuted.Render("No tasks"), -1
	}
	lines := make([]string, 0, len(rows)*2)
	highlighted := -1
	for _, row := range rows {
		if row.Highlighted {
			highlighted = len(lines)
		}
		lines = append(lines, renderRowTitle(row, width))
		meta := fmt.Sprintf("    %s · %s", row.AssetCount, colorStyle(row.StatusColor).Render(row.StatusLabel))
		lines = append(lines, meta)
		if !row.Expanded {
			continue
		}
		for _, asset := range row.Assets {
			name := truncateText(asset.Name, width-8)
			lines = append(lines, "      "+colorStyle(asset.Color).Render(asset.Glyph)+" "+name)
		}
		if len(row.Assets) == 0 {
			lines = append(lines, "      "+valueMuted.Render("(no assets)"))
		}
	}
	return strings.Join(lines, "\n"), highlighted
}

func renderRowTitle(row view.BoardRow, width int) string {
	toggle := "▸"
	if row.Expanded {
		toggle = "▾"
	}
	line := truncateText(fmt.Sprintf("%s %s %s", toggle, ui.Checkbox(row.Checked), row.Name), width)
	style := rowNormalStyle
	if row.Highlighted {
		style = rowSelectedStyle
		if pad := width - runewidth.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
	}
	return style.Render(line)
}

func truncateText(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}
