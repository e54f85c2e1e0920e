package boardtui

import (
	"fmt"
	"strings"

	"github.com/amonks/journey/view"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const cardIndent = 6

// renderDetail draws the detail pane. cursor is the focused card index, or
// -1 when the pane is not focused.
func renderDetail(detail view.DetailPane, ok bool, cursor, width int) string {
	if !ok {
		return valueMuted.Render("No task selected")
	}
	lines := []string{
		labelStyle.Render(truncateText(detail.Name, width)),
		colorStyle(view.StatusColor(detail.Status)).Render("[" + detail.Badge.Label + "]"),
		"",
	}
	if len(detail.Cards) == 0 {
		lines = append(lines, valueMuted.Render("This task has no assets"))
	}
	for i, card := range detail.Cards {
		lines = append(lines, renderCard(card, i == cursor, width)...)
	}
	return strings.Join(lines, "\n")
}

func renderCard(card view.AssetCard, focused bool, width int) []string {
	marker := " "
	if focused {
		marker = cursorStyle.Render(">")
	}
	toggle := "▸"
	if card.Expanded {
		toggle = "▾"
	}
	link := ""
	if card.HasContent() {
		link = " ↗"
	}
	title := truncateText(card.Name+link, width-6)
	lines := []string{
		fmt.Sprintf("%s %s %s %s", marker, toggle, colorStyle(card.Color).Render(card.Glyph), labelStyle.Render(title)),
		strings.Repeat(" ", cardIndent) + valueMuted.Render(metaLine(card)),
	}
	if card.Expanded {
		wrapWidth := width - cardIndent
		if wrapWidth < 10 {
			wrapWidth = 10
		}
		description := indent.String(wordwrap.String(card.Description, wrapWidth), cardIndent)
		lines = append(lines, description)
	}
	if focused {
		lines = append(lines, strings.Repeat(" ", cardIndent)+valueMuted.Render("[s] Start  [p] Preview"))
	}
	lines = append(lines, "")
	return lines
}

func metaLine(card view.AssetCard) string {
	if card.Duration == "" {
		return card.TypeLabel
	}
	return card.TypeLabel + " · " + card.Duration
}
