package view

import (
	"unicode/utf8"

	"github.com/amonks/journey/board"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Badge is the status badge at the top of the detail pane.
type Badge struct {
	Label string
	Class string
}

// DetailPane is the selected task with its asset cards.
type DetailPane struct {
	TaskID string
	Name   string
	Status board.Status
	Badge  Badge
	Cards  []AssetCard
}

// AssetCard is one asset in the detail pane.
type AssetCard struct {
	ID          string
	Name        string
	Type        board.AssetType
	TypeLabel   string
	Duration    string
	Description string
	Icon        string
	Color       string
	// Tint is Color with a low alpha, for the icon background.
	Tint       string
	Glyph      string
	Expanded   bool
	ContentURL string
}

// HasContent reports whether Start will open a URL.
func (c AssetCard) HasContent() bool {
	return c.ContentURL != ""
}

// RenderDetail projects a task into the detail pane using the card flags in
// state.
func RenderDetail(task board.Task, state State) DetailPane {
	cards := make([]AssetCard, 0, len(task.Assets))
	for _, asset := range task.Assets {
		presentation := board.PresentationFor(asset.Type)
		cards = append(cards, AssetCard{
			ID:          asset.ID,
			Name:        asset.Name,
			Type:        asset.Type,
			TypeLabel:   TypeLabel(asset.Type),
			Duration:    asset.Duration,
			Description: asset.Description,
			Icon:        presentation.Icon,
			Color:       presentation.Color,
			Tint:        presentation.Color + "15",
			Glyph:       presentation.Glyph,
			Expanded:    state.CardExpanded[asset.ID],
			ContentURL:  asset.URL(),
		})
	}
	return DetailPane{
		TaskID: task.ID,
		Name:   task.Name,
		Status: task.Status,
		Badge:  BadgeFor(task.Status),
		Cards:  cards,
	}
}

// BadgeFor returns the badge label and style class for a status.
func BadgeFor(status board.Status) Badge {
	switch status {
	case board.StatusInProgress:
		return Badge{Label: status.Label(), Class: "status-badge status-in-progress"}
	case board.StatusCompleted:
		return Badge{Label: status.Label(), Class: "status-badge status-completed"}
	default:
		return Badge{Label: board.StatusPending.Label(), Class: "status-badge status-pending"}
	}
}

// TypeLabel upper-cases the first letter of an asset type tag for display.
// The rest of the tag is shown as given, even when it is not a known type.
func TypeLabel(t board.AssetType) string {
	tag := string(t)
	first, size := utf8.DecodeRuneInString(tag)
	if first == utf8.RuneError {
		return tag
	}
	return cases.Upper(language.Und).String(tag[:size]) + tag[size:]
}
