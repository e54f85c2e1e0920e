package view

import "github.com/amonks/journey/board"

func twoTaskStore() *board.Store {
	return board.NewStore([]board.Task{
		{
			ID:     "task1",
			Name:   "Webpage Creation",
			Status: board.StatusInProgress,
			Assets: []board.Asset{
				{ID: "asset1", Name: "Figma Design Review", Type: board.AssetArticle, Duration: "10 min", Description: "Study the design.", ContentURL: board.StringPtr("https://example.com/figma")},
				{ID: "asset2", Name: "HTML Structure Setup", Type: board.AssetVideo, Duration: "15 min", Description: "Watch the tutorial."},
			},
		},
		{
			ID:     "task2",
			Name:   "Deploy",
			Status: board.StatusPending,
			Assets: []board.Asset{
				{ID: "asset1", Name: "Checklist", Type: "podcast", Duration: "5 min", Description: "Go live."},
			},
		},
	})
}

func highlightedRows(rows []BoardRow) []string {
	var ids []string
	for _, row := range rows {
		if row.Highlighted {
			ids = append(ids, row.TaskID)
		}
	}
	return ids
}

func rowByID(rows []BoardRow, id string) BoardRow {
	for _, row := range rows {
		if row.TaskID == id {
			return row
		}
	}
	return BoardRow{}
}
