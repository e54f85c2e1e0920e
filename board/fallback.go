package board

// FallbackTasks returns the built-in dataset used when the configured source
// cannot be loaded. Each call returns a fresh copy.
func FallbackTasks() []Task {
	return []Task{
		{
			ID:     "task1",
			Name:   "Webpage Creation",
			Status: StatusInProgress,
			Assets: []Asset{
				{
					ID:          "asset1",
					Name:        "Figma Design Review",
					Type:        AssetArticle,
					Duration:    "10 min",
					Description: "Study the Figma design carefully and understand the specifications.",
					ContentURL:  StringPtr("https://www.figma.com/file/hrBbLgcBWyoomChuEKFmpn/Untitled"),
				},
				{
					ID:          "asset2",
					Name:        "HTML Structure Setup",
					Type:        AssetVideo,
					Duration:    "15 min",
					Description: "Watch tutorial on creating semantic HTML structure.",
				},
				{
					ID:          "asset3",
					Name:        "CSS Styling",
					Type:        AssetArticle,
					Duration:    "20 min",
					Description: "Implement CSS styles matching the Figma design.",
				},
			},
		},
	}
}
