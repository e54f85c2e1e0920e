package board

// Presentation is how an asset type is drawn.
type Presentation struct {
	// Icon is a Font Awesome class name.
	Icon string
	// Color is a hex colour.
	Color string
	// Glyph stands in for Icon on terminals.
	Glyph string
}

var registry = map[AssetType]Presentation{
	AssetArticle:       {Icon: "fa-file-alt", Color: "#4f46e5", Glyph: "≡"},
	AssetVideo:         {Icon: "fa-video", Color: "#dc2626", Glyph: "▶"},
	AssetQuiz:          {Icon: "fa-question-circle", Color: "#059669", Glyph: "?"},
	AssetReflection:    {Icon: "fa-brain", Color: "#7c3aed", Glyph: "✎"},
	AssetThreadBuilder: {Icon: "fa-sitemap", Color: "#ea580c", Glyph: "⋔"},
	AssetEAGBuilder:    {Icon: "fa-eye", Color: "#0d9488", Glyph: "◉"},
}

// PresentationFor returns the icon and colour for an asset type.
// Unknown types use the article presentation.
func PresentationFor(t AssetType) Presentation {
	if p, ok := registry[t]; ok {
		return p
	}
	return registry[AssetArticle]
}
