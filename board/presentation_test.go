package board

import "testing"

func TestPresentationForKnownTypes(t *testing.T) {
	tests := []struct {
		typ   AssetType
		icon  string
		color string
	}{
		{AssetArticle, "fa-file-alt", "#4f46e5"},
		{AssetVideo, "fa-video", "#dc2626"},
		{AssetQuiz, "fa-question-circle", "#059669"},
		{AssetReflection, "fa-brain", "#7c3aed"},
		{AssetThreadBuilder, "fa-sitemap", "#ea580c"},
		{AssetEAGBuilder, "fa-eye", "#0d9488"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			got := PresentationFor(tt.typ)
			if got.Icon != tt.icon || got.Color != tt.color {
				t.Fatalf("PresentationFor(%q) = %s/%s, want %s/%s", tt.typ, got.Icon, got.Color, tt.icon, tt.color)
			}
			if got.Glyph == "" {
				t.Fatalf("PresentationFor(%q) has no glyph", tt.typ)
			}
			if !tt.typ.IsKnown() {
				t.Fatalf("expected %q to be known", tt.typ)
			}
		})
	}
}

func TestPresentationForUnknownTypeUsesArticle(t *testing.T) {
	article := PresentationFor(AssetArticle)
	for _, typ := range []AssetType{"", "podcast", "Video", "ARTICLE"} {
		if got := PresentationFor(typ); got != article {
			t.Fatalf("PresentationFor(%q) = %+v, want article %+v", typ, got, article)
		}
		if typ.IsKnown() {
			t.Fatalf("expected %q to be unknown", typ)
		}
	}
}

func TestRegistryCoversValidAssetTypes(t *testing.T) {
	if len(registry) != len(ValidAssetTypes()) {
		t.Fatalf("registry has %d entries, expected %d", len(registry), len(ValidAssetTypes()))
	}
}
