package analysis

import (
	"context"

	"github.com/mj1618/uibuilder/internal/imageinput"
	"github.com/mj1618/uibuilder/internal/model"
)

// SampleResult is a fixed profile-card design returned when analysis is
// unavailable and fallback is enabled.
func SampleResult() *model.DesignAnalysisResult {
	return &model.DesignAnalysisResult{
		Summary:    "Sample profile card with actions (analysis unavailable)",
		Confidence: 0,
		Elements: []model.DesignElement{
			{
				ID: "sample-card", Type: model.TypeCard, Name: "ProfileCard",
				X: 16, Y: 16, Width: 343, Height: 280,
				Args: model.Args{BackgroundColor: "#ffffff", BorderRadius: model.Float(12), Padding: model.Float(16)},
				Children: []model.DesignElement{
					{
						ID: "sample-avatar", Type: model.TypeImage, Name: "Avatar",
						X: 32, Y: 32, Width: 64, Height: 64,
						Args: model.Args{Src: "https://via.placeholder.com/64"},
					},
					{
						ID: "sample-title", Type: model.TypeText, Name: "Title",
						X: 112, Y: 40, Width: 200, Height: 24,
						Args: model.Args{Text: "Jane Cooper", FontSize: model.Float(20), FontWeight: "bold", TextColor: "#111827"},
					},
					{
						ID: "sample-subtitle", Type: model.TypeText, Name: "Subtitle",
						X: 112, Y: 68, Width: 200, Height: 20,
						Args: model.Args{Text: "Product Designer", FontSize: model.Float(14), TextColor: "#6b7280"},
					},
					{
						ID: "sample-tags", Type: model.TypeContainer, Name: "Tags",
						X: 32, Y: 112, Width: 311, Height: 32,
						Children: []model.DesignElement{
							{
								ID: "sample-chip", Type: model.TypeCard, Name: "Chip",
								X: 32, Y: 112, Width: 80, Height: 32,
								Args: model.Args{BackgroundColor: "#e5e7eb", BorderRadius: model.Float(16), Padding: model.Float(8)},
								Children: []model.DesignElement{{
									ID: "sample-chip-label", Type: model.TypeText, Name: "ChipLabel",
									X: 40, Y: 118, Width: 64, Height: 20,
									Args: model.Args{Text: "Design", FontSize: model.Float(12)},
								}},
							},
						},
					},
					{
						ID: "sample-action", Type: model.TypeButton, Name: "FollowButton",
						X: 32, Y: 224, Width: 311, Height: 44,
						Args: model.Args{
							Text: "Follow", BackgroundColor: "#3b82f6", TextColor: "#ffffff",
							BorderRadius: model.Float(8), Padding: model.Float(12),
						},
					},
				},
			},
		},
		Suggestions: []string{
			"Set GEMINI_API_KEY to analyze real designs",
		},
	}
}

// Static returns an Analyzer that always answers with result.
func Static(result *model.DesignAnalysisResult) Analyzer {
	return AnalyzerFunc(func(context.Context, *imageinput.Image, string) (*model.DesignAnalysisResult, error) {
		return result, nil
	})
}
