package analysis

import (
	"context"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/imageinput"
	"github.com/mj1618/uibuilder/internal/model"
)

// contentGenerator is the part of *genai.Models the analyzer calls.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAnalyzer sends the design image and prompt to a Gemini model and
// normalizes the JSON it returns. Rate limiting, caching and logging are
// applied by middleware.
type GeminiAnalyzer struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// NewGeminiAnalyzer creates a Gemini API client for the given key.
func NewGeminiAnalyzer(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*GeminiAnalyzer, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}
	return newGeminiAnalyzer(cli.Models, modelName, timeout), nil
}

func newGeminiAnalyzer(models contentGenerator, modelName string, timeout time.Duration) *GeminiAnalyzer {
	return &GeminiAnalyzer{models: models, model: modelName, timeout: timeout}
}

// Name implements Analyzer.
func (g *GeminiAnalyzer) Name() string { return "gemini:" + g.model }

// Analyze implements Analyzer.
func (g *GeminiAnalyzer) Analyze(ctx context.Context, img *imageinput.Image, description string) (*model.DesignAnalysisResult, error) {
	if img == nil || len(img.Data) == 0 {
		return nil, errors.Wrap(errors.ErrAnalysisFailed, "no image data")
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	parts := []*genai.Part{
		{Text: BuildPrompt(description)},
		{InlineData: &genai.Blob{Data: img.Data, MIMEType: img.MIMEType}},
	}
	resp, err := g.models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Role: "user", Parts: parts}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "gemini %s", g.model), errors.ErrAnalysisFailed)
	}

	text := responseText(resp)
	if text == "" {
		return nil, errors.Wrap(errors.ErrAnalysisFailed, "empty model response")
	}
	body, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	return Normalize([]byte(body))
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}
