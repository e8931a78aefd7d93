package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/uibuilder/internal/analysis"
	"github.com/mj1618/uibuilder/internal/generator"
	"github.com/mj1618/uibuilder/internal/imageinput"
	"github.com/mj1618/uibuilder/internal/model"
)

const loginDesign = `[
  {"id": "title", "type": "text", "args": {"text": "Sign in"}},
  {"id": "go", "type": "button", "args": {"text": "Go", "backgroundColor": "#3b82f6"}}
]`

// onePixelPNG is a 1x1 PNG as a data URL.
const onePixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func testServer(t *testing.T, a analysis.Analyzer) *Server {
	t.Helper()
	fixed := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	return New(Options{
		Generator: generator.New(generator.WithClock(func() time.Time { return fixed })),
		Analyzer:  a,
		StoreTTL:  time.Minute,
	})
}

func callTool(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content %T", res.Content[0])
	return ""
}

func TestHandleGenerate(t *testing.T) {
	s := testServer(t, nil)
	res, err := s.handleGenerate(context.Background(), callTool("generate", map[string]any{
		"design":         loginDesign,
		"framework":      "react",
		"component_name": "LoginForm",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	code := resultText(t, res)
	assert.Contains(t, code, "LoginForm")
	assert.Contains(t, code, "Sign in")
}

func TestHandleGenerateErrors(t *testing.T) {
	s := testServer(t, nil)

	res, err := s.handleGenerate(context.Background(), callTool("generate", map[string]any{
		"design": loginDesign, "framework": "vue",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "hint:")

	res, err = s.handleGenerate(context.Background(), callTool("generate", map[string]any{"framework": "react"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleGenerate(context.Background(), callTool("generate", map[string]any{
		"design_id": "missing", "framework": "react",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleGenerateAcceptsDecodedDesign(t *testing.T) {
	var decoded any
	require.NoError(t, json.Unmarshal([]byte(loginDesign), &decoded))

	s := testServer(t, nil)
	res, err := s.handleGenerate(context.Background(), callTool("generate", map[string]any{
		"design": decoded, "framework": "html",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "<!DOCTYPE html>")
}

func TestHandleGenerateAll(t *testing.T) {
	s := testServer(t, nil)
	res, err := s.handleGenerateAll(context.Background(), callTool("generate_all", map[string]any{
		"design": loginDesign, "output_format": "json",
	}))
	require.NoError(t, err)
	text := resultText(t, res)
	for _, fw := range model.Frameworks {
		assert.Contains(t, text, "// ===== "+string(fw)+" (design.json) =====")
	}
}

func TestHandleAnalyzeStoresDesign(t *testing.T) {
	var gotDescription string
	a := analysis.AnalyzerFunc(func(_ context.Context, img *imageinput.Image, d string) (*model.DesignAnalysisResult, error) {
		gotDescription = d
		return &model.DesignAnalysisResult{
			Elements:   []model.DesignElement{{ID: "cta", Type: model.TypeButton, Args: model.Args{Text: "Buy"}}},
			Summary:    "checkout",
			Confidence: 0.9,
		}, nil
	})
	s := testServer(t, a)

	res, err := s.handleAnalyze(context.Background(), callTool("analyze", map[string]any{
		"image": onePixelPNG, "description": "checkout page",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))
	assert.Equal(t, "checkout page", gotDescription)

	var body struct {
		DesignID string `json:"designId"`
		Summary  string `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &body))
	assert.Equal(t, "checkout", body.Summary)
	require.NotEmpty(t, body.DesignID)

	res, err = s.handleGenerate(context.Background(), callTool("generate", map[string]any{
		"design_id": body.DesignID, "framework": "flutter",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "ElevatedButton")
}

func TestHandleAnalyzeErrors(t *testing.T) {
	s := testServer(t, nil)
	res, err := s.handleAnalyze(context.Background(), callTool("analyze", map[string]any{"image": onePixelPNG}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "not configured")

	s = testServer(t, analysis.Static(analysis.SampleResult()))
	res, err = s.handleAnalyze(context.Background(), callTool("analyze", map[string]any{"image": "/etc/passwd"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = s.handleAnalyze(context.Background(), callTool("analyze", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleInspect(t *testing.T) {
	s := testServer(t, nil)
	res, err := s.handleInspect(context.Background(), callTool("inspect", map[string]any{
		"design": loginDesign, "types": []any{"button"},
	}))
	require.NoError(t, err)
	text := resultText(t, res)
	assert.Contains(t, text, "count: 1")
	assert.Contains(t, text, "id: go")
	assert.NotContains(t, text, "id: title")
}

func TestHandleTailwindClassesAndFrameworks(t *testing.T) {
	s := testServer(t, nil)
	res, err := s.handleTailwindClasses(context.Background(), callTool("tailwind_classes", map[string]any{"design": loginDesign}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), "bg-blue-500")

	res, err = s.handleFrameworks(context.Background(), callTool("frameworks", nil))
	require.NoError(t, err)
	text := resultText(t, res)
	assert.Equal(t, 4, strings.Count(text, "framework:"))
}
