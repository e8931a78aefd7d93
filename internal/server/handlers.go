package server

import (
	"bytes"
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/imageinput"
	"github.com/mj1618/uibuilder/internal/model"
	"github.com/mj1618/uibuilder/internal/output"
)

// toolError renders err and its hints as a tool error result.
func toolError(err error) *mcp.CallToolResult {
	msg := err.Error()
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		msg += "\nhint: " + strings.Join(hints, "\nhint: ")
	}
	return mcp.NewToolResultError(msg)
}

// yamlText serializes v to YAML for a tool response.
func yamlText(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return toolError(errors.Wrap(err, "encode result")), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// design resolves the design_id or design argument.
func (s *Server) design(params map[string]interface{}) ([]model.DesignElement, error) {
	if id := stringParam(params, "design_id", ""); id != "" {
		elements, ok := s.store.Get(id)
		if !ok {
			return nil, errors.WithHint(
				errors.Newf("design %q not found", id),
				"designs expire; run analyze again or pass the design itself")
		}
		return elements, nil
	}
	return decodeDesignParam(params["design"])
}

func (s *Server) handleGenerate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	elements, err := s.design(params)
	if err != nil {
		return toolError(err), nil
	}
	gc, err := s.gen.Generate(elements, model.CodeGenerationOptions{
		Framework:     model.Framework(stringParam(params, "framework", "")),
		OutputFormat:  model.OutputFormat(stringParam(params, "output_format", "")),
		ComponentName: stringParam(params, "component_name", ""),
	})
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(gc.Code), nil
}

func (s *Server) handleGenerateAll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	elements, err := s.design(params)
	if err != nil {
		return toolError(err), nil
	}
	results, err := s.gen.GenerateAll(ctx, elements,
		model.OutputFormat(stringParam(params, "output_format", "")),
		stringParam(params, "component_name", ""))
	if err != nil {
		return toolError(err), nil
	}
	var buf bytes.Buffer
	if err := output.WriteAllTo(&buf, results); err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// analyzeResponse is an analysis result plus the id it was stored under.
type analyzeResponse struct {
	DesignID string `json:"designId,omitempty"`
	*model.DesignAnalysisResult
}

// analyze loads the image, runs the analyzer and stores the result.
func (s *Server) analyze(ctx context.Context, ref, description string) (*analyzeResponse, error) {
	if s.analyzer == nil {
		return nil, errors.WithHint(
			errors.Wrap(errors.ErrNotConfigured, "gemini api key not configured"),
			"set GEMINI_API_KEY, or enable analysis.fallback")
	}
	img, err := imageinput.LoadRemote(ctx, ref)
	if err != nil {
		return nil, errors.Mark(err, errors.ErrInvalidDocument)
	}
	res, err := s.analyzer.Analyze(ctx, img, description)
	if err != nil {
		return nil, err
	}
	return &analyzeResponse{DesignID: s.store.Put(res.Elements), DesignAnalysisResult: res}, nil
}

func (s *Server) handleAnalyze(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	ref := stringParam(params, "image", "")
	if ref == "" {
		return mcp.NewToolResultError("image is required"), nil
	}
	resp, err := s.analyze(ctx, ref, stringParam(params, "description", ""))
	if err != nil {
		return toolError(err), nil
	}
	var buf bytes.Buffer
	if err := output.WriteJSON(&buf, resp, true); err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleInspect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	elements, err := s.design(params)
	if err != nil {
		return toolError(err), nil
	}
	if types := stringListParam(params, "types"); len(types) > 0 {
		ets := make([]model.ElementType, len(types))
		for i, t := range types {
			ets[i] = model.ElementType(strings.ToLower(t))
		}
		elements = model.FilterElements(elements, ets)
	}
	if text := stringParam(params, "text", ""); text != "" {
		elements = model.FilterByText(elements, text)
	}
	return yamlText(output.InspectResult{
		Count:    model.Count(elements),
		Depth:    model.Depth(elements),
		Unknown:  model.UnknownTypes(elements),
		Elements: model.FlattenElements(elements),
	})
}

func (s *Server) handleTailwindClasses(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	elements, err := s.design(request.GetArguments())
	if err != nil {
		return toolError(err), nil
	}
	return yamlText(output.NewClassesResult("", elements))
}

func (s *Server) handleFrameworks(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return yamlText(output.Frameworks())
}
