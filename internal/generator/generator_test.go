package generator

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/model"
)

var fixedTime = time.Date(2024, 3, 1, 12, 30, 45, 123000000, time.UTC)

func fixedGenerator() *Generator {
	return New(WithClock(func() time.Time { return fixedTime }))
}

func loginForm() []model.DesignElement {
	return []model.DesignElement{
		{ID: "title", Type: model.TypeText, Name: "Title", Args: model.Args{Text: "Sign in", FontSize: model.Float(28), FontWeight: "bold"}},
		{
			ID: "form", Type: model.TypeCard, Name: "Form", Width: 320, Height: 200,
			Args: model.Args{BackgroundColor: "#ffffff", Padding: model.Float(16), BorderRadius: model.Float(8)},
			Children: []model.DesignElement{
				{ID: "email", Type: model.TypeInput, Name: "Email", Args: model.Args{Placeholder: "Email", Type: "email"}},
				{ID: "submit", Type: model.TypeButton, Name: "Submit", Args: model.Args{Text: "Go", BackgroundColor: "#3b82f6"}},
			},
		},
		{ID: "logo", Type: model.TypeImage, Name: "Logo", Width: 64, Height: 64, Args: model.Args{Src: "https://example.com/logo.png"}},
	}
}

func TestGenerate_Coverage(t *testing.T) {
	want := map[model.Framework]string{
		model.FrameworkReact:   model.LanguageJSX,
		model.FrameworkAngular: model.LanguageHTML,
		model.FrameworkFlutter: model.LanguageDart,
		model.FrameworkHTML:    model.LanguageHTML,
	}
	g := fixedGenerator()
	for _, fw := range model.Frameworks {
		for _, format := range []model.OutputFormat{model.FormatJSON, model.FormatCode} {
			t.Run(string(fw)+"/"+string(format), func(t *testing.T) {
				gc, err := g.Generate(loginForm(), model.CodeGenerationOptions{Framework: fw, OutputFormat: format})
				require.NoError(t, err)
				assert.Equal(t, fw, gc.Framework)
				assert.Equal(t, format, gc.Format)
				if format == model.FormatJSON {
					assert.Equal(t, model.LanguageJSON, gc.Language)
					assert.True(t, json.Valid([]byte(gc.Code)), "output should be valid JSON")
				} else {
					assert.Equal(t, want[fw], gc.Language)
				}
				assert.NotEmpty(t, gc.Code)
			})
		}
	}
}

func TestGenerate_EmptyFormatMeansCode(t *testing.T) {
	gc, err := fixedGenerator().Generate(loginForm(), model.CodeGenerationOptions{Framework: model.FrameworkReact})
	require.NoError(t, err)
	assert.Equal(t, model.FormatCode, gc.Format)
	assert.Equal(t, model.LanguageJSX, gc.Language)
}

func TestGenerate_UnsupportedFramework(t *testing.T) {
	gc, err := Generate(loginForm(), model.CodeGenerationOptions{Framework: "vue", OutputFormat: model.FormatCode})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedFramework))
	assert.Contains(t, err.Error(), "vue")
	assert.Empty(t, gc.Code)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	_, err := Generate(loginForm(), model.CodeGenerationOptions{Framework: model.FrameworkHTML, OutputFormat: "pdf"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedFormat))
}

func TestGenerate_TooDeep(t *testing.T) {
	el := model.DesignElement{ID: "leaf", Type: model.TypeText}
	for i := 0; i < model.MaxDepth; i++ {
		el = model.DesignElement{ID: "c", Type: model.TypeContainer, Children: []model.DesignElement{el}}
	}
	for _, format := range []model.OutputFormat{model.FormatJSON, model.FormatCode} {
		gc, err := Generate([]model.DesignElement{el}, model.CodeGenerationOptions{Framework: model.FrameworkReact, OutputFormat: format})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrTreeTooDeep))
		assert.Empty(t, gc.Code)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := fixedGenerator()
	for _, fw := range model.Frameworks {
		for _, format := range []model.OutputFormat{model.FormatJSON, model.FormatCode} {
			opts := model.CodeGenerationOptions{Framework: fw, OutputFormat: format, ComponentName: "Login"}
			a, err := g.Generate(loginForm(), opts)
			require.NoError(t, err)
			b, err := g.Generate(loginForm(), opts)
			require.NoError(t, err)
			assert.Equal(t, a, b, "%s/%s", fw, format)
		}
	}
}

func TestGenerate_WallClockDiffersOnlyInTimestamp(t *testing.T) {
	calls := 0
	g := New(WithClock(func() time.Time {
		calls++
		return fixedTime.Add(time.Duration(calls) * time.Second)
	}))
	opts := model.CodeGenerationOptions{Framework: model.FrameworkFlutter, OutputFormat: model.FormatJSON}
	a, err := g.Generate(loginForm(), opts)
	require.NoError(t, err)
	b, err := g.Generate(loginForm(), opts)
	require.NoError(t, err)
	assert.NotEqual(t, a.Code, b.Code)

	strip := func(code string) map[string]any {
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(code), &doc))
		delete(doc["metadata"].(map[string]any), "exportedAt")
		return doc
	}
	assert.Equal(t, strip(a.Code), strip(b.Code))
}

func TestGenerate_DefaultComponentNames(t *testing.T) {
	react, err := Generate(nil, model.CodeGenerationOptions{Framework: model.FrameworkReact})
	require.NoError(t, err)
	assert.Contains(t, react.Code, "export const UIComponent: React.FC<Props>")

	flutter, err := Generate(nil, model.CodeGenerationOptions{Framework: model.FrameworkFlutter})
	require.NoError(t, err)
	assert.Contains(t, flutter.Code, "class UIWidget extends StatelessWidget")
}

func TestGenerate_ComponentNameWithSpaces(t *testing.T) {
	g := fixedGenerator()
	for _, fw := range model.Frameworks {
		gc, err := g.Generate(loginForm(), model.CodeGenerationOptions{Framework: fw, ComponentName: "login form"})
		require.NoError(t, err, fw)
		assert.NotContains(t, gc.Code, "login form", fw)
	}

	react, err := g.Generate(nil, model.CodeGenerationOptions{Framework: model.FrameworkReact, ComponentName: "login form"})
	require.NoError(t, err)
	assert.Contains(t, react.Code, "export const LoginForm: React.FC<Props>")

	flutter, err := g.Generate(nil, model.CodeGenerationOptions{Framework: model.FrameworkFlutter, ComponentName: "login-form"})
	require.NoError(t, err)
	assert.Contains(t, flutter.Code, "class LoginForm extends StatelessWidget")

	angular, err := g.Generate(nil, model.CodeGenerationOptions{Framework: model.FrameworkAngular, ComponentName: "login form"})
	require.NoError(t, err)
	assert.Contains(t, angular.Code, "selector: 'app-loginform'")
	assert.Contains(t, angular.Code, "export class LoginFormComponent")
}

func TestGenerate_NonFiniteArgsIgnored(t *testing.T) {
	elements, err := model.DecodeDocument([]byte(
		`[{"id":"a","type":"text","args":{"text":"Hi","fontSize":"NaN","padding":"Inf"}}]`))
	require.NoError(t, err)

	g := fixedGenerator()
	for _, fw := range model.Frameworks {
		for _, format := range []model.OutputFormat{model.FormatCode, model.FormatJSON} {
			gc, err := g.Generate(elements, model.CodeGenerationOptions{Framework: fw, OutputFormat: format})
			require.NoError(t, err, "%s/%s", fw, format)
			if format == model.FormatCode {
				assert.NotContains(t, gc.Code, "NaN", "%s/%s", fw, format)
				assert.NotContains(t, gc.Code, "Inf", "%s/%s", fw, format)
			}
		}
	}

	nan := math.NaN()
	direct := []model.DesignElement{{ID: "b", Type: model.TypeButton, Args: model.Args{Text: "Go", FontSize: &nan}}}
	gc, err := g.Generate(direct, model.CodeGenerationOptions{Framework: model.FrameworkHTML})
	require.NoError(t, err)
	assert.NotContains(t, gc.Code, "NaN")
}

func TestGenerate_ChildOrderPreserved(t *testing.T) {
	tree := []model.DesignElement{{
		ID: "box", Type: model.TypeContainer,
		Children: []model.DesignElement{
			{ID: "a", Type: model.TypeText, Args: model.Args{Text: "Alpha"}},
			{ID: "b", Type: model.TypeText, Args: model.Args{Text: "Bravo"}},
			{ID: "c", Type: model.TypeText, Args: model.Args{Text: "Charlie"}},
		},
	}}
	for _, fw := range model.Frameworks {
		gc, err := Generate(tree, model.CodeGenerationOptions{Framework: fw, OutputFormat: model.FormatCode})
		require.NoError(t, err)
		ia := strings.Index(gc.Code, "Alpha")
		ib := strings.Index(gc.Code, "Bravo")
		ic := strings.Index(gc.Code, "Charlie")
		require.True(t, ia >= 0 && ib >= 0 && ic >= 0, "%s output missing children:\n%s", fw, gc.Code)
		assert.True(t, ia < ib && ib < ic, "%s output reorders children:\n%s", fw, gc.Code)
	}
}

func TestGenerate_NoStyleArtifactsForEmptyArgs(t *testing.T) {
	tree := []model.DesignElement{
		{ID: "b", Type: model.TypeButton},
		{ID: "i", Type: model.TypeInput},
		{ID: "t", Type: model.TypeText},
		{ID: "img", Type: model.TypeImage},
		{ID: "c", Type: model.TypeContainer, Children: []model.DesignElement{{ID: "x", Type: model.TypeCard}}},
		{ID: "l", Type: model.TypeList},
	}
	for _, fw := range model.Frameworks {
		gc, err := Generate(tree, model.CodeGenerationOptions{Framework: fw, OutputFormat: model.FormatCode})
		require.NoError(t, err)
		for _, artifact := range []string{`style=""`, "style={{}}", "style={{  }}", "style: ,", "TextStyle()", "BoxDecoration()", "styleFrom()"} {
			assert.NotContains(t, gc.Code, artifact, "%s output", fw)
		}
	}
}

func TestGenerateAll(t *testing.T) {
	results, err := fixedGenerator().GenerateAll(context.Background(), loginForm(), model.FormatCode, "Login")
	require.NoError(t, err)
	require.Len(t, results, len(model.Frameworks))
	for i, fw := range model.Frameworks {
		assert.Equal(t, fw, results[i].Framework)
		assert.Equal(t, model.FormatCode, results[i].Format)
	}
}

func TestGenerateAll_PropagatesErrors(t *testing.T) {
	_, err := GenerateAll(context.Background(), loginForm(), "pdf", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedFormat))
}
