package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/uibuilder/internal/model"
)

func TestHTML_EmptyTree(t *testing.T) {
	gc, err := Generate(nil, model.CodeGenerationOptions{Framework: model.FrameworkHTML, OutputFormat: model.FormatCode})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gc.Code, "<!DOCTYPE html>\n<html lang=\"en\">"))
	assert.True(t, strings.HasSuffix(gc.Code, "<body>\n  <div class=\"ui-container\">\n  </div>\n</body>\n</html>"))
	assert.Contains(t, gc.Code, "<title>Generated UI</title>")
}

func TestHTML_Body(t *testing.T) {
	tree := []model.DesignElement{{
		ID: "c", Type: model.TypeContainer, Args: model.Args{BackgroundColor: "#f3f4f6", Padding: model.Float(24)},
		Children: []model.DesignElement{
			{ID: "i", Type: model.TypeInput, Args: model.Args{Placeholder: "Name"}},
			{ID: "t", Type: model.TypeText, Args: model.Args{Text: "Fish & Chips", TextColor: "#111827"}},
		},
	}}
	gc, err := Generate(tree, model.CodeGenerationOptions{Framework: model.FrameworkHTML, OutputFormat: model.FormatCode})
	require.NoError(t, err)

	want := `  <div class="ui-container">
    <div style="background-color: #f3f4f6; padding: 24px">
      <input type="text" placeholder="Name" />
      <p style="color: #111827">Fish &amp; Chips</p>
    </div>
  </div>
</body>
</html>`
	assert.True(t, strings.HasSuffix(gc.Code, want), "got:\n%s", gc.Code)
}

func TestHTML_Elements(t *testing.T) {
	tests := []struct {
		name string
		el   model.DesignElement
		want string
	}{
		{"button", model.DesignElement{Type: model.TypeButton, Args: model.Args{Text: "OK", BorderRadius: model.Float(4)}},
			`<button style="border-radius: 4px">OK</button>`},
		{"image", model.DesignElement{Type: model.TypeImage, Name: "Hero", Args: model.Args{Src: "h.jpg", Margin: model.Float(8)}},
			`<img src="h.jpg" alt="Hero" style="margin: 8px" />`},
		{"password input", model.DesignElement{Type: model.TypeInput, Args: model.Args{Type: "password", Disabled: model.Bool(true)}},
			`<input type="password" disabled />`},
		{"card", model.DesignElement{Type: model.TypeCard}, "<div></div>"},
		{"unknown", model.DesignElement{Type: "video"}, "<div>video element</div>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := newLines("  ")
			htmlEmitter{}.element(out, tt.el, 0)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
