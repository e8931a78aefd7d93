package output

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/uibuilder/internal/model"
)

func sampleInspect() InspectResult {
	return InspectResult{
		Source: "login.json",
		Count:  1,
		Depth:  1,
		Elements: []model.FlatElement{
			{ID: "btn", Type: model.TypeButton, Bounds: [4]float64{10, 20, 100, 30}, Depth: 1, Path: "button"},
		},
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, sampleInspect()); err != nil {
		t.Fatal(err)
	}
	output := buf.String()

	// YAML output should be multi-line
	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", output)
	}

	var decoded InspectResult
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Source != "login.json" {
		t.Errorf("source: got %q, want %q", decoded.Source, "login.json")
	}
	if len(decoded.Elements) != 1 || decoded.Elements[0].Path != "button" {
		t.Errorf("elements: got %+v", decoded.Elements)
	}
}

func TestInspectResult_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(InspectResult{Elements: []model.FlatElement{}})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["source"]; ok {
		t.Error("empty source should be omitted")
	}
	if _, ok := m["unknown"]; ok {
		t.Error("empty unknown list should be omitted")
	}
	if _, ok := m["count"]; !ok {
		t.Error("count should always be present")
	}
}

func TestFprint_FollowsFormat(t *testing.T) {
	defer func(f Format, p bool) { OutputFormat, PrettyOutput = f, p }(OutputFormat, PrettyOutput)

	OutputFormat = FormatJSON
	PrettyOutput = false
	var buf bytes.Buffer
	if err := Fprint(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{\"a\":1}\n" {
		t.Errorf("got %q", buf.String())
	}

	OutputFormat = FormatYAML
	buf.Reset()
	if err := Fprint(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a: 1\n" {
		t.Errorf("got %q", buf.String())
	}

	OutputFormat = "xml"
	if err := Fprint(&buf, 1); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestNewClassesResult(t *testing.T) {
	elements := []model.DesignElement{{
		ID: "card", Type: model.TypeCard,
		Children: []model.DesignElement{
			{ID: "go", Type: model.TypeButton, Args: model.Args{Text: "Go"}},
		},
	}}
	res := NewClassesResult("design.json", elements)
	if len(res.Elements) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Elements))
	}

	card, btn := res.Elements[0], res.Elements[1]
	if card.Path != "card" || card.Tag != "div" || !strings.Contains(card.Classes, "shadow-md") {
		t.Errorf("card row: %+v", card)
	}
	if btn.Path != "card > button" || btn.Tag != "button" || !strings.Contains(btn.Classes, "bg-blue-500") {
		t.Errorf("button row: %+v", btn)
	}
}

func TestFrameworks(t *testing.T) {
	got := Frameworks()
	want := []FrameworkInfo{
		{Framework: model.FrameworkReact, Language: "jsx", File: "component.tsx", JSONShape: "ui-design"},
		{Framework: model.FrameworkAngular, Language: "html", File: "component.html", JSONShape: "angular-template"},
		{Framework: model.FrameworkFlutter, Language: "dart", File: "component.dart", JSONShape: "ui-design"},
		{Framework: model.FrameworkHTML, Language: "html", File: "component.html", JSONShape: "ui-design"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d frameworks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
