package model

import (
	"encoding/json"
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDesignElement_JSONKeys(t *testing.T) {
	el := DesignElement{
		ID:     "btn1",
		Type:   TypeButton,
		Name:   "Submit",
		X:      10,
		Y:      20,
		Width:  100,
		Height: 30,
		Args:   Args{Text: "Go"},
	}
	data, err := json.Marshal(el)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "type", "name", "x", "y", "width", "height", "args"} {
		if _, ok := m[key]; !ok {
			t.Errorf("expected key %q in JSON output", key)
		}
	}
	if _, ok := m["children"]; ok {
		t.Error("empty children should be omitted")
	}
}

func TestArgs_MarshalOrderAndOmission(t *testing.T) {
	args := Args{
		FontSize:        Float(16),
		BackgroundColor: "#3b82f6",
		Text:            "Go",
		Disabled:        Bool(false),
		Extra:           map[string]any{"zIndex": 2, "elevation": 4},
	}
	data, err := json.Marshal(args)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"backgroundColor":"#3b82f6","fontSize":16,"text":"Go","disabled":false,"elevation":4,"zIndex":2}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestArgs_EmptyMarshalsToObject(t *testing.T) {
	data, err := json.Marshal(Args{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{}" {
		t.Errorf("got %s, want {}", data)
	}
	if !(Args{}).IsEmpty() {
		t.Error("zero Args should be empty")
	}
}

func TestArgs_UnmarshalLenient(t *testing.T) {
	input := `{
		"padding": "12px",
		"fontSize": 18,
		"fontWeight": 600,
		"disabled": "true",
		"borderRadius": null,
		"margin": "12 24",
		"shadow": {"blur": 4}
	}`
	var args Args
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		t.Fatal(err)
	}
	if args.Padding == nil || *args.Padding != 12 {
		t.Errorf("padding: got %v, want 12", args.Padding)
	}
	if args.FontSize == nil || *args.FontSize != 18 {
		t.Errorf("fontSize: got %v, want 18", args.FontSize)
	}
	if args.FontWeight != "600" {
		t.Errorf("fontWeight: got %q, want %q", args.FontWeight, "600")
	}
	if !args.IsDisabled() {
		t.Error("disabled should be true")
	}
	if args.BorderRadius != nil {
		t.Error("null borderRadius should stay unset")
	}
	if args.Margin != nil {
		t.Error("unparseable margin should not populate the typed field")
	}
	if args.Extra["margin"] != "12 24" {
		t.Errorf("unparseable margin should be kept in Extra, got %v", args.Extra["margin"])
	}
	if _, ok := args.Extra["shadow"]; !ok {
		t.Error("unknown key should be kept in Extra")
	}
}

func TestArgs_UnmarshalRejectsNonFinite(t *testing.T) {
	var args Args
	if err := json.Unmarshal([]byte(`{"fontSize": "NaN", "padding": "Inf", "margin": "-Infinity"}`), &args); err != nil {
		t.Fatal(err)
	}
	if args.FontSize != nil || args.Padding != nil || args.Margin != nil {
		t.Errorf("non-finite strings should not populate typed fields: %+v", args)
	}
	if args.Extra["fontSize"] != "NaN" || args.Extra["padding"] != "Inf" {
		t.Errorf("non-finite strings should be kept in Extra, got %v", args.Extra)
	}
	if _, err := json.Marshal(args); err != nil {
		t.Errorf("args should still marshal: %v", err)
	}
}

func TestArgs_MarshalSkipsNonFiniteFields(t *testing.T) {
	nan := math.NaN()
	args := Args{Text: "Hi", FontSize: &nan, Padding: Float(math.Inf(1))}
	data, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"text":"Hi"}` {
		t.Errorf("got %s", data)
	}
}

func TestArgs_JSONRoundTripKeepsExtras(t *testing.T) {
	in := `{"text":"Hi","elevation":4}`
	var args Args
	if err := json.Unmarshal([]byte(in), &args); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(args)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Errorf("got %s, want %s", out, in)
	}
}

func TestArgs_YAML(t *testing.T) {
	input := "text: Hello\nfontSize: 24\nrequired: true\ncustom: x\n"
	var args Args
	if err := yaml.Unmarshal([]byte(input), &args); err != nil {
		t.Fatal(err)
	}
	if args.Text != "Hello" || args.FontSize == nil || *args.FontSize != 24 || !args.IsRequired() {
		t.Errorf("unexpected args: %+v", args)
	}
	if args.Extra["custom"] != "x" {
		t.Errorf("custom: got %v", args.Extra["custom"])
	}

	out, err := yaml.Marshal(args)
	if err != nil {
		t.Fatal(err)
	}
	var back map[string]any
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back["text"] != "Hello" || back["custom"] != "x" {
		t.Errorf("yaml round trip lost keys: %v", back)
	}
}
