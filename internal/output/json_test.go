package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteJSON_Compact(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleInspect(), false); err != nil {
		t.Fatal(err)
	}
	output := buf.String()

	// Compact output should be a single line (plus newline from Encode)
	if strings.Count(output, "\n") != 1 {
		t.Errorf("compact JSON should be a single line, got:\n%s", output)
	}
	var decoded InspectResult
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 1 {
		t.Errorf("count: got %d, want 1", decoded.Count)
	}
}

func TestWriteJSON_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleInspect(), true); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") <= 1 {
		t.Errorf("pretty JSON should be multi-line, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "\n  \"source\"") {
		t.Errorf("pretty JSON should be indented, got:\n%s", buf.String())
	}
}

func TestWriteJSON_NoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, map[string]string{"path": "container > button"}, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "container > button") {
		t.Errorf("should not HTML-escape, got: %s", buf.String())
	}
}
