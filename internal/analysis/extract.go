package analysis

import (
	"strings"

	"github.com/mj1618/uibuilder/internal/errors"
)

// ExtractJSON returns the outermost {...} span of a model reply, skipping
// any prose or code fences around it.
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", errors.Wrap(errors.ErrAnalysisFailed, "no JSON object in model response")
	}
	return text[start : end+1], nil
}
