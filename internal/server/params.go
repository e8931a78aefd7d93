package server

import (
	"encoding/json"
	"strings"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/model"
)

// stringParam reads a string tool argument.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// boolParam reads a boolean tool argument.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}

// stringListParam reads an array of strings, or a comma-separated string.
func stringListParam(params map[string]interface{}, key string) []string {
	var out []string
	switch v := params[key].(type) {
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// decodeDesignParam decodes a design passed either as document text (JSON
// or YAML) or as an already-decoded JSON value.
func decodeDesignParam(v interface{}) ([]model.DesignElement, error) {
	switch d := v.(type) {
	case nil:
		return nil, errors.Wrap(errors.ErrInvalidDocument, "design is required")
	case string:
		return model.DecodeDocument([]byte(d))
	default:
		data, err := json.Marshal(d)
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "encode design argument"), errors.ErrInvalidDocument)
		}
		return model.DecodeDocument(data)
	}
}
