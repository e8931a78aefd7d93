package model

import (
	"bytes"
	"encoding/json"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/uibuilder/internal/errors"
)

// SupportedInterchangeVersions is the semver constraint an imported
// interchange document must satisfy.
const SupportedInterchangeVersions = "^1.0.0"

// DecodeDocument reads a design from JSON or YAML. Accepted shapes:
//   - an array of elements
//   - a single element object
//   - an analysis result ({elements, summary, confidence})
//   - an exported interchange document ({version, type: "ui-design", elements})
func DecodeDocument(data []byte) ([]DesignElement, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidDocument, "empty input")
	}
	if data[0] != '[' && data[0] != '{' {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "parse yaml"), errors.ErrInvalidDocument)
		}
		data = converted
	}

	if data[0] == '[' {
		var elements []DesignElement
		if err := json.Unmarshal(data, &elements); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "decode element list"), errors.ErrInvalidDocument)
		}
		return elements, nil
	}

	var probe struct {
		Version  string          `json:"version"`
		Type     string          `json:"type"`
		ID       string          `json:"id"`
		Elements json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode document"), errors.ErrInvalidDocument)
	}

	switch {
	case probe.Type == InterchangeTypeDesign:
		if err := checkInterchangeVersion(probe.Version); err != nil {
			return nil, err
		}
		var doc InterchangeDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "decode interchange document"), errors.ErrInvalidDocument)
		}
		return FromInterchange(doc.Elements), nil
	case probe.Type == InterchangeTypeTemplate:
		return nil, errors.WithHint(
			errors.Wrap(errors.ErrInvalidDocument, "angular template documents cannot be imported"),
			"export the design with a react, flutter or html JSON target instead")
	case probe.Elements != nil:
		var result DesignAnalysisResult
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "decode analysis result"), errors.ErrInvalidDocument)
		}
		return result.Elements, nil
	case probe.ID != "" || probe.Type != "":
		var el DesignElement
		if err := json.Unmarshal(data, &el); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "decode element"), errors.ErrInvalidDocument)
		}
		return []DesignElement{el}, nil
	}
	return nil, errors.WithHint(
		errors.Wrap(errors.ErrInvalidDocument, "unrecognized document shape"),
		"expected an element array, an analysis result or a ui-design export")
}

func checkInterchangeVersion(v string) error {
	version, err := semver.NewVersion(v)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "interchange version %q", v), errors.ErrInvalidDocument)
	}
	constraint, err := semver.NewConstraint(SupportedInterchangeVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrInvalidDocument, "interchange version %s not supported", v),
			"this build reads versions %s", SupportedInterchangeVersions)
	}
	return nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.New("document is empty")
	}
	return json.Marshal(v)
}
