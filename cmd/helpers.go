package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/model"
)

// readInput reads a document from path, or from stdin when path is empty
// or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}

// designFlags shape the tree before it is used.
type designFlags struct {
	selector string
	types    []model.ElementType
	text     string
	prune    bool
}

// addDesignFlags registers the tree-shaping flags shared by generate and inspect.
func addDesignFlags(cmd *cobra.Command) {
	cmd.Flags().String("select", "", "JSONPath selecting a subtree, e.g. \"$[0].children[1]\" or \"$..[?(@.type=='card')]\"")
	cmd.Flags().String("types", "", "Comma-separated element types to keep (e.g. \"button,input\")")
	cmd.Flags().String("text", "", "Only keep elements whose text, placeholder or name contains this")
	cmd.Flags().Bool("prune", false, "Drop empty containers and unwrap single-child ones")
}

func getDesignFlags(cmd *cobra.Command) (designFlags, error) {
	var f designFlags
	f.selector, _ = cmd.Flags().GetString("select")
	f.text, _ = cmd.Flags().GetString("text")
	f.prune, _ = cmd.Flags().GetBool("prune")
	typesStr, _ := cmd.Flags().GetString("types")
	types, err := parseTypes(typesStr)
	if err != nil {
		return f, err
	}
	f.types = types
	return f, nil
}

// loadDesign reads and decodes a design document, then applies f.
func loadDesign(cmd *cobra.Command, path string, f designFlags) ([]model.DesignElement, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	elements, err := model.DecodeDocument(data)
	if err != nil {
		if path != "" && path != "-" {
			return nil, errors.Wrapf(err, "%s", path)
		}
		return nil, err
	}
	return shapeDesign(elements, f)
}

func shapeDesign(elements []model.DesignElement, f designFlags) ([]model.DesignElement, error) {
	if f.selector != "" {
		selected, err := selectElements(elements, f.selector)
		if err != nil {
			return nil, err
		}
		elements = selected
	}
	if len(f.types) > 0 {
		elements = model.FilterElements(elements, f.types)
	}
	if f.text != "" {
		elements = model.FilterByText(elements, f.text)
	}
	if f.prune {
		elements = model.PruneEmptyContainers(elements)
	}
	return elements, nil
}

// selectElements evaluates a JSONPath expression against the element tree
// (as its JSON array form) and returns the matched elements. Matches that
// are arrays contribute each of their items.
func selectElements(elements []model.DesignElement, expr string) ([]model.DesignElement, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "invalid jsonpath %q", expr),
			"paths address the element array, e.g. $[0].children[0]")
	}
	data, err := json.Marshal(elements)
	if err != nil {
		return nil, errors.Wrap(err, "encode elements")
	}
	root, err := oj.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse elements")
	}

	var matched []interface{}
	for _, r := range x.Get(root) {
		switch v := r.(type) {
		case map[string]interface{}:
			matched = append(matched, v)
		case []interface{}:
			for _, item := range v {
				if m, ok := item.(map[string]interface{}); ok {
					matched = append(matched, m)
				}
			}
		}
	}
	if len(matched) == 0 {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidDocument, "jsonpath %q matched no elements", expr),
			"inspect the document to see element positions")
	}

	out, err := json.Marshal(matched)
	if err != nil {
		return nil, errors.Wrap(err, "encode selection")
	}
	var selected []model.DesignElement
	if err := json.Unmarshal(out, &selected); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode selection"), errors.ErrInvalidDocument)
	}
	return selected, nil
}

// parseTypes parses a comma-separated list of element types. Aliases such
// as "textfield" are accepted; anything that maps to no known type is an
// error.
func parseTypes(s string) ([]model.ElementType, error) {
	var out []model.ElementType
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		t := model.ElementType(part)
		if !t.Known() {
			key := strings.NewReplacer("-", "", "_", "").Replace(part)
			alias, ok := model.TypeAliases[key]
			if !ok {
				return nil, errors.WithHintf(
					errors.Newf("unknown element type %q", part),
					"known types: %s", joinTypes(model.ElementTypes))
			}
			t = alias
		}
		out = append(out, t)
	}
	return out, nil
}

func joinTypes(types []model.ElementType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
