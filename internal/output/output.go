package output

import (
	"io"
	"os"
	"strings"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/generator"
	"github.com/mj1618/uibuilder/internal/model"
)

// Format represents the output format for structured results.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Stdout is where Print writes. Tests replace it.
var Stdout io.Writer = os.Stdout

// InspectResult is the top-level output of the `inspect` command.
type InspectResult struct {
	Source   string              `yaml:"source,omitempty" json:"source,omitempty"`
	Count    int                 `yaml:"count"            json:"count"`
	Depth    int                 `yaml:"depth"            json:"depth"`
	Unknown  []string            `yaml:"unknown,omitempty" json:"unknown,omitempty"`
	Elements []model.FlatElement `yaml:"elements"         json:"elements"`
}

// ClassesResult lists the Tailwind classes computed for each element.
type ClassesResult struct {
	Source   string           `yaml:"source,omitempty" json:"source,omitempty"`
	Elements []ElementClasses `yaml:"elements"        json:"elements"`
}

// ElementClasses is one row of ClassesResult.
type ElementClasses struct {
	ID      string            `yaml:"id"      json:"id"`
	Type    model.ElementType `yaml:"type"    json:"type"`
	Path    string            `yaml:"path"    json:"path"`
	Tag     string            `yaml:"tag"     json:"tag"`
	Classes string            `yaml:"classes" json:"classes"`
}

// NewClassesResult computes the Tailwind classes of every element in the
// tree, in document order.
func NewClassesResult(source string, elements []model.DesignElement) ClassesResult {
	res := ClassesResult{Source: source, Elements: []ElementClasses{}}
	flat := model.FlattenElements(elements)
	i := 0
	model.Walk(elements, func(el *model.DesignElement, _ int) bool {
		res.Elements = append(res.Elements, ElementClasses{
			ID:      el.ID,
			Type:    el.Type,
			Path:    flat[i].Path,
			Tag:     generator.TemplateTag(el.Type),
			Classes: strings.Join(generator.ClassNames(*el), " "),
		})
		i++
		return true
	})
	return res
}

// FrameworkInfo describes one generation target.
type FrameworkInfo struct {
	Framework model.Framework `yaml:"framework" json:"framework"`
	Language  string          `yaml:"language"  json:"language"`
	File      string          `yaml:"file"      json:"file"`
	JSONShape string          `yaml:"jsonShape" json:"jsonShape"`
}

// Frameworks lists every supported target in generation order.
func Frameworks() []FrameworkInfo {
	out := make([]FrameworkInfo, 0, len(model.Frameworks))
	for _, fw := range model.Frameworks {
		lang := model.Language(fw, model.FormatCode)
		shape := model.InterchangeTypeDesign
		if fw == model.FrameworkAngular {
			shape = model.InterchangeTypeTemplate
		}
		out = append(out, FrameworkInfo{
			Framework: fw,
			Language:  lang,
			File:      model.GeneratedCode{Format: model.FormatCode, Language: lang}.FileName(),
			JSONShape: shape,
		})
	}
	return out
}

// DiffResult is the output of the `diff` command.
type DiffResult struct {
	Old     string               `yaml:"old"               json:"old"`
	New     string               `yaml:"new"               json:"new"`
	Changes []model.DesignChange `yaml:"changes,omitempty" json:"changes,omitempty"`
}

// Print serializes v to Stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(Stdout, v)
}

// Fprint serializes v to w in the current output format.
func Fprint(w io.Writer, v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return WriteJSON(w, v, PrettyOutput)
	case FormatYAML:
		return WriteYAML(w, v)
	default:
		return errors.Newf("unsupported output format: %s", OutputFormat)
	}
}
