package model

import "strings"

// Framework is a code generation target.
type Framework string

const (
	FrameworkReact   Framework = "react"
	FrameworkAngular Framework = "angular"
	FrameworkFlutter Framework = "flutter"
	FrameworkHTML    Framework = "html"
)

// Frameworks lists every supported target in a fixed order.
var Frameworks = []Framework{FrameworkReact, FrameworkAngular, FrameworkFlutter, FrameworkHTML}

// Known reports whether f is a supported framework.
func (f Framework) Known() bool {
	switch f {
	case FrameworkReact, FrameworkAngular, FrameworkFlutter, FrameworkHTML:
		return true
	}
	return false
}

// OutputFormat selects between interchange JSON and framework source code.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatCode OutputFormat = "code"
)

// Language tags for generated output.
const (
	LanguageJSON = "json"
	LanguageJSX  = "jsx"
	LanguageHTML = "html"
	LanguageDart = "dart"
)

// Language returns the output language for a framework and format pair.
// Unknown frameworks yield an empty string.
func Language(f Framework, format OutputFormat) string {
	if format == FormatJSON {
		return LanguageJSON
	}
	switch f {
	case FrameworkReact:
		return LanguageJSX
	case FrameworkAngular:
		return LanguageHTML
	case FrameworkFlutter:
		return LanguageDart
	case FrameworkHTML:
		return LanguageHTML
	}
	return ""
}

// CodeGenerationOptions is a generation request.
type CodeGenerationOptions struct {
	Framework     Framework    `json:"framework"               yaml:"framework"               validate:"required,oneof=react angular flutter html"`
	OutputFormat  OutputFormat `json:"outputFormat"            yaml:"outputFormat"            validate:"omitempty,oneof=json code"`
	ComponentName string       `json:"componentName,omitempty" yaml:"componentName,omitempty" validate:"omitempty,max=128"`
}

// Default component names used when the request does not name one.
const (
	DefaultComponentName = "UIComponent"
	DefaultWidgetName    = "UIWidget"
)

// Name returns the component name, falling back to the framework default.
// Names that are not identifiers ("login form") are converted with
// Identifier.
func (o CodeGenerationOptions) Name() string {
	name := strings.TrimSpace(o.ComponentName)
	if name != "" && !IsIdentifier(name) {
		name = Identifier(name)
	}
	if name != "" {
		return name
	}
	if o.Framework == FrameworkFlutter {
		return DefaultWidgetName
	}
	return DefaultComponentName
}

// Format returns the output format, treating empty as code.
func (o CodeGenerationOptions) Format() OutputFormat {
	if o.OutputFormat == "" {
		return FormatCode
	}
	return o.OutputFormat
}

// GeneratedCode is the result of one generation call. It is built once and
// never mutated.
type GeneratedCode struct {
	Code      string       `json:"code"      yaml:"code"`
	Format    OutputFormat `json:"format"    yaml:"format"`
	Framework Framework    `json:"framework" yaml:"framework"`
	Language  string       `json:"language"  yaml:"language"`
}

// Extension is the file extension used when saving the output. JSX output is
// saved as TypeScript React.
func (g GeneratedCode) Extension() string {
	if g.Language == LanguageJSX {
		return "tsx"
	}
	return g.Language
}

// FileName is the default download name for the output.
func (g GeneratedCode) FileName() string {
	if g.Format == FormatJSON {
		return "design.json"
	}
	return "component." + g.Extension()
}

// DesignAnalysisResult is what the image analysis service returns.
type DesignAnalysisResult struct {
	Elements    []DesignElement `json:"elements"              yaml:"elements"`
	Summary     string          `json:"summary"               yaml:"summary"`
	Confidence  float64         `json:"confidence"            yaml:"confidence"`
	Suggestions []string        `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}
