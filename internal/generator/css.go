package generator

import (
	"math"
	"strconv"
	"strings"

	"github.com/mj1618/uibuilder/internal/model"
)

// Declaration is one CSS property derived from element args. Prop is the
// camelCase name used in React style objects, CSS the kebab-case name used in
// style attributes.
type Declaration struct {
	Prop  string
	CSS   string
	Value string
}

// CSSDeclarations maps args to CSS declarations in a fixed order. Only
// properties present on args are returned; numeric values get a px suffix.
func CSSDeclarations(a model.Args) []Declaration {
	var out []Declaration
	addString := func(prop, css, v string) {
		if v != "" {
			out = append(out, Declaration{Prop: prop, CSS: css, Value: v})
		}
	}
	addPixels := func(prop, css string, v *float64) {
		if n, ok := number(v); ok {
			out = append(out, Declaration{Prop: prop, CSS: css, Value: pixels(n)})
		}
	}
	addString("backgroundColor", "background-color", a.BackgroundColor)
	addString("color", "color", a.TextColor)
	addString("borderColor", "border-color", a.BorderColor)
	addPixels("borderRadius", "border-radius", a.BorderRadius)
	addPixels("padding", "padding", a.Padding)
	addPixels("margin", "margin", a.Margin)
	addPixels("fontSize", "font-size", a.FontSize)
	addString("fontWeight", "font-weight", a.FontWeight)
	return out
}

// number returns the value of an optional numeric arg. Zero and non-finite
// values count as absent.
func number(v *float64) (float64, bool) {
	if v == nil || *v == 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func pixels(n float64) string {
	return formatNumber(n) + "px"
}

// styleObject renders declarations as a JSX style attribute:
// style={{ backgroundColor: '#fff', padding: '8px' }}. Empty input renders "".
func styleObject(decls []Declaration) string {
	if len(decls) == 0 {
		return ""
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Prop+": "+jsString(d.Value))
	}
	return "style={{ " + strings.Join(parts, ", ") + " }}"
}

// styleAttribute renders declarations as an HTML style attribute value:
// background-color: #fff; padding: 8px. Empty input renders "".
func styleAttribute(decls []Declaration) string {
	if len(decls) == 0 {
		return ""
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.CSS+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

var jsStringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// jsString quotes s as a single-quoted JavaScript string literal.
func jsString(s string) string {
	return "'" + jsStringEscaper.Replace(s) + "'"
}
