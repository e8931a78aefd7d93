package generator

import (
	"regexp"
	"strings"

	"github.com/mj1618/uibuilder/internal/model"
)

// The Dart mapper is independent of the CSS mapper: it reads args directly
// and produces Flutter constructor fragments.

var hexColorRe = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// DartColor converts a hex color (#RGB, #RRGGBB or #AARRGGBB) to a Flutter
// Color constructor. It reports false for anything else.
func DartColor(hex string) (string, bool) {
	m := hexColorRe.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return "", false
	}
	digits := strings.ToUpper(m[1])
	switch len(digits) {
	case 3:
		digits = "FF" + string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
		digits = "FF" + digits
	}
	return "Color(0x" + digits + ")", true
}

var dartFontWeights = map[string]string{
	"normal": "FontWeight.normal",
	"bold":   "FontWeight.bold",
	"100":    "FontWeight.w100",
	"200":    "FontWeight.w200",
	"300":    "FontWeight.w300",
	"400":    "FontWeight.w400",
	"500":    "FontWeight.w500",
	"600":    "FontWeight.w600",
	"700":    "FontWeight.w700",
	"800":    "FontWeight.w800",
	"900":    "FontWeight.w900",
}

// DartFontWeight maps a font weight ("bold", "600", "w600") to a FontWeight
// constant.
func DartFontWeight(w string) (string, bool) {
	w = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(w)), "w")
	fw, ok := dartFontWeights[w]
	return fw, ok
}

// dartTextStyle returns a TextStyle(...) for font size, weight and text
// color, or "" when none is set.
func dartTextStyle(a model.Args) string {
	var params []string
	if n, ok := dartLength(a.FontSize); ok {
		params = append(params, "fontSize: "+formatNumber(n))
	}
	if fw, ok := DartFontWeight(a.FontWeight); ok {
		params = append(params, "fontWeight: "+fw)
	}
	if c, ok := DartColor(a.TextColor); ok {
		params = append(params, "color: "+c)
	}
	if len(params) == 0 {
		return ""
	}
	return "TextStyle(" + strings.Join(params, ", ") + ")"
}

// dartButtonStyle returns an ElevatedButton.styleFrom(...) call, or "".
func dartButtonStyle(a model.Args) string {
	var params []string
	if c, ok := DartColor(a.BackgroundColor); ok {
		params = append(params, "backgroundColor: "+c)
	}
	if c, ok := DartColor(a.TextColor); ok {
		params = append(params, "foregroundColor: "+c)
	}
	if n, ok := dartLength(a.Padding); ok {
		params = append(params, "padding: "+dartEdgeInsets(n))
	}
	if shape := dartRoundedShape(a); shape != "" {
		params = append(params, "shape: "+shape)
	}
	if len(params) == 0 {
		return ""
	}
	return "ElevatedButton.styleFrom(" + strings.Join(params, ", ") + ")"
}

func dartRoundedShape(a model.Args) string {
	var params []string
	if n, ok := dartLength(a.BorderRadius); ok {
		params = append(params, "borderRadius: "+dartRadius(n))
	}
	if c, ok := DartColor(a.BorderColor); ok {
		params = append(params, "side: BorderSide(color: "+c+")")
	}
	if len(params) == 0 {
		return ""
	}
	return "RoundedRectangleBorder(" + strings.Join(params, ", ") + ")"
}

// dartBoxDecoration returns a BoxDecoration(...) for background, border and
// radius, or "".
func dartBoxDecoration(a model.Args) string {
	var params []string
	if c, ok := DartColor(a.BackgroundColor); ok {
		params = append(params, "color: "+c)
	}
	if c, ok := DartColor(a.BorderColor); ok {
		params = append(params, "border: Border.all(color: "+c+")")
	}
	if n, ok := dartLength(a.BorderRadius); ok {
		params = append(params, "borderRadius: "+dartRadius(n))
	}
	if len(params) == 0 {
		return ""
	}
	return "BoxDecoration(" + strings.Join(params, ", ") + ")"
}

// dartLength is number restricted to positive values. Flutter asserts that
// insets, radii and font sizes are non-negative.
func dartLength(v *float64) (float64, bool) {
	n, ok := number(v)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

func dartEdgeInsets(n float64) string {
	return "EdgeInsets.all(" + formatNumber(n) + ")"
}

func dartRadius(n float64) string {
	return "BorderRadius.circular(" + formatNumber(n) + ")"
}

var dartStringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `$`, `\$`, "\n", `\n`, "\r", `\r`)

// dartString quotes s as a single-quoted Dart string literal.
func dartString(s string) string {
	return "'" + dartStringEscaper.Replace(s) + "'"
}
