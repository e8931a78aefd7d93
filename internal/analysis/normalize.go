package analysis

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/model"
)

// Normalize parses a model reply into an analysis result. Replies may use
// the canonical element shape or widget-style trees (Flutter widget names,
// nested style/decoration maps, child/children inside args); both are
// mapped onto the closed element vocabulary. Missing ids are generated.
func Normalize(data []byte) (*model.DesignAnalysisResult, error) {
	var raw struct {
		Elements    []map[string]any `json:"elements"`
		Summary     string           `json:"summary"`
		Confidence  any              `json:"confidence"`
		Suggestions []any            `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode analysis result"), errors.ErrAnalysisFailed)
	}

	result := &model.DesignAnalysisResult{
		Summary:    strings.TrimSpace(raw.Summary),
		Confidence: clamp01(toFloat(raw.Confidence)),
		Elements:   make([]model.DesignElement, 0, len(raw.Elements)),
	}
	for _, s := range raw.Suggestions {
		if str, ok := s.(string); ok && strings.TrimSpace(str) != "" {
			result.Suggestions = append(result.Suggestions, strings.TrimSpace(str))
		}
	}
	for _, m := range raw.Elements {
		el, err := normalizeElement(m, 1)
		if err != nil {
			return nil, err
		}
		result.Elements = append(result.Elements, el)
	}
	return result, nil
}

// styleMaps are nested maps whose entries are lifted into args.
var styleMaps = []string{"style", "decoration", "shape", "textStyle"}

// styleKeyAliases renames widget-style keys to args keys.
var styleKeyAliases = map[string]string{
	"hintText":   "placeholder",
	"hint":       "placeholder",
	"label":      "text",
	"data":       "text",
	"value":      "text",
	"image":      "src",
	"url":        "src",
	"enabled":    "",
	"fillColor":  "backgroundColor",
	"background": "backgroundColor",
}

// spacingKeys take the first number of a "12 24" style shorthand.
var spacingKeys = map[string]bool{
	"padding": true, "margin": true, "borderRadius": true, "contentPadding": true,
}

func normalizeElement(m map[string]any, depth int) (model.DesignElement, error) {
	rawType, _ := m["type"].(string)
	el := model.DesignElement{
		ID:   stringValue(m["id"]),
		Type: model.MapType(rawType),
		Name: stringValue(m["name"]),
	}
	if el.ID == "" {
		el.ID = uuid.NewString()
	}
	if el.Name == "" {
		el.Name = rawType
	}
	if el.Name == "" {
		el.Name = string(el.Type)
	}

	rawArgs, _ := m["args"].(map[string]any)
	args := make(map[string]any)
	var children []map[string]any

	var liftStyle func(style map[string]any, textContext bool)
	liftStyle = func(style map[string]any, textContext bool) {
		for k, v := range style {
			if nested, ok := v.(map[string]any); ok {
				if isStyleMap(k) {
					liftStyle(nested, textContext || k == "textStyle")
					continue
				}
				if k == "borderRadius" {
					v = firstNumber(nested)
				}
			}
			switch {
			case k == "color" && textContext:
				setIfAbsent(args, "textColor", v)
			case k == "color":
				setIfAbsent(args, "backgroundColor", v)
			default:
				setIfAbsent(args, aliasKey(k), v)
			}
		}
	}

	for k, v := range rawArgs {
		switch k {
		case "child", "label", "avatar", "title", "leading", "trailing":
			if child, ok := v.(map[string]any); ok && isElement(child) {
				children = append(children, child)
				continue
			}
		case "children", "items":
			if list, ok := v.([]any); ok {
				for _, item := range list {
					if child, ok := item.(map[string]any); ok && isElement(child) {
						children = append(children, child)
					}
				}
				continue
			}
		}
		if isStyleMap(k) {
			if style, ok := v.(map[string]any); ok {
				liftStyle(style, el.Type == model.TypeText || k == "textStyle")
				continue
			}
		}
		if k == "color" {
			if el.Type == model.TypeText || el.Type == model.TypeIcon {
				setIfAbsent(args, "textColor", v)
			} else {
				setIfAbsent(args, "backgroundColor", v)
			}
			continue
		}
		if alias := aliasKey(k); alias != "" {
			args[alias] = v
		}
	}

	if list, ok := m["children"].([]any); ok {
		for _, item := range list {
			if child, ok := item.(map[string]any); ok {
				children = append(children, child)
			}
		}
	}

	for k, v := range args {
		if spacingKeys[k] {
			args[k] = spacingValue(v)
		}
	}
	if cp, ok := args["contentPadding"]; ok {
		setIfAbsent(args, "padding", cp)
		delete(args, "contentPadding")
	}

	el.X, el.Y = toFloat(m["x"]), toFloat(m["y"])
	el.Width, el.Height = toFloat(m["width"]), toFloat(m["height"])
	if pos, ok := m["position"].(map[string]any); ok {
		el.X, el.Y = orFloat(el.X, pos["x"]), orFloat(el.Y, pos["y"])
	}
	if size, ok := m["size"].(map[string]any); ok {
		el.Width, el.Height = orFloat(el.Width, size["width"]), orFloat(el.Height, size["height"])
	}
	if el.Width == 0 {
		el.Width = toFloat(args["width"])
	}
	if el.Height == 0 {
		el.Height = toFloat(args["height"])
	}
	delete(args, "width")
	delete(args, "height")
	if el.Width < 0 {
		el.Width = 0
	}
	if el.Height < 0 {
		el.Height = 0
	}

	// A button or text wrapping a single text widget takes over its
	// content instead of nesting it.
	if (el.Type == model.TypeButton || el.Type == model.TypeText || el.Type == model.TypeInput) && len(children) > 0 {
		var rest []map[string]any
		for _, child := range children {
			childType, _ := child["type"].(string)
			if model.MapType(childType) == model.TypeText {
				inner, err := normalizeElement(child, depth+1)
				if err != nil {
					return el, err
				}
				for k, v := range inner.Args.Map() {
					setIfAbsent(args, k, v)
				}
				continue
			}
			rest = append(rest, child)
		}
		children = rest
	}

	data, err := json.Marshal(args)
	if err != nil {
		return el, errors.Mark(errors.Wrap(err, "encode element args"), errors.ErrAnalysisFailed)
	}
	if err := json.Unmarshal(data, &el.Args); err != nil {
		return el, errors.Mark(errors.Wrap(err, "decode element args"), errors.ErrAnalysisFailed)
	}

	if len(children) > 0 {
		if depth >= model.MaxDepth {
			return el, errors.Wrapf(errors.ErrTreeTooDeep, "analysis result nests deeper than %d", model.MaxDepth)
		}
		el.Children = make([]model.DesignElement, 0, len(children))
		for _, child := range children {
			c, err := normalizeElement(child, depth+1)
			if err != nil {
				return el, err
			}
			el.Children = append(el.Children, c)
		}
	}
	return el, nil
}

func isElement(m map[string]any) bool {
	_, ok := m["type"].(string)
	return ok
}

func isStyleMap(k string) bool {
	for _, s := range styleMaps {
		if k == s {
			return true
		}
	}
	return false
}

// aliasKey maps a raw key to its args name. An empty result drops the key.
func aliasKey(k string) string {
	if alias, ok := styleKeyAliases[k]; ok {
		return alias
	}
	return k
}

func setIfAbsent(m map[string]any, k string, v any) {
	if k == "" {
		return
	}
	if _, ok := m[k]; !ok {
		m[k] = v
	}
}

// spacingValue reduces "12 24" or "12px 24px" shorthands to their first
// number. Other values pass through.
func spacingValue(v any) any {
	s, ok := v.(string)
	if !ok {
		if m, ok := v.(map[string]any); ok {
			return firstNumber(m)
		}
		return v
	}
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) == 0 {
		return v
	}
	f, ok := parseNumber(fields[0])
	if !ok {
		return v
	}
	return f
}

// sideKeys is the order firstNumber consults per-side and per-corner values.
var sideKeys = []string{
	"topLeft", "topRight", "bottomLeft", "bottomRight",
	"top", "right", "bottom", "left",
	"horizontal", "vertical",
}

// firstNumber returns a numeric value from a map such as {"all": 8} or
// {"topLeft": 4}, preferring "all", then sideKeys, then the remaining keys
// in sorted order.
func firstNumber(m map[string]any) any {
	if v, ok := m["all"]; ok {
		return v
	}
	for _, k := range sideKeys {
		if f := toFloat(m[k]); f != 0 {
			return f
		}
	}
	rest := make([]string, 0, len(m))
	for k := range m {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	for _, k := range rest {
		if f := toFloat(m[k]); f != 0 {
			return f
		}
	}
	return nil
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if f, ok := parseNumber(n); ok {
			return f
		}
	}
	return 0
}

// parseNumber parses "12" or "12px". NaN and infinities are rejected.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func orFloat(current float64, v any) float64 {
	if current != 0 {
		return current
	}
	return toFloat(v)
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
