package model

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DesignElement is one node of a framework-agnostic UI design tree.
type DesignElement struct {
	ID       string          `json:"id"                 yaml:"id"                 validate:"required"`
	Type     ElementType     `json:"type"               yaml:"type"               validate:"required"`
	Name     string          `json:"name"               yaml:"name"`
	X        float64         `json:"x"                  yaml:"x"`
	Y        float64         `json:"y"                  yaml:"y"`
	Width    float64         `json:"width"              yaml:"width"              validate:"gte=0"`
	Height   float64         `json:"height"             yaml:"height"             validate:"gte=0"`
	Args     Args            `json:"args"               yaml:"args"`
	Children []DesignElement `json:"children,omitempty" yaml:"children,omitempty" validate:"dive"`
}

// Args is the visual property bag of an element. Known properties are typed;
// anything else lands in Extra and is carried through serialization untouched.
// Numeric and boolean fields are nil when absent.
type Args struct {
	BackgroundColor string
	BorderColor     string
	BorderRadius    *float64
	Padding         *float64
	Margin          *float64
	FontSize        *float64
	FontWeight      string
	TextColor       string
	Text            string
	Placeholder     string
	Disabled        *bool
	Required        *bool
	Type            string
	Src             string

	Extra map[string]any
}

// Float returns a pointer to v, for building Args literals.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for building Args literals.
func Bool(v bool) *bool { return &v }

// IsDisabled reports whether the disabled flag is set and true.
func (a Args) IsDisabled() bool { return a.Disabled != nil && *a.Disabled }

// IsRequired reports whether the required flag is set and true.
func (a Args) IsRequired() bool { return a.Required != nil && *a.Required }

// Args keys, in serialization order.
const (
	argBackgroundColor = "backgroundColor"
	argBorderColor     = "borderColor"
	argBorderRadius    = "borderRadius"
	argPadding         = "padding"
	argMargin          = "margin"
	argFontSize        = "fontSize"
	argFontWeight      = "fontWeight"
	argTextColor       = "textColor"
	argText            = "text"
	argPlaceholder     = "placeholder"
	argDisabled        = "disabled"
	argRequired        = "required"
	argType            = "type"
	argSrc             = "src"
)

// fields returns the set known properties as ordered key/value pairs.
// Non-finite numbers have no JSON form and are left out.
func (a Args) fields() []argField {
	var out []argField
	addString := func(k, v string) {
		if v != "" {
			out = append(out, argField{k, v})
		}
	}
	addNumber := func(k string, v *float64) {
		if v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) {
			out = append(out, argField{k, *v})
		}
	}
	addBool := func(k string, v *bool) {
		if v != nil {
			out = append(out, argField{k, *v})
		}
	}
	addString(argBackgroundColor, a.BackgroundColor)
	addString(argBorderColor, a.BorderColor)
	addNumber(argBorderRadius, a.BorderRadius)
	addNumber(argPadding, a.Padding)
	addNumber(argMargin, a.Margin)
	addNumber(argFontSize, a.FontSize)
	addString(argFontWeight, a.FontWeight)
	addString(argTextColor, a.TextColor)
	addString(argText, a.Text)
	addString(argPlaceholder, a.Placeholder)
	addBool(argDisabled, a.Disabled)
	addBool(argRequired, a.Required)
	addString(argType, a.Type)
	addString(argSrc, a.Src)
	return out
}

type argField struct {
	key   string
	value any
}

// IsEmpty reports whether no property, known or extra, is set.
func (a Args) IsEmpty() bool {
	return len(a.fields()) == 0 && len(a.Extra) == 0
}

// Map returns the properties as a plain map.
func (a Args) Map() map[string]any {
	m := make(map[string]any, len(a.Extra)+4)
	for k, v := range a.Extra {
		m[k] = v
	}
	for _, f := range a.fields() {
		m[f.key] = f.value
	}
	return m
}

// MarshalJSON writes known properties in a fixed order followed by extra keys
// sorted by name, so identical args always produce identical bytes.
func (a Args) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(k string, v any) error {
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		vb, err := marshalNoEscape(v)
		if err != nil {
			return err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		return nil
	}
	for _, f := range a.fields() {
		if err := write(f.key, f.value); err != nil {
			return nil, err
		}
	}
	keys := make([]string, 0, len(a.Extra))
	for k := range a.Extra {
		if !isKnownArg(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := write(k, a.Extra[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes args leniently: numbers may arrive as strings with a
// px suffix, flags as "true"/"false", font weights as numbers. Values that do
// not fit a known field are kept in Extra under their original key.
func (a *Args) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Args{}
	for k, v := range raw {
		if !a.setKnown(k, v) {
			var anyVal any
			if err := json.Unmarshal(v, &anyVal); err != nil {
				return err
			}
			if a.Extra == nil {
				a.Extra = make(map[string]any)
			}
			a.Extra[k] = anyVal
		}
	}
	return nil
}

// setKnown assigns a known key; it returns false when k is unknown or the
// value does not fit the field's type.
func (a *Args) setKnown(k string, v json.RawMessage) bool {
	if isKnownArg(k) && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return true
	}
	switch k {
	case argBackgroundColor:
		return decodeString(v, &a.BackgroundColor)
	case argBorderColor:
		return decodeString(v, &a.BorderColor)
	case argFontWeight:
		return decodeString(v, &a.FontWeight)
	case argTextColor:
		return decodeString(v, &a.TextColor)
	case argText:
		return decodeString(v, &a.Text)
	case argPlaceholder:
		return decodeString(v, &a.Placeholder)
	case argType:
		return decodeString(v, &a.Type)
	case argSrc:
		return decodeString(v, &a.Src)
	case argBorderRadius:
		return decodeNumber(v, &a.BorderRadius)
	case argPadding:
		return decodeNumber(v, &a.Padding)
	case argMargin:
		return decodeNumber(v, &a.Margin)
	case argFontSize:
		return decodeNumber(v, &a.FontSize)
	case argDisabled:
		return decodeBool(v, &a.Disabled)
	case argRequired:
		return decodeBool(v, &a.Required)
	}
	return false
}

func isKnownArg(k string) bool {
	switch k {
	case argBackgroundColor, argBorderColor, argBorderRadius, argPadding, argMargin,
		argFontSize, argFontWeight, argTextColor, argText, argPlaceholder,
		argDisabled, argRequired, argType, argSrc:
		return true
	}
	return false
}

func decodeString(v json.RawMessage, dst *string) bool {
	if err := json.Unmarshal(v, dst); err == nil {
		return true
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		*dst = strconv.FormatFloat(f, 'f', -1, 64)
		return true
	}
	return false
}

// decodeNumber accepts a JSON number or a numeric string ("12", "12px").
// Non-finite values such as "NaN" or "Inf" are refused and stay in Extra.
func decodeNumber(v json.RawMessage, dst **float64) bool {
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		*dst = &f
		return true
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return false
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	*dst = &f
	return true
}

func decodeBool(v json.RawMessage, dst **bool) bool {
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		*dst = &b
		return true
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	*dst = &b
	return true
}

// MarshalYAML emits the same key set as MarshalJSON.
func (a Args) MarshalYAML() (interface{}, error) {
	return a.Map(), nil
}

// UnmarshalYAML routes through the JSON decoder so both formats share the
// same leniency rules.
func (a *Args) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]any
	if err := value.Decode(&m); err != nil {
		return err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return a.UnmarshalJSON(data)
}
