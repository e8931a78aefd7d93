package generator

import (
	"strings"

	"github.com/mj1618/uibuilder/internal/model"
)

// reactEmitter renders a typed functional component.
type reactEmitter struct{}

func (reactEmitter) Language() string { return model.LanguageJSX }

func (e reactEmitter) Emit(elements []model.DesignElement, name string) string {
	out := newLines("  ")
	out.block(0, "import React from 'react'\n\ninterface Props {\n  // Add props here\n}\n")
	out.addf(0, "export const %s: React.FC<Props> = () => {", name)
	out.add(1, "return (")
	out.add(2, `<div className="ui-container">`)
	for _, el := range elements {
		e.element(out, el, 3)
	}
	out.add(2, "</div>")
	out.add(1, ")")
	out.add(0, "}")
	out.blank()
	out.addf(0, "export default %s", name)
	return out.String()
}

func (e reactEmitter) element(out *lines, el model.DesignElement, depth int) {
	a := el.Args
	style := styleObject(CSSDeclarations(a))
	tag := MarkupTag(el.Type)

	switch el.Type {
	case model.TypeButton:
		attrs := jsxAttrs(style, boolAttr("disabled", a.IsDisabled()))
		out.addf(depth, "<%s%s>%s</%s>", tag, attrs, jsxText(orDefault(a.Text, defaultButtonText)), tag)
	case model.TypeInput:
		attrs := jsxAttrs(
			optionalAttr("type", a.Type),
			style,
			optionalAttr("placeholder", a.Placeholder),
			boolAttr("disabled", a.IsDisabled()),
			boolAttr("required", a.IsRequired()),
		)
		out.addf(depth, "<%s%s />", tag, attrs)
	case model.TypeText:
		out.addf(depth, "<%s%s>%s</%s>", tag, jsxAttrs(style), jsxText(orDefault(a.Text, defaultText)), tag)
	case model.TypeImage:
		attrs := jsxAttrs(style, quotedAttr("src", a.Src), quotedAttr("alt", el.Name))
		out.addf(depth, "<%s%s />", tag, attrs)
	case model.TypeContainer, model.TypeCard:
		attrs := jsxAttrs(style)
		if len(el.Children) == 0 {
			out.addf(depth, "<%s%s></%s>", tag, attrs, tag)
			return
		}
		out.addf(depth, "<%s%s>", tag, attrs)
		for _, child := range el.Children {
			e.element(out, child, depth+1)
		}
		out.addf(depth, "</%s>", tag)
	case model.TypeList, model.TypeIcon:
		out.addf(depth, "<%s%s>%s</%s>", tag, jsxAttrs(style), jsxText(placeholderText(el)), tag)
	default:
		out.addf(depth, "<%s%s>%s</%s>", tag, jsxAttrs(style), jsxText(placeholderText(el)), tag)
	}
}

// jsxAttrs joins non-empty attributes, each preceded by a space.
func jsxAttrs(attrs ...string) string {
	var sb strings.Builder
	for _, a := range attrs {
		if a != "" {
			sb.WriteByte(' ')
			sb.WriteString(a)
		}
	}
	return sb.String()
}

func quotedAttr(name, value string) string {
	return name + `="` + attrEscaper.Replace(value) + `"`
}

func optionalAttr(name, value string) string {
	if value == "" {
		return ""
	}
	return quotedAttr(name, value)
}

func boolAttr(name string, set bool) string {
	if !set {
		return ""
	}
	return name
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

var (
	attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `<`, "&lt;", `>`, "&gt;")
	jsxEscaper  = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `{`, "&#123;", `}`, "&#125;")
)

// jsxText escapes s for use as JSX child text.
func jsxText(s string) string {
	return jsxEscaper.Replace(s)
}
