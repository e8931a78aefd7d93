package generator

import (
	"html"

	"github.com/mj1618/uibuilder/internal/model"
)

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Generated UI</title>
  <style>
    * {
      margin: 0;
      padding: 0;
      box-sizing: border-box;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    }
    .ui-container {
      max-width: 1200px;
      margin: 0 auto;
      padding: 20px;
    }
  </style>
</head>
<body>`

// htmlEmitter renders a standalone HTML document with inline styles.
type htmlEmitter struct{}

func (htmlEmitter) Language() string { return model.LanguageHTML }

func (e htmlEmitter) Emit(elements []model.DesignElement, _ string) string {
	out := newLines("  ")
	out.block(0, htmlHead)
	out.add(1, `<div class="ui-container">`)
	for _, el := range elements {
		e.element(out, el, 2)
	}
	out.add(1, "</div>")
	out.add(0, "</body>")
	out.add(0, "</html>")
	return out.String()
}

func (e htmlEmitter) element(out *lines, el model.DesignElement, depth int) {
	a := el.Args
	tag := MarkupTag(el.Type)
	style := optionalAttr("style", styleAttribute(CSSDeclarations(a)))

	switch el.Type {
	case model.TypeButton:
		attrs := jsxAttrs(optionalAttr("type", a.Type), style, boolAttr("disabled", a.IsDisabled()))
		out.addf(depth, "<%s%s>%s</%s>", tag, attrs, html.EscapeString(orDefault(a.Text, defaultButtonText)), tag)
	case model.TypeInput:
		attrs := jsxAttrs(
			quotedAttr("type", orDefault(a.Type, "text")),
			style,
			optionalAttr("placeholder", a.Placeholder),
			boolAttr("disabled", a.IsDisabled()),
			boolAttr("required", a.IsRequired()),
		)
		out.addf(depth, "<%s%s />", tag, attrs)
	case model.TypeText:
		out.addf(depth, "<%s%s>%s</%s>", tag, jsxAttrs(style), html.EscapeString(orDefault(a.Text, defaultText)), tag)
	case model.TypeImage:
		attrs := jsxAttrs(quotedAttr("src", a.Src), quotedAttr("alt", el.Name), style)
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
		out.addf(depth, "<%s%s>%s</%s>", tag, jsxAttrs(style), html.EscapeString(placeholderText(el)), tag)
	default:
		out.addf(depth, "<%s%s>%s</%s>", tag, jsxAttrs(style), html.EscapeString(placeholderText(el)), tag)
	}
}
