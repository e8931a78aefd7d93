package generator

import (
	"strings"

	"github.com/mj1618/uibuilder/internal/model"
)

// angularEmitter renders a component as three concatenated sections:
// template, class and stylesheet. Styling uses Tailwind classes.
type angularEmitter struct{}

func (angularEmitter) Language() string { return model.LanguageHTML }

func (e angularEmitter) Emit(elements []model.DesignElement, name string) string {
	selector := strings.ToLower(name)
	out := newLines("  ")

	out.addf(0, "<!-- %s.component.html -->", selector)
	out.add(0, `<div class="ui-container">`)
	for _, el := range elements {
		e.element(out, el, 1)
	}
	out.add(0, "</div>")
	out.blank()

	out.addf(0, "<!-- %s.component.ts -->", selector)
	out.add(0, "import { Component } from '@angular/core'")
	out.blank()
	out.add(0, "@Component({")
	out.addf(1, "selector: 'app-%s',", selector)
	out.addf(1, "templateUrl: './%s.component.html',", selector)
	out.addf(1, "styleUrls: ['./%s.component.css'],", selector)
	out.add(0, "})")
	out.addf(0, "export class %sComponent {", name)
	out.add(1, "constructor() {}")
	if model.ContainsType(elements, model.TypeButton) {
		out.blank()
		out.add(1, "handleClick(): void {")
		out.add(2, "console.log('button clicked')")
		out.add(1, "}")
	}
	if model.ContainsType(elements, model.TypeInput) {
		out.blank()
		out.add(1, "handleChange(event: Event): void {")
		out.add(2, "console.log('input changed', event)")
		out.add(1, "}")
	}
	out.add(0, "}")
	out.blank()

	out.addf(0, "/* %s.component.css */", selector)
	out.add(0, ".ui-container {")
	out.add(1, "display: flex;")
	out.add(1, "flex-direction: column;")
	out.add(0, "}")
	return out.String()
}

func (e angularEmitter) element(out *lines, el model.DesignElement, depth int) {
	a := el.Args
	tag := TemplateTag(el.Type)
	class := quotedAttr("class", strings.Join(ClassNames(el), " "))

	switch el.Type {
	case model.TypeButton:
		attrs := jsxAttrs(class, optionalAttr("type", a.Type), boolAttr("disabled", a.IsDisabled()),
			`(`+clickEvent+`)="`+clickHandler+`"`)
		out.addf(depth, "<%s%s>%s</%s>", tag, attrs, templateText(orDefault(a.Text, defaultButtonText)), tag)
	case model.TypeInput:
		attrs := jsxAttrs(class, optionalAttr("type", a.Type), optionalAttr("placeholder", a.Placeholder),
			boolAttr("disabled", a.IsDisabled()), boolAttr("required", a.IsRequired()),
			`(`+changeEvent+`)="`+changeHandler+`"`)
		out.addf(depth, "<%s%s />", tag, attrs)
	case model.TypeText:
		out.addf(depth, "<%s%s>%s</%s>", tag, jsxAttrs(class), templateText(orDefault(a.Text, defaultText)), tag)
	case model.TypeImage:
		attrs := jsxAttrs(class, quotedAttr("src", a.Src), quotedAttr("alt", el.Name))
		out.addf(depth, "<%s%s />", tag, attrs)
	case model.TypeContainer, model.TypeCard:
		if len(el.Children) == 0 {
			out.addf(depth, "<%s %s></%s>", tag, class, tag)
			return
		}
		out.addf(depth, "<%s %s>", tag, class)
		for _, child := range el.Children {
			e.element(out, child, depth+1)
		}
		out.addf(depth, "</%s>", tag)
	case model.TypeList, model.TypeIcon:
		out.addf(depth, "<%s %s>%s</%s>", tag, class, templateText(placeholderText(el)), tag)
	default:
		out.addf(depth, "<%s %s>%s</%s>", tag, class, templateText(placeholderText(el)), tag)
	}
}

var templateEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `{`, "&#123;", `}`, "&#125;")

// templateText escapes s for Angular template text, including interpolation braces.
func templateText(s string) string {
	return templateEscaper.Replace(s)
}
