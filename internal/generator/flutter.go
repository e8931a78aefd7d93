package generator

import (
	"github.com/mj1618/uibuilder/internal/model"
)

// flutterEmitter renders a StatelessWidget whose build method returns a
// Column of widgets.
type flutterEmitter struct{}

func (flutterEmitter) Language() string { return model.LanguageDart }

func (e flutterEmitter) Emit(elements []model.DesignElement, name string) string {
	out := newLines("  ")
	out.add(0, "import 'package:flutter/material.dart';")
	out.blank()
	out.addf(0, "class %s extends StatelessWidget {", name)
	out.addf(1, "const %s({super.key});", name)
	out.blank()
	out.add(1, "@override")
	out.add(1, "Widget build(BuildContext context) {")
	out.add(2, "return Column(")
	out.add(3, "crossAxisAlignment: CrossAxisAlignment.start,")
	e.children(out, elements, 3)
	out.add(2, ");")
	out.add(1, "}")
	out.add(0, "}")
	return out.String()
}

// children writes a children: [...] parameter at depth.
func (e flutterEmitter) children(out *lines, elements []model.DesignElement, depth int) {
	if len(elements) == 0 {
		out.add(depth, "children: [],")
		return
	}
	out.add(depth, "children: [")
	for _, el := range elements {
		e.widget(out, el, depth+1)
	}
	out.add(depth, "],")
}

// widget writes one widget expression followed by a trailing comma.
func (e flutterEmitter) widget(out *lines, el model.DesignElement, depth int) {
	a := el.Args
	switch el.Type {
	case model.TypeButton:
		out.add(depth, "ElevatedButton(")
		if a.IsDisabled() {
			out.add(depth+1, "onPressed: null,")
		} else {
			out.add(depth+1, "onPressed: () {},")
		}
		if style := dartButtonStyle(a); style != "" {
			out.addf(depth+1, "style: %s,", style)
		}
		if style := dartTextStyle(a); style != "" {
			out.addf(depth+1, "child: Text(%s, style: %s),", dartString(orDefault(a.Text, defaultButtonText)), style)
		} else {
			out.addf(depth+1, "child: Text(%s),", dartString(orDefault(a.Text, defaultButtonText)))
		}
		out.add(depth, "),")
	case model.TypeInput:
		out.add(depth, "TextField(")
		if a.IsDisabled() {
			out.add(depth+1, "enabled: false,")
		}
		if a.Type == "password" {
			out.add(depth+1, "obscureText: true,")
		}
		if a.Placeholder != "" {
			out.addf(depth+1, "decoration: InputDecoration(hintText: %s),", dartString(a.Placeholder))
		} else {
			out.add(depth+1, "decoration: const InputDecoration(),")
		}
		if style := dartTextStyle(a); style != "" {
			out.addf(depth+1, "style: %s,", style)
		}
		out.add(depth, "),")
	case model.TypeText:
		out.add(depth, "Text(")
		out.addf(depth+1, "%s,", dartString(orDefault(a.Text, defaultText)))
		if style := dartTextStyle(a); style != "" {
			out.addf(depth+1, "style: %s,", style)
		}
		out.add(depth, "),")
	case model.TypeImage:
		out.add(depth, "Image.network(")
		out.addf(depth+1, "%s,", dartString(a.Src))
		if el.Width > 0 {
			out.addf(depth+1, "width: %s,", formatNumber(el.Width))
		}
		if el.Height > 0 {
			out.addf(depth+1, "height: %s,", formatNumber(el.Height))
		}
		out.add(depth, "),")
	case model.TypeContainer, model.TypeCard:
		e.container(out, el, depth)
	case model.TypeList, model.TypeIcon:
		out.addf(depth, "Text(%s),", dartString(placeholderText(el)))
	default:
		out.addf(depth, "Text(%s),", dartString(string(el.Type)+" element"))
	}
}

// container writes a Column of children, wrapped in a Container when the
// element has padding, margin or decoration.
func (e flutterEmitter) container(out *lines, el model.DesignElement, depth int) {
	a := el.Args
	padding, hasPadding := dartLength(a.Padding)
	margin, hasMargin := dartLength(a.Margin)
	decoration := dartBoxDecoration(a)

	if !hasPadding && !hasMargin && decoration == "" {
		out.add(depth, "Column(")
		out.add(depth+1, "crossAxisAlignment: CrossAxisAlignment.start,")
		e.children(out, el.Children, depth+1)
		out.add(depth, "),")
		return
	}

	out.add(depth, "Container(")
	if hasPadding {
		out.addf(depth+1, "padding: %s,", dartEdgeInsets(padding))
	}
	if hasMargin {
		out.addf(depth+1, "margin: %s,", dartEdgeInsets(margin))
	}
	if decoration != "" {
		out.addf(depth+1, "decoration: %s,", decoration)
	}
	out.add(depth+1, "child: Column(")
	out.add(depth+2, "crossAxisAlignment: CrossAxisAlignment.start,")
	e.children(out, el.Children, depth+2)
	out.add(depth+1, "),")
	out.add(depth, "),")
}
