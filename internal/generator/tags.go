package generator

import "github.com/mj1618/uibuilder/internal/model"

// markupTags is the tag table shared by the React and HTML emitters. Types
// without a dedicated tag render as a generic div.
var markupTags = map[model.ElementType]string{
	model.TypeButton:    "button",
	model.TypeInput:     "input",
	model.TypeText:      "p",
	model.TypeImage:     "img",
	model.TypeContainer: "div",
	model.TypeCard:      "div",
	model.TypeList:      "div",
	model.TypeIcon:      "div",
}

// templateTags is the tag table for Angular templates.
var templateTags = map[model.ElementType]string{
	model.TypeButton:    "button",
	model.TypeInput:     "input",
	model.TypeText:      "span",
	model.TypeImage:     "img",
	model.TypeContainer: "div",
	model.TypeCard:      "div",
	model.TypeList:      "ul",
	model.TypeIcon:      "i",
}

const fallbackTag = "div"

// MarkupTag returns the React/HTML tag for t.
func MarkupTag(t model.ElementType) string {
	if tag, ok := markupTags[t]; ok {
		return tag
	}
	return fallbackTag
}

// TemplateTag returns the Angular template tag for t.
func TemplateTag(t model.ElementType) string {
	if tag, ok := templateTags[t]; ok {
		return tag
	}
	return fallbackTag
}

// Default content for elements without text.
const (
	defaultButtonText = "Button"
	defaultText       = "Text"
)

// placeholderText is the content rendered for types with no dedicated
// rendering rule: the element's own text, or "<type> element".
func placeholderText(el model.DesignElement) string {
	if el.Args.Text != "" {
		return el.Args.Text
	}
	return string(el.Type) + " element"
}

// Event bindings used by Angular output, both code and JSON.
const (
	clickEvent    = "click"
	clickHandler  = "handleClick()"
	changeEvent   = "change"
	changeHandler = "handleChange($event)"
)
