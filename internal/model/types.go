package model

import "strings"

// ElementType is the closed set of design element kinds.
type ElementType string

const (
	TypeButton    ElementType = "button"
	TypeInput     ElementType = "input"
	TypeText      ElementType = "text"
	TypeImage     ElementType = "image"
	TypeContainer ElementType = "container"
	TypeCard      ElementType = "card"
	TypeList      ElementType = "list"
	TypeIcon      ElementType = "icon"
)

// ElementTypes lists every known element type in declaration order.
var ElementTypes = []ElementType{
	TypeButton, TypeInput, TypeText, TypeImage,
	TypeContainer, TypeCard, TypeList, TypeIcon,
}

// Known reports whether t is one of the closed set of element types.
func (t ElementType) Known() bool {
	switch t {
	case TypeButton, TypeInput, TypeText, TypeImage, TypeContainer, TypeCard, TypeList, TypeIcon:
		return true
	}
	return false
}

// IsContainer reports whether elements of this type render their children.
func (t ElementType) IsContainer() bool {
	return t == TypeContainer || t == TypeCard
}

// TypeAliases maps widget and component names produced by image analysis
// (Flutter widgets, HTML tags, common component names) to element types.
// Keys are lowercase.
var TypeAliases = map[string]ElementType{
	"button":               TypeButton,
	"elevatedbutton":       TypeButton,
	"textbutton":           TypeButton,
	"outlinedbutton":       TypeButton,
	"iconbutton":           TypeButton,
	"floatingactionbutton": TypeButton,
	"input":                TypeInput,
	"textfield":            TypeInput,
	"textformfield":        TypeInput,
	"textarea":             TypeInput,
	"checkbox":             TypeInput,
	"text":                 TypeText,
	"label":                TypeText,
	"richtext":             TypeText,
	"heading":              TypeText,
	"paragraph":            TypeText,
	"image":                TypeImage,
	"img":                  TypeImage,
	"avatar":               TypeImage,
	"circleavatar":         TypeImage,
	"container":            TypeContainer,
	"column":               TypeContainer,
	"row":                  TypeContainer,
	"stack":                TypeContainer,
	"padding":              TypeContainer,
	"center":               TypeContainer,
	"sizedbox":             TypeContainer,
	"div":                  TypeContainer,
	"section":              TypeContainer,
	"card":                 TypeCard,
	"chip":                 TypeCard,
	"list":                 TypeList,
	"listview":             TypeList,
	"gridview":             TypeList,
	"ul":                   TypeList,
	"icon":                 TypeIcon,
}

// MapType converts a raw type name to an element type. Unrecognized names
// map to container so the generic rendering path applies.
func MapType(raw string) ElementType {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if t, ok := TypeAliases[key]; ok {
		return t
	}
	return TypeContainer
}
