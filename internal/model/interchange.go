package model

// Interchange document identifiers.
const (
	InterchangeVersion      = "1.0.0"
	InterchangeTypeDesign   = "ui-design"
	InterchangeTypeTemplate = "angular-template"
)

// Position is an element's top-left corner.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size is an element's width and height.
type Size struct {
	Width  float64 `json:"width"  yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// InterchangeElement is the exported form of a DesignElement.
type InterchangeElement struct {
	ID       string               `json:"id"                 yaml:"id"`
	Type     ElementType          `json:"type"               yaml:"type"`
	Name     string               `json:"name"               yaml:"name"`
	Position Position             `json:"position"           yaml:"position"`
	Size     Size                 `json:"size"               yaml:"size"`
	Args     Args                 `json:"args"               yaml:"args"`
	Children []InterchangeElement `json:"children,omitempty" yaml:"children,omitempty"`
}

// InterchangeMetadata describes an exported document.
type InterchangeMetadata struct {
	TotalElements   int    `json:"totalElements"             yaml:"totalElements"`
	ExportedAt      string `json:"exportedAt"                yaml:"exportedAt"`
	TailwindEnabled bool   `json:"tailwindEnabled,omitempty" yaml:"tailwindEnabled,omitempty"`
}

// InterchangeDocument is the framework-neutral JSON export of a design.
type InterchangeDocument struct {
	Version  string               `json:"version"  yaml:"version"`
	Type     string               `json:"type"     yaml:"type"`
	Elements []InterchangeElement `json:"elements" yaml:"elements"`
	Metadata InterchangeMetadata  `json:"metadata" yaml:"metadata"`
}

// AngularAttribute is a static attribute on an Angular template node.
type AngularAttribute struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// AngularListener binds a DOM event to a component method call.
type AngularListener struct {
	EventName string `json:"eventName" yaml:"eventName"`
	CallBack  string `json:"callBack"  yaml:"callBack"`
}

// AngularTemplate is one node of the Angular template representation.
type AngularTemplate struct {
	Element    string             `json:"element"              yaml:"element"`
	ClassNames []string           `json:"classNames"           yaml:"classNames"`
	Text       string             `json:"text,omitempty"       yaml:"text,omitempty"`
	Attributes []AngularAttribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Listeners  []AngularListener  `json:"listeners,omitempty"  yaml:"listeners,omitempty"`
	Children   []AngularTemplate  `json:"children,omitempty"   yaml:"children,omitempty"`
}

// AngularDocument is the Angular-specific JSON export of a design.
type AngularDocument struct {
	Version   string              `json:"version"   yaml:"version"`
	Type      string              `json:"type"      yaml:"type"`
	Templates []AngularTemplate   `json:"templates" yaml:"templates"`
	Metadata  InterchangeMetadata `json:"metadata"  yaml:"metadata"`
}

// ToInterchange converts elements to their exported form, recursing to any depth.
func ToInterchange(elements []DesignElement) []InterchangeElement {
	out := make([]InterchangeElement, 0, len(elements))
	for _, el := range elements {
		ie := InterchangeElement{
			ID:       el.ID,
			Type:     el.Type,
			Name:     el.Name,
			Position: Position{X: el.X, Y: el.Y},
			Size:     Size{Width: el.Width, Height: el.Height},
			Args:     el.Args,
		}
		if len(el.Children) > 0 {
			ie.Children = ToInterchange(el.Children)
		}
		out = append(out, ie)
	}
	return out
}

// FromInterchange converts exported elements back to design elements.
func FromInterchange(elements []InterchangeElement) []DesignElement {
	out := make([]DesignElement, 0, len(elements))
	for _, ie := range elements {
		el := DesignElement{
			ID:     ie.ID,
			Type:   ie.Type,
			Name:   ie.Name,
			X:      ie.Position.X,
			Y:      ie.Position.Y,
			Width:  ie.Size.Width,
			Height: ie.Size.Height,
			Args:   ie.Args,
		}
		if len(ie.Children) > 0 {
			el.Children = FromInterchange(ie.Children)
		}
		out = append(out, el)
	}
	return out
}
