package model

// FlatElement is an element with a path breadcrumb instead of children.
type FlatElement struct {
	ID     string      `yaml:"id"             json:"id"`
	Type   ElementType `yaml:"type"           json:"type"`
	Name   string      `yaml:"name,omitempty" json:"name,omitempty"`
	Bounds [4]float64  `yaml:"bounds"         json:"bounds"`
	Args   Args        `yaml:"args,omitempty" json:"args,omitempty"`
	Depth  int         `yaml:"depth"          json:"depth"`
	Path   string      `yaml:"path"           json:"path"`
}

// FlattenElements converts a tree of elements into a flat list in document
// order. Each element gets a path string showing its location in the tree
// using element types joined with " > ".
func FlattenElements(elements []DesignElement) []FlatElement {
	var result []FlatElement
	paths := make(map[*DesignElement]string)
	Walk(elements, func(el *DesignElement, depth int) bool {
		path := string(el.Type)
		if parent := paths[el]; parent != "" {
			path = parent + " > " + path
		}
		for i := range el.Children {
			paths[&el.Children[i]] = path
		}
		result = append(result, FlatElement{
			ID:     el.ID,
			Type:   el.Type,
			Name:   el.Name,
			Bounds: [4]float64{el.X, el.Y, el.Width, el.Height},
			Args:   el.Args,
			Depth:  depth,
			Path:   path,
		})
		return true
	})
	return result
}
