package model

import (
	"fmt"
	"reflect"
)

// ChangeType represents the kind of design change detected.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
	ChangeChanged ChangeType = "changed"
)

// DesignChange represents a single element-level difference between two
// versions of a design.
type DesignChange struct {
	Type    ChangeType           `yaml:"type"              json:"type"`
	ID      string               `yaml:"id"                json:"id"`
	Element *FlatElement         `yaml:"el,omitempty"      json:"el,omitempty"`      // For added: the full element
	Path    string               `yaml:"path,omitempty"    json:"path,omitempty"`    // For added/removed: path in tree
	Changes map[string][2]string `yaml:"changes,omitempty" json:"changes,omitempty"` // For changed: field diffs
}

// DiffElements compares two flattened designs and returns the changes.
// Elements are matched by id; output follows curr's order for added and
// changed elements, then prev's order for removed ones.
func DiffElements(prev, curr []FlatElement) []DesignChange {
	prevMap := make(map[string]FlatElement, len(prev))
	for _, el := range prev {
		prevMap[el.ID] = el
	}
	currMap := make(map[string]FlatElement, len(curr))
	for _, el := range curr {
		currMap[el.ID] = el
	}

	var changes []DesignChange

	for _, el := range curr {
		prevEl, existed := prevMap[el.ID]
		if !existed {
			elCopy := el
			changes = append(changes, DesignChange{
				Type:    ChangeAdded,
				ID:      el.ID,
				Element: &elCopy,
				Path:    el.Path,
			})
			continue
		}
		if diffs := diffProperties(prevEl, el); len(diffs) > 0 {
			changes = append(changes, DesignChange{
				Type:    ChangeChanged,
				ID:      el.ID,
				Changes: diffs,
			})
		}
	}

	for _, el := range prev {
		if _, exists := currMap[el.ID]; !exists {
			changes = append(changes, DesignChange{
				Type: ChangeRemoved,
				ID:   el.ID,
				Path: el.Path,
			})
		}
	}

	return changes
}

// diffProperties compares two elements and returns changed fields keyed by
// field name, or args.<key> for property bag entries.
func diffProperties(prev, curr FlatElement) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Type != curr.Type {
		diffs["type"] = [2]string{string(prev.Type), string(curr.Type)}
	}
	if prev.Name != curr.Name {
		diffs["name"] = [2]string{prev.Name, curr.Name}
	}
	if prev.Path != curr.Path {
		diffs["path"] = [2]string{prev.Path, curr.Path}
	}
	if prev.Bounds != curr.Bounds {
		diffs["bounds"] = [2]string{
			fmt.Sprintf("%v", prev.Bounds),
			fmt.Sprintf("%v", curr.Bounds),
		}
	}

	prevArgs, currArgs := prev.Args.Map(), curr.Args.Map()
	for k, pv := range prevArgs {
		cv, ok := currArgs[k]
		if !ok {
			diffs["args."+k] = [2]string{fmt.Sprintf("%v", pv), ""}
		} else if !reflect.DeepEqual(pv, cv) {
			diffs["args."+k] = [2]string{fmt.Sprintf("%v", pv), fmt.Sprintf("%v", cv)}
		}
	}
	for k, cv := range currArgs {
		if _, ok := prevArgs[k]; !ok {
			diffs["args."+k] = [2]string{"", fmt.Sprintf("%v", cv)}
		}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
