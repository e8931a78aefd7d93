package model

import "strings"

// FilterElements keeps elements whose type is in types. Elements that do not
// match but have matching descendants are replaced by those descendants, so
// relative order is preserved.
func FilterElements(elements []DesignElement, types []ElementType) []DesignElement {
	if len(types) == 0 {
		return elements
	}
	typeSet := make(map[ElementType]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}
	return filterByType(elements, typeSet)
}

func filterByType(elements []DesignElement, typeSet map[ElementType]bool) []DesignElement {
	var result []DesignElement
	for _, el := range elements {
		// Recursively filter children first
		var filteredChildren []DesignElement
		if len(el.Children) > 0 {
			filteredChildren = filterByType(el.Children, typeSet)
		}

		if typeSet[el.Type] {
			filtered := el
			filtered.Children = filteredChildren
			result = append(result, filtered)
		} else if len(filteredChildren) > 0 {
			// Element doesn't match, but has matching descendants: include them directly
			result = append(result, filteredChildren...)
		}
	}
	return result
}

// FilterByText keeps elements whose name, text or placeholder contains text
// (case-insensitive). Ancestors of matching elements are kept with only
// their matching children.
func FilterByText(elements []DesignElement, text string) []DesignElement {
	if text == "" {
		return elements
	}
	textLower := strings.ToLower(text)
	var result []DesignElement
	for _, el := range elements {
		matched := textMatchesElement(el, textLower)
		childMatches := FilterByText(el.Children, text)

		if matched || len(childMatches) > 0 {
			filtered := el
			filtered.Children = childMatches
			result = append(result, filtered)
		}
	}
	return result
}

func textMatchesElement(el DesignElement, textLower string) bool {
	return strings.Contains(strings.ToLower(el.Name), textLower) ||
		strings.Contains(strings.ToLower(el.Args.Text), textLower) ||
		strings.Contains(strings.ToLower(el.Args.Placeholder), textLower)
}

// isEmptyContainer returns true for a container with no children, no text
// and no properties: it renders as an empty div and carries no design intent.
func isEmptyContainer(el DesignElement) bool {
	return el.Type == TypeContainer && len(el.Children) == 0 && el.Args.IsEmpty()
}

// PruneEmptyContainers removes empty containers and unwraps containers that
// hold a single child and have no properties of their own, promoting the
// child into the parent's position.
func PruneEmptyContainers(elements []DesignElement) []DesignElement {
	var result []DesignElement
	for _, el := range elements {
		pruned := el
		pruned.Children = PruneEmptyContainers(el.Children)

		switch {
		case isEmptyContainer(pruned):
			continue
		case pruned.Type == TypeContainer && len(pruned.Children) == 1 && pruned.Args.IsEmpty():
			result = append(result, pruned.Children[0])
		default:
			result = append(result, pruned)
		}
	}
	return result
}
