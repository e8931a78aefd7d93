package model

// Walk visits every element in depth-first document order. fn receives the
// element and its depth (top-level elements are depth 1). Returning false
// from fn skips that element's children. Traversal uses an explicit stack so
// deep trees cannot exhaust the goroutine stack.
func Walk(elements []DesignElement, fn func(el *DesignElement, depth int) bool) {
	type frame struct {
		el    *DesignElement
		depth int
	}
	stack := make([]frame, 0, len(elements))
	for i := len(elements) - 1; i >= 0; i-- {
		stack = append(stack, frame{&elements[i], 1})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.el, f.depth) {
			continue
		}
		for i := len(f.el.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{&f.el.Children[i], f.depth + 1})
		}
	}
}

// Count returns the total number of elements in the tree.
func Count(elements []DesignElement) int {
	n := 0
	Walk(elements, func(*DesignElement, int) bool {
		n++
		return true
	})
	return n
}

// Depth returns the nesting depth of the tree; an empty tree has depth 0.
func Depth(elements []DesignElement) int {
	deepest := 0
	Walk(elements, func(_ *DesignElement, d int) bool {
		if d > deepest {
			deepest = d
		}
		return true
	})
	return deepest
}

// FindByID returns the first element with the given id, or nil.
func FindByID(elements []DesignElement, id string) *DesignElement {
	var found *DesignElement
	Walk(elements, func(el *DesignElement, _ int) bool {
		if found != nil {
			return false
		}
		if el.ID == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// ContainsType reports whether any element in the tree has type t.
func ContainsType(elements []DesignElement, t ElementType) bool {
	found := false
	Walk(elements, func(el *DesignElement, _ int) bool {
		if el.Type == t {
			found = true
		}
		return !found
	})
	return found
}
