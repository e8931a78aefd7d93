package model

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mj1618/uibuilder/internal/errors"
)

// MaxDepth bounds element nesting. Trees come from an external analysis step
// and are not trusted to stay shallow.
const MaxDepth = 64

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// CheckDepth returns ErrTreeTooDeep when the tree nests deeper than MaxDepth.
func CheckDepth(elements []DesignElement) error {
	if d := Depth(elements); d > MaxDepth {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrTreeTooDeep, "depth %d exceeds limit %d", d, MaxDepth),
			"flatten nested containers or select a subtree")
	}
	return nil
}

// Validate checks a design tree for structural problems: nesting depth,
// missing ids or types, negative sizes and duplicate ids. Unknown element
// types are not errors; see UnknownTypes.
func Validate(elements []DesignElement) error {
	if err := CheckDepth(elements); err != nil {
		return err
	}

	v := validatorInstance()
	var problems []string
	for i := range elements {
		if err := v.Struct(elements[i]); err != nil {
			problems = append(problems, describeValidation(err)...)
		}
	}

	seen := make(map[string]bool)
	Walk(elements, func(el *DesignElement, _ int) bool {
		if el.ID == "" {
			return true
		}
		if seen[el.ID] {
			problems = append(problems, fmt.Sprintf("duplicate id %q", el.ID))
		}
		seen[el.ID] = true
		return true
	})

	if len(problems) > 0 {
		return errors.Wrapf(errors.ErrInvalidDocument, "%s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateOptions checks a generation request against the closed enums.
func ValidateOptions(opts CodeGenerationOptions) error {
	if err := validatorInstance().Struct(opts); err != nil {
		return errors.Wrapf(errors.ErrInvalidDocument, "%s", strings.Join(describeValidation(err), "; "))
	}
	return nil
}

// UnknownTypes returns the distinct element types in the tree that are not
// part of the closed set, in first-seen order.
func UnknownTypes(elements []DesignElement) []string {
	var out []string
	seen := make(map[ElementType]bool)
	Walk(elements, func(el *DesignElement, _ int) bool {
		if !el.Type.Known() && !seen[el.Type] {
			seen[el.Type] = true
			out = append(out, string(el.Type))
		}
		return true
	})
	return out
}

func describeValidation(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return out
}
