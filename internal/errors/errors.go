// Package errors provides error handling for uibuilder.
//
// It re-exports github.com/cockroachdb/errors so callers get stack traces,
// wrapping and user-facing hints from a single import, and defines the
// sentinel errors shared across the generator, analysis and CLI layers.
//
//	if err := generator.Validate(opts); err != nil {
//	    return errors.Wrap(err, "generate")
//	}
//
//	if errors.Is(err, errors.ErrUnsupportedFramework) {
//	    // report the offending value
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Sentinel errors. Wrap or Mark them to add context while keeping errors.Is working.
var (
	// ErrUnsupportedFramework is returned when a generation request names a
	// framework outside react, angular, flutter and html.
	ErrUnsupportedFramework = New("unsupported framework")

	// ErrUnsupportedFormat is returned for an output format other than json or code.
	ErrUnsupportedFormat = New("unsupported output format")

	// ErrTreeTooDeep is returned when an element tree exceeds the nesting limit.
	ErrTreeTooDeep = New("element tree too deep")

	// ErrInvalidDocument indicates a design document that could not be decoded.
	ErrInvalidDocument = New("invalid design document")

	// ErrAnalysisFailed indicates the image analysis service returned no usable result.
	ErrAnalysisFailed = New("design analysis failed")

	// ErrNotConfigured indicates a required credential or endpoint is missing.
	ErrNotConfigured = New("not configured")
)

// Hints returns the user-facing hints attached anywhere in err's chain.
func Hints(err error) []string {
	if err == nil {
		return nil
	}
	return GetAllHints(err)
}
