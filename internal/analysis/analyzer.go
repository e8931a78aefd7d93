// Package analysis turns design images into element trees using a
// vision-language model.
package analysis

import (
	"context"

	"github.com/mj1618/uibuilder/internal/imageinput"
	"github.com/mj1618/uibuilder/internal/model"
)

// Analyzer extracts a design element tree from an image. description is
// optional free-text context supplied by the user.
type Analyzer interface {
	Name() string
	Analyze(ctx context.Context, img *imageinput.Image, description string) (*model.DesignAnalysisResult, error)
}

// Middleware decorates an Analyzer with a cross-cutting concern.
type Middleware func(Analyzer) Analyzer

// Wrap applies middlewares in left-to-right order:
// Wrap(inner, A, B) => A(B(inner)).
func Wrap(inner Analyzer, mws ...Middleware) Analyzer {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// AnalyzerFunc adapts a function to the Analyzer interface.
type AnalyzerFunc func(ctx context.Context, img *imageinput.Image, description string) (*model.DesignAnalysisResult, error)

// Name implements Analyzer.
func (f AnalyzerFunc) Name() string { return "func" }

// Analyze implements Analyzer.
func (f AnalyzerFunc) Analyze(ctx context.Context, img *imageinput.Image, description string) (*model.DesignAnalysisResult, error) {
	return f(ctx, img, description)
}
