// Package generator renders design element trees as framework source code or
// as interchange JSON.
package generator

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/model"
)

// emitter renders a tree as source code for one framework.
type emitter interface {
	// Emit renders the full output file for the tree.
	Emit(elements []model.DesignElement, name string) string

	// Language returns the language tag of the output.
	Language() string
}

// emitterFor returns the code emitter for f.
func emitterFor(f model.Framework) (emitter, bool) {
	switch f {
	case model.FrameworkReact:
		return reactEmitter{}, true
	case model.FrameworkAngular:
		return angularEmitter{}, true
	case model.FrameworkFlutter:
		return flutterEmitter{}, true
	case model.FrameworkHTML:
		return htmlEmitter{}, true
	}
	return nil, false
}

// Generator turns element trees into GeneratedCode. It holds no state besides
// its clock and is safe for concurrent use.
type Generator struct {
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used for JSON export timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New creates a Generator. Without options it reads the wall clock.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate renders elements with the wall-clock Generator.
func Generate(elements []model.DesignElement, opts model.CodeGenerationOptions) (model.GeneratedCode, error) {
	return defaultGenerator.Generate(elements, opts)
}

// Generate renders elements for the framework and format in opts. It either
// returns complete output or an error, never partial output.
//
// Errors: ErrUnsupportedFramework for a framework outside the closed set,
// ErrUnsupportedFormat for an unknown output format, ErrTreeTooDeep when the
// tree nests deeper than model.MaxDepth. Element contents are not validated.
func (g *Generator) Generate(elements []model.DesignElement, opts model.CodeGenerationOptions) (model.GeneratedCode, error) {
	em, ok := emitterFor(opts.Framework)
	if !ok {
		return model.GeneratedCode{}, errors.WithHintf(
			errors.Wrapf(errors.ErrUnsupportedFramework, "framework %q", opts.Framework),
			"supported frameworks: react, angular, flutter, html")
	}
	format := opts.Format()
	if format != model.FormatJSON && format != model.FormatCode {
		return model.GeneratedCode{}, errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "output format %q", format),
			"supported formats: json, code")
	}
	if err := model.CheckDepth(elements); err != nil {
		return model.GeneratedCode{}, err
	}

	result := model.GeneratedCode{
		Format:    format,
		Framework: opts.Framework,
	}
	switch format {
	case model.FormatJSON:
		var (
			code string
			err  error
		)
		if opts.Framework == model.FrameworkAngular {
			code, err = angularJSON(elements, g.now())
		} else {
			code, err = designJSON(elements, g.now())
		}
		if err != nil {
			return model.GeneratedCode{}, errors.Wrap(err, "encode json")
		}
		result.Code = code
		result.Language = model.LanguageJSON
	case model.FormatCode:
		result.Code = em.Emit(elements, opts.Name())
		result.Language = em.Language()
	}
	return result, nil
}

// GenerateAll renders elements for every framework concurrently. Results are
// returned in model.Frameworks order; the first failure cancels the rest.
func (g *Generator) GenerateAll(ctx context.Context, elements []model.DesignElement, format model.OutputFormat, name string) ([]model.GeneratedCode, error) {
	results := make([]model.GeneratedCode, len(model.Frameworks))
	eg, ctx := errgroup.WithContext(ctx)
	for i, fw := range model.Frameworks {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			gc, err := g.Generate(elements, model.CodeGenerationOptions{
				Framework:     fw,
				OutputFormat:  format,
				ComponentName: name,
			})
			if err != nil {
				return errors.Wrapf(err, "generate %s", fw)
			}
			results[i] = gc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// GenerateAll renders elements for every framework with the wall-clock Generator.
func GenerateAll(ctx context.Context, elements []model.DesignElement, format model.OutputFormat, name string) ([]model.GeneratedCode, error) {
	return defaultGenerator.GenerateAll(ctx, elements, format, name)
}
