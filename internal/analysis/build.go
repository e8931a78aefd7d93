package analysis

import (
	"context"

	"github.com/mj1618/uibuilder/internal/config"
	"github.com/mj1618/uibuilder/internal/logger"
)

// New builds the configured analyzer chain:
// logging > fallback > cache > rate limit > gemini.
//
// Without an API key the chain fails with ErrNotConfigured, unless fallback
// is enabled, in which case it always returns SampleResult.
func New(ctx context.Context, cfg *config.Config) (Analyzer, error) {
	log := logger.Named("analysis")

	if err := cfg.RequireGemini(); err != nil {
		if !cfg.Analysis.Fallback {
			return nil, err
		}
		log.Warnw("no gemini api key, serving sample results")
		return Wrap(Static(SampleResult()), WithLogging(log)), nil
	}

	gemini, err := NewGeminiAnalyzer(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		return nil, err
	}

	mws := []Middleware{WithLogging(log)}
	if cfg.Analysis.Fallback {
		mws = append(mws, WithFallback(SampleResult()))
	}
	mws = append(mws,
		WithCache(cfg.Analysis.CacheSize),
		WithRateLimit(cfg.Gemini.RequestsPerMinute),
	)
	return Wrap(gemini, mws...), nil
}
