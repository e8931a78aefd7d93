package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mj1618/uibuilder/internal/errors"
	"github.com/mj1618/uibuilder/internal/imageinput"
	"github.com/mj1618/uibuilder/internal/model"
)

// -------- Logging --------

// WithLogging logs each call with its duration and element count.
func WithLogging(log *zap.SugaredLogger) Middleware {
	return func(next Analyzer) Analyzer {
		return &logged{next: next, log: log}
	}
}

type logged struct {
	next Analyzer
	log  *zap.SugaredLogger
}

func (l *logged) Name() string { return l.next.Name() }

func (l *logged) Analyze(ctx context.Context, img *imageinput.Image, description string) (*model.DesignAnalysisResult, error) {
	start := time.Now()
	res, err := l.next.Analyze(ctx, img, description)
	if err != nil {
		l.log.Warnw("analysis failed", "analyzer", l.next.Name(), "source", source(img), "elapsed", time.Since(start), "error", err)
		return nil, err
	}
	l.log.Infow("analysis complete", "analyzer", l.next.Name(), "source", source(img),
		"elements", model.Count(res.Elements), "confidence", res.Confidence, "elapsed", time.Since(start))
	return res, nil
}

func source(img *imageinput.Image) string {
	if img == nil {
		return ""
	}
	return img.Source
}

// -------- Rate limiting --------

// WithRateLimit allows at most rpm calls per minute, waiting for a token
// before each call. rpm <= 0 disables limiting.
func WithRateLimit(rpm int) Middleware {
	return func(next Analyzer) Analyzer {
		if rpm <= 0 {
			return next
		}
		return &rateLimited{next: next, limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60), 1)}
	}
}

type rateLimited struct {
	next    Analyzer
	limiter *rate.Limiter
}

func (r *rateLimited) Name() string { return r.next.Name() }

func (r *rateLimited) Analyze(ctx context.Context, img *imageinput.Image, description string) (*model.DesignAnalysisResult, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limit")
	}
	return r.next.Analyze(ctx, img, description)
}

// -------- Caching --------

// WithCache memoizes successful results keyed by image content and
// description. size <= 0 disables caching.
func WithCache(size int) Middleware {
	return func(next Analyzer) Analyzer {
		if size <= 0 {
			return next
		}
		cache, err := lru.New[string, *model.DesignAnalysisResult](size)
		if err != nil {
			return next
		}
		return &cached{next: next, cache: cache}
	}
}

type cached struct {
	next  Analyzer
	cache *lru.Cache[string, *model.DesignAnalysisResult]
}

func (c *cached) Name() string { return c.next.Name() }

func (c *cached) Analyze(ctx context.Context, img *imageinput.Image, description string) (*model.DesignAnalysisResult, error) {
	key := cacheKey(img, description)
	if res, ok := c.cache.Get(key); ok {
		return res, nil
	}
	res, err := c.next.Analyze(ctx, img, description)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, res)
	return res, nil
}

// cacheKey hashes the image bytes and description.
func cacheKey(img *imageinput.Image, description string) string {
	h := sha256.New()
	if img != nil {
		h.Write(img.Data)
	}
	h.Write([]byte{0})
	h.Write([]byte(description))
	return hex.EncodeToString(h.Sum(nil))
}

// -------- Fallback --------

// WithFallback answers with fallback when the wrapped analyzer fails for
// any reason other than cancellation.
func WithFallback(fallback *model.DesignAnalysisResult) Middleware {
	return func(next Analyzer) Analyzer {
		return &withFallback{next: next, fallback: fallback}
	}
}

type withFallback struct {
	next     Analyzer
	fallback *model.DesignAnalysisResult
}

func (f *withFallback) Name() string { return f.next.Name() }

func (f *withFallback) Analyze(ctx context.Context, img *imageinput.Image, description string) (*model.DesignAnalysisResult, error) {
	res, err := f.next.Analyze(ctx, img, description)
	if err == nil {
		return res, nil
	}
	if errors.Is(err, context.Canceled) {
		return nil, err
	}
	return f.fallback, nil
}
