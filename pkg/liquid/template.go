package liquid

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MjAbuz/liquid/pkg/liquid/cache"
	"github.com/MjAbuz/liquid/pkg/liquid/observability"
)

// Template is a parsed template ready to render. A Template is
// immutable and safe for concurrent renders.
type Template struct {
	name   string
	source string
	nodes  []node
	engine *Engine
}

// Name returns the label the template was parsed under.
func (t *Template) Name() string {
	return t.name
}

// Render evaluates the template against vars.
func (t *Template) Render(vars map[string]any) (string, error) {
	return t.RenderContext(context.Background(), vars)
}

// RenderContext evaluates the template against vars, carrying ctx
// through tracing and metrics. Each call gets a fresh render ID for
// log and span correlation.
func (t *Template) RenderContext(ctx context.Context, vars map[string]any) (string, error) {
	e := t.engine
	renderID := uuid.NewString()
	logger := observability.EnrichLogger(e.logger, t.name, renderID)

	ctx, span := e.spans.StartRenderSpan(ctx, t.name, renderID)
	start := time.Now()

	cacheKey := t.cacheKey(logger, vars)
	if cacheKey != "" {
		if out, ok := t.loadCached(ctx, logger, cacheKey); ok {
			e.spans.EndSpanWithError(span, nil)
			observability.LogRenderComplete(logger, float64(time.Since(start).Microseconds())/1000, true)
			return out, nil
		}
	}

	var sb strings.Builder
	err := renderBody(t.nodes, &sb, vars)
	elapsed := time.Since(start)
	e.metrics.RecordRender(ctx, err == nil, elapsed)
	e.spans.EndSpanWithError(span, err)

	if err != nil {
		observability.LogRenderError(logger, err, float64(elapsed.Microseconds())/1000)
		return "", err
	}

	out := sb.String()
	if cacheKey != "" {
		if err := e.cache.Save(cacheKey, []byte(out)); err != nil {
			observability.LogCacheWarning(logger, "save", err)
		}
	}
	observability.LogRenderComplete(logger, float64(elapsed.Microseconds())/1000, false)
	return out, nil
}

// cacheKey derives the render-cache key, or "" when caching is off or
// the bindings cannot be canonicalized.
func (t *Template) cacheKey(logger *slog.Logger, vars map[string]any) string {
	if t.engine.cache == nil {
		return ""
	}
	key, err := cache.Key(t.source, vars)
	if err != nil {
		observability.LogCacheWarning(logger, "key", err)
		return ""
	}
	return key
}

// loadCached looks the key up in the render cache, recording the
// lookup either way. Store failures degrade to a cache miss.
func (t *Template) loadCached(ctx context.Context, logger *slog.Logger, key string) (string, bool) {
	out, err := t.engine.cache.Load(key)
	if err != nil {
		t.engine.metrics.RecordCacheLookup(ctx, false)
		if !errors.Is(err, cache.ErrNotFound) {
			observability.LogCacheWarning(logger, "load", err)
		}
		return "", false
	}
	t.engine.metrics.RecordCacheLookup(ctx, true)
	return string(out), true
}
