package liquid

import (
	"log/slog"

	"github.com/MjAbuz/liquid/pkg/liquid/cache"
	"github.com/MjAbuz/liquid/pkg/liquid/expr"
	"github.com/MjAbuz/liquid/pkg/liquid/observability"
)

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithStrictParsing makes condition parsing reject markup the lenient
// parser would tolerate: trailing words, unknown comparison operators,
// and dangling combinators all become syntax errors.
func WithStrictParsing() EngineOption {
	return func(e *Engine) {
		e.mode = expr.ModeStrict
	}
}

// WithMaxChainDepth bounds how many and/or-joined clauses a single
// condition may chain.
func WithMaxChainDepth(n int) EngineOption {
	return func(e *Engine) {
		e.maxChainDepth = n
	}
}

// WithLogger attaches a structured logger for parse and render events.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics attaches a metrics recorder for parse, render, and
// cache-lookup instrumentation.
func WithMetrics(m observability.MetricsRecorder) EngineOption {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithTracing attaches a span manager so each render runs inside a
// trace span.
func WithTracing(s observability.SpanManager) EngineOption {
	return func(e *Engine) {
		e.spans = s
	}
}

// WithRenderCache attaches a render output cache. Rendering is a pure
// function of source and bindings, so cached output is always valid
// for an identical source/vars pair.
func WithRenderCache(store cache.Store) EngineOption {
	return func(e *Engine) {
		e.cache = store
	}
}
