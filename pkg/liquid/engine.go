package liquid

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MjAbuz/liquid/pkg/liquid/cache"
	"github.com/MjAbuz/liquid/pkg/liquid/config"
	"github.com/MjAbuz/liquid/pkg/liquid/expr"
	"github.com/MjAbuz/liquid/pkg/liquid/observability"
	"github.com/MjAbuz/liquid/pkg/liquid/registry"
)

// Engine parses template source into reusable Templates. An Engine is
// safe for concurrent use once constructed; all configuration happens
// through options at construction time.
type Engine struct {
	mode          expr.Mode
	maxChainDepth int
	logger        *slog.Logger
	metrics       observability.MetricsRecorder
	spans         observability.SpanManager
	cache         cache.Store
	tags          *registry.Registry[string, tagParserFunc]
	condParser    *expr.Parser
}

// NewEngine constructs an Engine. Without options it parses leniently,
// records nothing, and caches nothing.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		mode:          expr.ModeLax,
		maxChainDepth: expr.DefaultMaxChainDepth,
		metrics:       observability.NoopMetrics{},
		spans:         observability.NoopSpanManager{},
		tags:          registry.New[string, tagParserFunc](),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.condParser = expr.NewParser(e.mode, expr.WithMaxChainDepth(e.maxChainDepth))
	e.tags.Register("if", parseIfTag)
	return e
}

// NewEngineFromConfig constructs an Engine from loaded settings.
// Recognized keys: parse_mode ("lax" or "strict"), max_chain_depth,
// and cache_path (a SQLite render cache).
func NewEngineFromConfig(cfg config.Config, opts ...EngineOption) (*Engine, error) {
	var fromCfg []EngineOption

	mode, err := cfg.ParseMode()
	if err != nil {
		return nil, err
	}
	if mode == "strict" {
		fromCfg = append(fromCfg, WithStrictParsing())
	}
	if cfg.Has(config.KeyMaxChainDepth) {
		fromCfg = append(fromCfg, WithMaxChainDepth(cfg.Int(config.KeyMaxChainDepth, expr.DefaultMaxChainDepth)))
	}
	if path := cfg.String(config.KeyCachePath, ""); path != "" {
		store, err := cache.NewSQLiteStore(path)
		if err != nil {
			return nil, fmt.Errorf("open render cache: %w", err)
		}
		fromCfg = append(fromCfg, WithRenderCache(store))
	}

	return NewEngine(append(fromCfg, opts...)...), nil
}

// ParseString parses template source into a Template. The name labels
// the template in logs, spans, and error messages.
func (e *Engine) ParseString(name, source string) (*Template, error) {
	start := time.Now()
	tmpl, err := e.parseString(name, source)
	e.metrics.RecordParse(context.Background(), time.Since(start), err)
	if err != nil {
		observability.LogParseError(e.logger, name, err)
		return nil, err
	}
	return tmpl, nil
}

func (e *Engine) parseString(name, source string) (*Template, error) {
	tokens, err := scan(source)
	if err != nil {
		return nil, err
	}
	nodes, err := parseTokens(e, tokens)
	if err != nil {
		return nil, err
	}
	return &Template{name: name, source: source, nodes: nodes, engine: e}, nil
}

// ParseAndRender parses source and renders it against vars in one
// call. For templates rendered more than once, parse once with
// ParseString and reuse the Template.
func (e *Engine) ParseAndRender(source string, vars map[string]any) (string, error) {
	return e.ParseAndRenderContext(context.Background(), source, vars)
}

// ParseAndRenderContext is ParseAndRender carrying ctx through
// tracing and metrics.
func (e *Engine) ParseAndRenderContext(ctx context.Context, source string, vars map[string]any) (string, error) {
	tmpl, err := e.ParseString("inline", source)
	if err != nil {
		return "", err
	}
	return tmpl.RenderContext(ctx, vars)
}

// Close releases engine resources, currently the render cache if one
// is attached.
func (e *Engine) Close() error {
	if e.cache != nil {
		return e.cache.Close()
	}
	return nil
}

var defaultEngine = NewEngine()

// Render parses and renders source with the default lenient engine.
func Render(source string, vars map[string]any) (string, error) {
	return defaultEngine.ParseAndRender(source, vars)
}

// MustRender is Render but panics on error, for templates known to be
// valid at compile time.
func MustRender(source string, vars map[string]any) string {
	out, err := Render(source, vars)
	if err != nil {
		panic(err)
	}
	return out
}
