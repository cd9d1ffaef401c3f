package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records template engine metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordParse records a template parse with its duration and error status.
	RecordParse(ctx context.Context, duration time.Duration, err error)

	// RecordRender records a render completion.
	RecordRender(ctx context.Context, success bool, duration time.Duration)

	// RecordCacheLookup records a render cache lookup.
	RecordCacheLookup(ctx context.Context, hit bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	parses        metric.Int64Counter
	parseErrors   metric.Int64Counter
	parseLatency  metric.Float64Histogram
	renders       metric.Int64Counter
	renderLatency metric.Float64Histogram
	cacheLookups  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("liquid")

	parses, err := meter.Int64Counter("liquid.template.parses",
		metric.WithDescription("Number of template parses"),
	)
	if err != nil {
		return nil, err
	}

	parseErrors, err := meter.Int64Counter("liquid.template.parse_errors",
		metric.WithDescription("Number of template parse failures"),
	)
	if err != nil {
		return nil, err
	}

	parseLatency, err := meter.Float64Histogram("liquid.template.parse_latency_ms",
		metric.WithDescription("Template parse latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	renders, err := meter.Int64Counter("liquid.template.renders",
		metric.WithDescription("Number of template renders"),
	)
	if err != nil {
		return nil, err
	}

	renderLatency, err := meter.Float64Histogram("liquid.template.render_latency_ms",
		metric.WithDescription("Template render latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cacheLookups, err := meter.Int64Counter("liquid.cache.lookups",
		metric.WithDescription("Number of render cache lookups"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		parses:        parses,
		parseErrors:   parseErrors,
		parseLatency:  parseLatency,
		renders:       renders,
		renderLatency: renderLatency,
		cacheLookups:  cacheLookups,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		return NoopMetrics{}
	}
	return m
}

// RecordParse implements MetricsRecorder.
func (m *otelMetrics) RecordParse(ctx context.Context, duration time.Duration, err error) {
	m.parses.Add(ctx, 1)
	m.parseLatency.Record(ctx, float64(duration.Microseconds())/1000.0)
	if err != nil {
		m.parseErrors.Add(ctx, 1)
	}
}

// RecordRender implements MetricsRecorder.
func (m *otelMetrics) RecordRender(ctx context.Context, success bool, duration time.Duration) {
	m.renders.Add(ctx, 1,
		metric.WithAttributes(attribute.Bool("success", success)),
	)
	m.renderLatency.Record(ctx, float64(duration.Microseconds())/1000.0)
}

// RecordCacheLookup implements MetricsRecorder.
func (m *otelMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	m.cacheLookups.Add(ctx, 1,
		metric.WithAttributes(attribute.Bool("hit", hit)),
	)
}
