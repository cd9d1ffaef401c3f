// Package observability provides production-grade observability for
// template parsing and rendering: structured logging, metrics, and
// distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import "log/slog"

// EnrichLogger adds render context to a logger.
// Returns a new logger with template and render_id fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "welcome.liquid", "r-123")
//	enriched.Info("rendering") // includes template, render_id
func EnrichLogger(logger *slog.Logger, template, renderID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("template", template),
		slog.String("render_id", renderID),
	)
}

// LogParseError logs a template parse failure.
func LogParseError(logger *slog.Logger, template string, err error) {
	if logger == nil {
		return
	}
	logger.Error("template parse failed",
		slog.String("template", template),
		slog.String("error", err.Error()),
	)
}

// LogRenderComplete logs successful render completion.
func LogRenderComplete(logger *slog.Logger, durationMs float64, cacheHit bool) {
	if logger == nil {
		return
	}
	logger.Info("render completed",
		slog.Float64("duration_ms", durationMs),
		slog.Bool("cache_hit", cacheHit),
	)
}

// LogRenderError logs render failure.
func LogRenderError(logger *slog.Logger, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("render failed",
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCacheWarning logs a non-fatal render cache problem.
// Cache failures never fail a render.
func LogCacheWarning(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("render cache degraded",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}
