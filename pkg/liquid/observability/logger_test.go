package observability

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newTestLogger returns a logger writing JSON lines to buf.
func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func TestEnrichLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	enriched := EnrichLogger(logger, "welcome.liquid", "r-123")
	enriched.Info("rendering")

	out := buf.String()
	assert.Contains(t, out, `"template":"welcome.liquid"`)
	assert.Contains(t, out, `"render_id":"r-123"`)

	assert.Nil(t, EnrichLogger(nil, "t", "r"))
}

func TestLogHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	LogParseError(logger, "broken.liquid", errors.New("bad tag"))
	assert.Contains(t, buf.String(), "template parse failed")
	assert.Contains(t, buf.String(), "bad tag")

	buf.Reset()
	LogRenderComplete(logger, 1.5, true)
	assert.Contains(t, buf.String(), "render completed")
	assert.Contains(t, buf.String(), `"cache_hit":true`)

	buf.Reset()
	LogRenderError(logger, errors.New("boom"), 0.5)
	assert.Contains(t, buf.String(), "render failed")

	buf.Reset()
	LogCacheWarning(logger, "save", errors.New("disk full"))
	assert.Contains(t, buf.String(), "render cache degraded")
}

// TestLogHelpers_NilLogger verifies nil loggers are tolerated.
func TestLogHelpers_NilLogger(t *testing.T) {
	LogParseError(nil, "t", errors.New("x"))
	LogRenderComplete(nil, 0, false)
	LogRenderError(nil, errors.New("x"), 0)
	LogCacheWarning(nil, "load", errors.New("x"))
}
