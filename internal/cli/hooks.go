package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrgrid/pkg/observability"
)

// logHooks forwards pipeline, cache and HTTP events to the logger at debug
// level, so -v shows what each stage did.
type logHooks struct {
	logger *log.Logger
}

// installHooks registers logHooks for every event family.
func installHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnEncodeStart(_ context.Context, engine, level string) {
	h.logger.Debug("encode start", "engine", engine, "level", level)
}

func (h logHooks) OnEncodeComplete(_ context.Context, engine string, cols int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("encode failed", "engine", engine, "duration", d, "error", err)
		return
	}
	h.logger.Debug("encode done", "engine", engine, "cols", cols, "duration", d)
}

func (h logHooks) OnLayoutComplete(_ context.Context, boxes int, d time.Duration) {
	h.logger.Debug("layout done", "boxes", boxes, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "duration", d, "error", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, format string) {
	h.logger.Debug("cache hit", "format", format)
}

func (h logHooks) OnCacheMiss(_ context.Context, format string) {
	h.logger.Debug("cache miss", "format", format)
}

func (h logHooks) OnCacheSet(_ context.Context, format string, size int) {
	h.logger.Debug("cache set", "format", format, "bytes", size)
}

// HTTP requests are already logged by httputil.Observe; these only trace.
func (h logHooks) OnRequest(_ context.Context, method, path string) {}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	if status >= 500 {
		h.logger.Warn("server error", "method", method, "path", path, "status", status, "duration", d)
	}
}
