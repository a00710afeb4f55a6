package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/qrgrid/pkg/cache"
	"github.com/matzehuels/qrgrid/pkg/errors"
	"github.com/matzehuels/qrgrid/pkg/observability"
	"github.com/matzehuels/qrgrid/pkg/qrcode"
	"github.com/matzehuels/qrgrid/pkg/render/layout"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state, so one Runner can serve concurrent
// requests with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long artifacts stay cached. Defaults to cache.ArtifactTTL.
	TTL time.Duration
}

// NewRunner creates a runner. A nil keyer means DefaultKeyer, a nil cache
// disables caching, and a nil logger means log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, TTL: cache.ArtifactTTL}
}

// Execute runs encode → layout → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	result := &Result{Artifacts: make(map[string][]byte, len(opts.Formats))}

	// Stage 1: Encode
	code, err := r.Encode(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Code = code
	result.MatrixHash = MatrixHash(code)
	result.Stats.Cols = int(code.Cols())
	result.Stats.Modules = code.Len()

	// Stage 2: Layout
	start := time.Now()
	styled := code.Refine(opts.Style).RefineDotStyle(opts.DotStyle)
	result.Tree = styled.Render()
	result.Layout = layout.Build(result.Tree, layout.WithRemSize(opts.RemSize))
	result.Stats.LayoutTime = time.Since(start)
	if err := CheckLayout(result.Layout); err != nil {
		return nil, err
	}
	observability.Pipeline().OnLayoutComplete(ctx, len(result.Layout.Boxes), result.Stats.LayoutTime)

	r.Logger.Debug("computed layout",
		"width", result.Layout.Width,
		"height", result.Layout.Height,
		"boxes", len(result.Layout.Boxes))

	// Stage 3: Render
	start = time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, hit, err := r.renderCached(ctx, format, result, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, err
		}
		result.Artifacts[format] = data
		if hit {
			result.CacheHits++
		}
	}
	result.Stats.RenderTime = time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, nil)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cache_hits", result.CacheHits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Encode validates opts and computes the QR matrix.
func (r *Runner) Encode(ctx context.Context, opts Options) (qrcode.QRCode, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return qrcode.QRCode{}, err
	}

	observability.Pipeline().OnEncodeStart(ctx, opts.Engine, opts.Level)
	start := time.Now()
	code, err := qrcode.Encode(opts.Content, opts.EncodeOptions()...)
	elapsed := time.Since(start)
	observability.Pipeline().OnEncodeComplete(ctx, opts.Engine, int(code.Cols()), elapsed, err)
	if err != nil {
		return qrcode.QRCode{}, err
	}

	r.Logger.Info("encoded content",
		"bytes", len(opts.Content),
		"level", opts.Level,
		"engine", opts.Engine,
		"modules", code.Cols(),
		"duration", elapsed)
	return code, nil
}

func (r *Runner) renderCached(ctx context.Context, format string, res *Result, opts Options) ([]byte, bool, error) {
	key := r.Keyer.ArtifactKey(res.MatrixHash, opts.ArtifactKeyOpts(format))

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "error", err)
		}
		if hit {
			observability.Cache().OnCacheHit(ctx, format)
			r.Logger.Debug("cache hit", "format", format)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, format)
	}

	data, err := Render(ctx, format, res.Tree, res.Layout, opts)
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInternal
		}
		return nil, false, errors.Wrap(code, err, "render %s", format)
	}

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "format", format, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
