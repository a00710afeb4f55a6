// Package server serves rendered QR codes over HTTP.
//
// Routes:
//
//	GET /healthz               liveness probe, 503 if the cache is unreachable
//	GET /presets               preset names as JSON
//	GET /qr.{format}?data=...  one artifact: svg, png, pdf, json or txt
//
// Query parameters on /qr mirror the render command's flags: level, engine,
// preset, bg, padding, radius, border_width, border_color, dot, dot_size,
// dot_radius, scale, quiet_zone, title and refresh.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/qrgrid/pkg/cache"
	"github.com/matzehuels/qrgrid/pkg/config"
	"github.com/matzehuels/qrgrid/pkg/errors"
	"github.com/matzehuels/qrgrid/pkg/httputil"
	"github.com/matzehuels/qrgrid/pkg/pipeline"
	"github.com/matzehuels/qrgrid/pkg/style"
)

// maxAge is the Cache-Control lifetime of artifacts. Identical queries
// always produce identical bytes.
const maxAge = 24 * time.Hour

// pingTimeout bounds the cache check in the health probe.
const pingTimeout = 2 * time.Second

// Server renders codes for HTTP clients through a shared pipeline runner.
type Server struct {
	runner *pipeline.Runner
	cfg    config.Config
	logger *log.Logger
}

// New creates a server. cfg supplies defaults, styles and presets.
func New(runner *pipeline.Runner, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, cfg: cfg, logger: logger}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(httputil.RequestID)
	r.Use(httputil.Observe(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Get("/presets", s.presets)
	r.Get("/qr.{format}", s.render)
	return r
}

// health reports 503 when a network cache is configured and unreachable.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if p, ok := s.runner.Cache.(cache.Pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			s.logger.Warn("cache unreachable", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("cache unavailable\n"))
			return
		}
	}
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) presets(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string][]string{"presets": s.cfg.PresetNames()})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	opts, err := s.options(r, format)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		if status := httputil.StatusFor(err); status == http.StatusInternalServerError {
			id, _ := httputil.GetRequestID(r.Context())
			s.logger.Error("render failed", "format", format, "error", err, "request_id", id)
		}
		httputil.WriteError(w, r, err)
		return
	}

	data := result.Artifacts[format]
	etag := strconv.Quote(s.runner.Keyer.ArtifactKey(result.MatrixHash, opts.ArtifactKeyOpts(format)))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h := w.Header()
	h.Set("Content-Type", pipeline.ContentTypes[format])
	h.Set("Content-Length", strconv.Itoa(len(data)))
	h.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
	h.Set("ETag", etag)
	if result.CacheHits > 0 {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	_, _ = w.Write(data)
}

// options builds pipeline options from the config defaults and the query.
func (s *Server) options(r *http.Request, format string) (pipeline.Options, error) {
	if err := pipeline.ValidateFormat(format); err != nil {
		return pipeline.Options{}, err
	}
	q := r.URL.Query()
	d := s.cfg.Defaults

	opts := pipeline.Options{
		Content:   q.Get("data"),
		Level:     orDefault(q.Get("level"), d.Level),
		Engine:    orDefault(q.Get("engine"), d.Engine),
		Formats:   []string{format},
		Scale:     d.Scale,
		RemSize:   d.RemSize,
		QuietZone: d.QuietZone,
		Title:     q.Get("title"),
		Refresh:   q.Get("refresh") == "1" || q.Get("refresh") == "true",
	}

	var err error
	if v := q.Get("scale"); v != "" {
		if opts.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "invalid scale %q", v)
		}
	}
	if v := q.Get("quiet_zone"); v != "" {
		if opts.QuietZone, err = strconv.Atoi(v); err != nil {
			return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "invalid quiet_zone %q", v)
		}
	}

	if opts.Style, opts.DotStyle, err = s.styles(q.Get); err != nil {
		return pipeline.Options{}, err
	}
	return opts, opts.ValidateAndSetDefaults()
}

// styles layers query parameters over the configured preset styles.
func (s *Server) styles(get func(string) string) (container, dot style.Refinement, err error) {
	container, dot, err = s.cfg.Styles(get("preset"))
	if err != nil {
		return container, dot, err
	}
	qc, err := config.StyleSpec{
		Background:  get("bg"),
		Padding:     get("padding"),
		Radius:      get("radius"),
		BorderWidth: get("border_width"),
		BorderColor: get("border_color"),
	}.Refinement()
	if err != nil {
		return container, dot, errors.Wrap(errors.ErrCodeInvalidStyle, err, "container style")
	}
	qd, err := config.StyleSpec{
		Background: get("dot"),
		MinSize:    get("dot_size"),
		Radius:     get("dot_radius"),
	}.Refinement()
	if err != nil {
		return container, dot, errors.Wrap(errors.ErrCodeInvalidStyle, err, "dot style")
	}
	return container.Refine(qc), dot.Refine(qd), nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// shutdownTimeout bounds how long in-flight requests may finish.
const shutdownTimeout = 5 * time.Second

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}
