// Package pipeline runs the encode → layout → render pipeline for qrgrid.
//
// The CLI and the HTTP server share this package so both produce identical,
// identically cached artifacts for the same request.
//
// # Stages
//
//  1. Encode: compute the QR matrix with rsc.io/qr or go-qrcode
//  2. Layout: apply styles, build the element tree, resolve geometry
//  3. Render: produce each requested format, consulting the cache first
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Content: "https://example.com",
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/qrgrid/pkg/cache"
	"github.com/matzehuels/qrgrid/pkg/element"
	"github.com/matzehuels/qrgrid/pkg/errors"
	"github.com/matzehuels/qrgrid/pkg/qrcode"
	"github.com/matzehuels/qrgrid/pkg/render/layout"
	"github.com/matzehuels/qrgrid/pkg/style"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultScale is the PNG scale factor. With 0.25rem dots at 16px a
	// version 1 code comes out at 336px square.
	DefaultScale = 4.0

	// DefaultQuietZone is the light margin, in modules, around text output.
	DefaultQuietZone = 2

	MaxScale = 32.0

	// MaxEdge bounds the width and height of a layout in pixels, before
	// the PNG scale is applied.
	MaxEdge = 16384.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatText = "txt"
)

// Formats lists the supported output formats in display order.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatText}

// ContentTypes maps formats to HTTP content types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
	FormatText: "text/plain; charset=utf-8",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run. Style and DotStyle refine the
// defaults of qrcode.QRCode; leave them zero for the stock look.
type Options struct {
	Content string   `json:"content"`
	Level   string   `json:"level,omitempty"`
	Engine  string   `json:"engine,omitempty"`
	Formats []string `json:"formats,omitempty"`

	Style    style.Refinement `json:"-"`
	DotStyle style.Refinement `json:"-"`

	Scale      float64 `json:"scale,omitempty"`
	RemSize    float64 `json:"rem_size,omitempty"`
	QuietZone  int     `json:"quiet_zone,omitempty"`
	Title      string  `json:"title,omitempty"`
	CrispEdges bool    `json:"crisp_edges,omitempty"`

	// Refresh bypasses cache reads. Fresh results are still written.
	Refresh bool `json:"refresh,omitempty"`

	level     qrcode.Level
	engine    qrcode.Engine
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Code   qrcode.QRCode
	Tree   element.Element
	Layout layout.Layout

	// MatrixHash identifies the encoded modules; cache keys derive from it.
	MatrixHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats Stats

	// CacheHits counts formats served from the cache.
	CacheHits int
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Cols       int
	Modules    int
	EncodeTime time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid. Formats are case-sensitive.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateContent(o.Content); err != nil {
		return err
	}

	var err error
	if o.level, err = qrcode.ParseLevel(o.Level); err != nil {
		return err
	}
	if o.engine, err = qrcode.ParseEngine(o.Engine); err != nil {
		return err
	}
	o.Level, o.Engine = o.level.String(), string(o.engine)

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.Formats = dedupe(o.Formats)

	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale %v out of range (0, %v]", o.Scale, MaxScale)
	}
	if o.RemSize == 0 {
		o.RemSize = style.DefaultRemSize
	}
	if o.RemSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "rem size must be positive, got %v", o.RemSize)
	}
	if o.QuietZone == 0 {
		o.QuietZone = DefaultQuietZone
	}
	if o.QuietZone < 0 {
		o.QuietZone = 0
	}

	o.validated = true
	return nil
}

// CheckLayout rejects layouts larger than MaxEdge on either side.
func CheckLayout(l layout.Layout) error {
	if l.Width > MaxEdge || l.Height > MaxEdge {
		return errors.New(errors.ErrCodeInvalidInput,
			"rendered size %vx%v px exceeds the %v px limit; reduce padding or sizes", l.Width, l.Height, MaxEdge)
	}
	return nil
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// EncodeOptions returns the qrcode options for the validated level and engine.
func (o *Options) EncodeOptions() []qrcode.EncodeOption {
	return []qrcode.EncodeOption{qrcode.WithLevel(o.level), qrcode.WithEngine(o.engine)}
}

// StyleHash identifies everything about the options that changes the
// rendered look.
func (o *Options) StyleHash() string {
	// %+v prints Opt's unexported fields, which JSON would drop.
	return cache.Hash(fmt.Appendf(nil, "%+v|%+v|%v|%q|%v",
		o.Style, o.DotStyle, o.RemSize, o.Title, o.CrispEdges))
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, StyleHash: o.StyleHash()}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
	case FormatText:
		k.QuietZone = o.QuietZone
	case FormatJSON:
		// content, level and engine are embedded in JSON output
		k.StyleHash = cache.Hash(fmt.Appendf(nil, "%s|%q|%s|%s", k.StyleHash, o.Content, o.Level, o.Engine))
	}
	return k
}

// MatrixHash hashes the width and module pattern of code.
func MatrixHash(code qrcode.QRCode) string {
	m := code.Matrix()
	var b strings.Builder
	fmt.Fprintf(&b, "%d:", m.Cols())
	for _, dark := range m.Modules() {
		if dark {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return cache.Hash([]byte(b.String()))
}
