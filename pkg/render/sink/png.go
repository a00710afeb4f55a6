package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/qrgrid/pkg/errors"
	"github.com/matzehuels/qrgrid/pkg/render/layout"
)

// MaxPixels bounds the raster size. A larger canvas is rejected rather than
// allocated.
const MaxPixels = 64 << 20

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG rasterises the layout. Unlike PDF it needs no external tools.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	fw, fh := math.Ceil(l.Width*r.scale), math.Ceil(l.Height*r.scale)
	if !(fw > 0 && fh > 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot rasterise an empty %vx%v layout", l.Width, l.Height)
	}
	if fw*fh > MaxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"png of %vx%v px exceeds the %d pixel limit; lower the scale or sizes", fw, fh, MaxPixels)
	}
	w, h := int(fw), int(fh)

	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)
	for _, b := range l.Boxes {
		drawBox(dc, b)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func drawBox(dc *gg.Context, b layout.Box) {
	if !b.Fill.IsTransparent() {
		roundedRect(dc, b.X, b.Y, b.W, b.H, b.Radii)
		dc.SetColor(b.Fill.NRGBA())
		dc.Fill()
	}
	if b.BorderWidth > 0 && !b.BorderColor.IsTransparent() {
		half := b.BorderWidth / 2
		roundedRect(dc, b.X+half, b.Y+half, b.W-b.BorderWidth, b.H-b.BorderWidth, b.Radii)
		dc.SetColor(b.BorderColor.NRGBA())
		dc.SetLineWidth(b.BorderWidth)
		dc.Stroke()
	}
}

// roundedRect traces a rectangle with per-corner radii. gg's arcs join the
// current point with a line, so only the straight edges need explicit moves.
func roundedRect(dc *gg.Context, x, y, w, h float64, r layout.Radii) {
	dc.NewSubPath()
	dc.MoveTo(x+r.TopLeft, y)
	dc.LineTo(x+w-r.TopRight, y)
	corner(dc, x+w-r.TopRight, y+r.TopRight, r.TopRight, -math.Pi/2, x+w, y)
	dc.LineTo(x+w, y+h-r.BottomRight)
	corner(dc, x+w-r.BottomRight, y+h-r.BottomRight, r.BottomRight, 0, x+w, y+h)
	dc.LineTo(x+r.BottomLeft, y+h)
	corner(dc, x+r.BottomLeft, y+h-r.BottomLeft, r.BottomLeft, math.Pi/2, x, y+h)
	dc.LineTo(x, y+r.TopLeft)
	corner(dc, x+r.TopLeft, y+r.TopLeft, r.TopLeft, math.Pi, x, y)
	dc.ClosePath()
}

// corner draws a quarter arc from angle a around (cx, cy), or a sharp corner
// at (px, py) when r is zero.
func corner(dc *gg.Context, cx, cy, r, a, px, py float64) {
	if r <= 0 {
		dc.LineTo(px, py)
		return
	}
	dc.DrawArc(cx, cy, r, a, a+math.Pi/2)
}
