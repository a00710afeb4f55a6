// Package layout resolves an element tree into pixel-positioned boxes.
//
// Only the shapes the QR renderer produces are supported: a root element
// whose children are leaves arranged in a grid (or a single column for
// block display). Every cell in the grid has the same size, the largest
// size or minimum size any child asks for. When the root sets its own
// size the cells shrink or grow to fill it instead.
package layout

import (
	"math"

	"github.com/matzehuels/qrgrid/pkg/element"
	"github.com/matzehuels/qrgrid/pkg/style"
)

// Kind distinguishes the container box from module boxes.
type Kind uint8

const (
	Container Kind = iota
	Module
)

func (k Kind) String() string {
	if k == Module {
		return "module"
	}
	return "container"
}

// Radii are corner radii in pixels, clockwise from the top left.
type Radii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// IsZero reports square corners.
func (r Radii) IsZero() bool { return r == Radii{} }

// Uniform reports whether all four radii are equal.
func (r Radii) Uniform() bool {
	return r.TopLeft == r.TopRight && r.TopRight == r.BottomRight && r.BottomRight == r.BottomLeft
}

// Box is a filled rectangle. Row and Col locate module boxes in the grid.
type Box struct {
	Kind        Kind
	Row, Col    int
	X, Y        float64
	W, H        float64
	Fill        style.Color
	Radii       Radii
	BorderWidth float64
	BorderColor style.Color
}

// Layout is the resolved geometry of an element tree. Boxes are in paint
// order: the container first, then filled modules row by row. Light
// modules occupy a cell but produce no box.
type Layout struct {
	Width, Height float64
	Cols, Rows    int
	CellW, CellH  float64
	// Origin of the first cell, inside padding and border.
	OffsetX, OffsetY float64
	Boxes            []Box
}

// Modules returns the module boxes.
func (l Layout) Modules() []Box {
	var out []Box
	for _, b := range l.Boxes {
		if b.Kind == Module {
			out = append(out, b)
		}
	}
	return out
}

// Option configures Build.
type Option func(*builder)

type builder struct {
	remSize  float64
	cellSize float64
}

// WithRemSize sets the pixel size of 1rem. Default: style.DefaultRemSize.
func WithRemSize(px float64) Option {
	return func(b *builder) {
		if px > 0 {
			b.remSize = px
		}
	}
}

// WithCellSize sets the cell edge used when no child sizes itself.
// Default: 0.25rem.
func WithCellSize(px float64) Option {
	return func(b *builder) {
		if px > 0 {
			b.cellSize = px
		}
	}
}

// Build lays out e.
func Build(e element.Element, opts ...Option) Layout {
	b := builder{remSize: style.DefaultRemSize}
	for _, opt := range opts {
		opt(&b)
	}
	if b.cellSize == 0 {
		b.cellSize = 0.25 * b.remSize
	}
	return b.build(e)
}

func (b builder) px(o style.Opt[style.Length]) float64 {
	l, ok := o.Get()
	if !ok {
		return 0
	}
	return math.Max(0, l.ToPixels(b.remSize))
}

func (b builder) build(e element.Element) Layout {
	rows := e.Rows()
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if e.Display == element.Grid && e.Cols > 0 && len(rows) > 0 {
		cols = int(e.Cols)
	}

	s := e.Style
	bw := b.px(s.BorderWidth)
	padL, padR := b.px(s.Padding.Left), b.px(s.Padding.Right)
	padT, padB := b.px(s.Padding.Top), b.px(s.Padding.Bottom)
	insetX := padL + padR + 2*bw
	insetY := padT + padB + 2*bw

	cellW, cellH := b.cellSize, b.cellSize
	if len(e.Children) > 0 {
		cellW, cellH = b.childCell(e.Children)
	}

	l := Layout{Cols: cols, Rows: len(rows)}
	l.Width = insetX + float64(cols)*cellW
	l.Height = insetY + float64(len(rows))*cellH

	if w, ok := s.Size.Width.Get(); ok {
		l.Width = math.Max(w.ToPixels(b.remSize), insetX)
		if cols > 0 {
			cellW = (l.Width - insetX) / float64(cols)
		}
	}
	if h, ok := s.Size.Height.Get(); ok {
		l.Height = math.Max(h.ToPixels(b.remSize), insetY)
		if len(rows) > 0 {
			cellH = (l.Height - insetY) / float64(len(rows))
		}
	}
	l.CellW, l.CellH = cellW, cellH
	l.OffsetX, l.OffsetY = bw+padL, bw+padT

	if bg, ok := s.Background.Get(); ok || bw > 0 {
		l.Boxes = append(l.Boxes, Box{
			Kind:        Container,
			W:           l.Width,
			H:           l.Height,
			Fill:        bgOr(bg, ok),
			Radii:       b.radii(s.CornerRadii, l.Width, l.Height),
			BorderWidth: bw,
			BorderColor: s.BorderColor.Or(style.Black),
		})
	}

	for y, row := range rows {
		for x, cell := range row {
			fill, ok := cell.Style.Background.Get()
			if !ok {
				continue
			}
			l.Boxes = append(l.Boxes, Box{
				Kind:  Module,
				Row:   y,
				Col:   x,
				X:     l.OffsetX + float64(x)*cellW,
				Y:     l.OffsetY + float64(y)*cellH,
				W:     cellW,
				H:     cellH,
				Fill:  fill,
				Radii: b.radii(cell.Style.CornerRadii, cellW, cellH),
			})
		}
	}
	return l
}

func bgOr(c style.Color, ok bool) style.Color {
	if ok {
		return c
	}
	return style.Transparent
}

// childCell is the largest size or min size any child resolves to. A
// dimension nobody sets falls back to the configured cell size.
func (b builder) childCell(children []element.Element) (w, h float64) {
	for _, c := range children {
		s := c.Style
		w = math.Max(w, math.Max(b.px(s.Size.Width), b.px(s.MinSize.Width)))
		h = math.Max(h, math.Max(b.px(s.Size.Height), b.px(s.MinSize.Height)))
	}
	if w == 0 {
		w = b.cellSize
	}
	if h == 0 {
		h = b.cellSize
	}
	return w, h
}

// radii resolves c, clamping each radius to half the shorter side.
func (b builder) radii(c style.Corners, w, h float64) Radii {
	limit := math.Min(w, h) / 2
	clamp := func(o style.Opt[style.Length]) float64 {
		return math.Min(b.px(o), limit)
	}
	return Radii{
		TopLeft:     clamp(c.TopLeft),
		TopRight:    clamp(c.TopRight),
		BottomRight: clamp(c.BottomRight),
		BottomLeft:  clamp(c.BottomLeft),
	}
}
