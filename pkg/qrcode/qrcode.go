package qrcode

import (
	"slices"

	"github.com/matzehuels/qrgrid/pkg/element"
	"github.com/matzehuels/qrgrid/pkg/style"
)

// DefaultDotSize is the minimum edge length of a dark module.
var DefaultDotSize = style.Rems(0.25)

// DefaultStyle is the container style every QRCode starts from.
func DefaultStyle() style.Refinement {
	return style.Refinement{Background: style.Some(style.White)}
}

// DefaultDotStyle is the dot style every QRCode starts from.
func DefaultDotStyle() style.Refinement {
	return style.Refinement{
		Background: style.Some(style.Black),
		MinSize:    style.Square(DefaultDotSize),
	}
}

// QRCode is a renderable QR matrix. It is a value type: every styling
// method returns a modified copy and leaves the receiver untouched.
//
// Exactly one of data and colors is populated, depending on the
// constructor.
type QRCode struct {
	cols     uint16
	data     []bool
	colors   []Color
	style    style.Refinement
	dotStyle style.Refinement
}

// New builds a QRCode from cols and a row-major list of dark flags. data is
// copied. Its length is not checked; when it is not a multiple of cols the
// last grid row is short.
func New(cols uint16, data []bool) QRCode {
	return QRCode{
		cols:     cols,
		data:     slices.Clone(data),
		style:    DefaultStyle(),
		dotStyle: DefaultDotStyle(),
	}
}

// NewFromColors builds a QRCode directly from module colours. Only Dark
// modules are filled.
func NewFromColors(cols uint16, colors []Color) QRCode {
	return QRCode{
		cols:     cols,
		colors:   slices.Clone(colors),
		style:    DefaultStyle(),
		dotStyle: DefaultDotStyle(),
	}
}

// FromMatrix wraps m with the default styles.
func FromMatrix(m Matrix) QRCode {
	return New(m.cols, m.data)
}

// Cols is the number of modules per row.
func (q QRCode) Cols() uint16 { return q.cols }

// Len is the number of modules, dark or light.
func (q QRCode) Len() int {
	if q.colors != nil {
		return len(q.colors)
	}
	return len(q.data)
}

// Dark reports whether module i is filled. Out-of-range indices are light.
func (q QRCode) Dark(i int) bool {
	if i < 0 || i >= q.Len() {
		return false
	}
	if q.colors != nil {
		return q.colors[i] == Dark
	}
	return q.data[i]
}

// Matrix returns the dark flags as a Matrix.
func (q QRCode) Matrix() Matrix {
	if q.colors != nil {
		return Matrix{cols: q.cols, data: Bools(q.colors)}
	}
	return NewMatrix(q.cols, q.data)
}

// Style returns the container style.
func (q QRCode) Style() style.Refinement { return q.style }

// DotStyle returns the style applied to dark modules.
func (q QRCode) DotStyle() style.Refinement { return q.dotStyle }

// Refine merges r into the container style.
func (q QRCode) Refine(r style.Refinement) QRCode {
	q.style = q.style.Refine(r)
	return q
}

// RefineDotStyle merges r into the style applied to dark modules.
func (q QRCode) RefineDotStyle(r style.Refinement) QRCode {
	q.dotStyle = q.dotStyle.Refine(r)
	return q
}

// Bg sets the container background.
func (q QRCode) Bg(c style.Color) QRCode {
	return q.Refine(style.Refinement{Background: style.Some(c)})
}

// P sets padding on all four sides.
func (q QRCode) P(l style.Length) QRCode {
	return q.Refine(style.Refinement{Padding: style.Uniform(l)})
}

// Px sets left and right padding.
func (q QRCode) Px(l style.Length) QRCode {
	return q.Refine(style.Refinement{Padding: style.Edges{Left: style.Some(l), Right: style.Some(l)}})
}

// Py sets top and bottom padding.
func (q QRCode) Py(l style.Length) QRCode {
	return q.Refine(style.Refinement{Padding: style.Edges{Top: style.Some(l), Bottom: style.Some(l)}})
}

// Rounded sets the same radius on all four container corners.
func (q QRCode) Rounded(l style.Length) QRCode {
	return q.Refine(style.Refinement{CornerRadii: style.AllCorners(l)})
}

// W sets the container width.
func (q QRCode) W(l style.Length) QRCode {
	return q.Refine(style.Refinement{Size: style.SizeRefinement{Width: style.Some(l)}})
}

// H sets the container height.
func (q QRCode) H(l style.Length) QRCode {
	return q.Refine(style.Refinement{Size: style.SizeRefinement{Height: style.Some(l)}})
}

// Size sets width and height.
func (q QRCode) Size(l style.Length) QRCode {
	return q.Refine(style.Refinement{Size: style.Square(l)})
}

// Border sets the container border width and colour.
func (q QRCode) Border(width style.Length, c style.Color) QRCode {
	return q.Refine(style.Refinement{BorderWidth: style.Some(width), BorderColor: style.Some(c)})
}

// Render builds the element tree: a grid with Cols columns carrying the
// container style and one leaf per module. Dark leaves carry the dot style;
// the rest are unstyled placeholders.
func (q QRCode) Render() element.Element {
	n := q.Len()
	cells := make([]element.Element, n)
	for i := range n {
		if q.Dark(i) {
			cells[i] = element.Box().Refine(q.dotStyle)
		} else {
			cells[i] = element.Box()
		}
	}
	grid := element.NewGrid(q.cols).Refine(q.style)
	grid.Children = cells
	return grid
}
