package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/matzehuels/qrgrid/pkg/render/layout"
	"github.com/matzehuels/qrgrid/pkg/style"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title string
	crisp bool
}

// WithTitle adds a <title> element, read by screen readers.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithCrispEdges disables anti-aliasing so adjacent modules do not show seams.
func WithCrispEdges() SVGOption { return func(r *svgRenderer) { r.crisp = true } }

func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s"`,
		num(l.Width), num(l.Height), num(l.Width), num(l.Height))
	if r.crisp {
		buf.WriteString(` shape-rendering="crispEdges"`)
	}
	buf.WriteString(">\n")
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}

	for _, b := range l.Boxes {
		writeBox(&buf, b)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeBox(buf *bytes.Buffer, b layout.Box) {
	x, y, w, h := b.X, b.Y, b.W, b.H
	// strokes are centred on the outline; inset so the border stays inside
	if b.BorderWidth > 0 {
		half := b.BorderWidth / 2
		x, y, w, h = x+half, y+half, w-b.BorderWidth, h-b.BorderWidth
	}

	buf.WriteString("  ")
	if b.Radii.Uniform() {
		fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s"`, num(x), num(y), num(w), num(h))
		if r := b.Radii.TopLeft; r > 0 {
			fmt.Fprintf(buf, ` rx="%s"`, num(r))
		}
	} else {
		fmt.Fprintf(buf, `<path d="%s"`, roundedRectPath(x, y, w, h, b.Radii))
	}

	writePaint(buf, "fill", b.Fill)
	if b.BorderWidth > 0 {
		writePaint(buf, "stroke", b.BorderColor)
		fmt.Fprintf(buf, ` stroke-width="%s"`, num(b.BorderWidth))
	}
	buf.WriteString("/>\n")
}

func writePaint(buf *bytes.Buffer, attr string, c style.Color) {
	if c.IsTransparent() {
		fmt.Fprintf(buf, ` %s="none"`, attr)
		return
	}
	fmt.Fprintf(buf, ` %s="%s"`, attr, c.Hex())
	if c.A != 0xff {
		fmt.Fprintf(buf, ` %s-opacity="%s"`, attr, num(c.Opacity()))
	}
}

func roundedRectPath(x, y, w, h float64, r layout.Radii) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "M%s,%s", num(x+r.TopLeft), num(y))
	fmt.Fprintf(&b, " H%s", num(x+w-r.TopRight))
	arc(&b, r.TopRight, x+w, y+r.TopRight)
	fmt.Fprintf(&b, " V%s", num(y+h-r.BottomRight))
	arc(&b, r.BottomRight, x+w-r.BottomRight, y+h)
	fmt.Fprintf(&b, " H%s", num(x+r.BottomLeft))
	arc(&b, r.BottomLeft, x, y+h-r.BottomLeft)
	fmt.Fprintf(&b, " V%s", num(y+r.TopLeft))
	arc(&b, r.TopLeft, x+r.TopLeft, y)
	b.WriteString(" Z")
	return b.String()
}

func arc(b *bytes.Buffer, r, x, y float64) {
	if r > 0 {
		fmt.Fprintf(b, " A%s,%s 0 0 1 %s,%s", num(r), num(r), num(x), num(y))
	}
}

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
