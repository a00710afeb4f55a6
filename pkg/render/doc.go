// Package render turns QR element trees into output formats.
//
// Rendering happens in two steps. [layout] resolves an element tree into
// absolutely positioned boxes, and [sink] writes those boxes as SVG, PNG,
// PDF, JSON or terminal text:
//
//	tree := code.Render()
//	l := layout.Build(tree)
//	svg := sink.RenderSVG(l)
//	pdf, err := sink.RenderPDF(ctx, l)
//
// This package holds the SVG to PDF conversion shared by the sinks. It
// shells out to rsvg-convert from librsvg.
//
// [layout]: github.com/matzehuels/qrgrid/pkg/render/layout
// [sink]: github.com/matzehuels/qrgrid/pkg/render/sink
package render
