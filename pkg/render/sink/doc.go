// Package sink writes a [layout.Layout] in concrete output formats.
//
// # Formats
//
//   - SVG: vector output, one rect or path per filled module
//   - PNG: raster output drawn with fogleman/gg
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: geometry plus the module matrix, for other renderers
//   - Text: Unicode half blocks for terminals, coloured with lipgloss
//
// Text works on the element tree rather than the layout since a terminal
// cell is a fixed size:
//
//	fmt.Println(sink.RenderText(code.Render(), sink.WithQuietZone(2)))
//
// # Requirements
//
// PDF conversion needs librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [layout.Layout]: github.com/matzehuels/qrgrid/pkg/render/layout.Layout
package sink
