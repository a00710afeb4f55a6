// Package pkg provides the core libraries for qrgrid.
//
// # Overview
//
// qrgrid draws QR codes as grids of styled boxes: every module becomes a
// cell whose look comes from a partial style record, so dots can be
// coloured, sized, rounded or framed independently of the container. The
// pkg directory is organized into these areas:
//
//  1. [qrcode] - Module matrices, encoder adapters and the grid renderer
//  2. [style] and [element] - Style refinements and the element tree
//  3. [render] - Layout and output sinks (SVG, PNG, PDF, JSON, text)
//  4. [pipeline] - Orchestration (encode → layout → render) with caching
//  5. [cache], [config], [errors], [observability], [httputil] - Infrastructure
//
// # Architecture
//
// The typical data flow through qrgrid:
//
//	Text payload
//	     ↓
//	[qrcode] package (rsc.io/qr or go-qrcode → Matrix → QRCode)
//	     ↓
//	[element] tree (one styled leaf per module)
//	     ↓
//	[render/layout] package (absolute boxes)
//	     ↓
//	SVG/PNG/PDF/JSON/terminal output
//
// # Quick Start
//
//	code, err := qrcode.Encode("https://example.com", qrcode.WithLevel(qrcode.LevelQ))
//	if err != nil {
//	    return err
//	}
//	code = code.RefineDotStyle(style.Refinement{
//	    Background:  style.Some(style.RGB(0x1d, 0x4e, 0xd8)),
//	    CornerRadii: style.AllCorners(style.Rems(1)),
//	})
//	svg := sink.RenderSVG(layout.Build(code.Render()))
//
// Most callers go through [pipeline.Runner], which adds caching and emits
// the observability hooks.
//
// [qrcode]: github.com/matzehuels/qrgrid/pkg/qrcode
// [style]: github.com/matzehuels/qrgrid/pkg/style
// [element]: github.com/matzehuels/qrgrid/pkg/element
// [render]: github.com/matzehuels/qrgrid/pkg/render
// [render/layout]: github.com/matzehuels/qrgrid/pkg/render/layout
// [pipeline]: github.com/matzehuels/qrgrid/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/qrgrid/pkg/pipeline#Runner
// [cache]: github.com/matzehuels/qrgrid/pkg/cache
// [config]: github.com/matzehuels/qrgrid/pkg/config
// [errors]: github.com/matzehuels/qrgrid/pkg/errors
// [observability]: github.com/matzehuels/qrgrid/pkg/observability
// [httputil]: github.com/matzehuels/qrgrid/pkg/httputil
package pkg
