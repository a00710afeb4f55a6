// Package qrcode renders pre-computed QR matrices as element trees.
//
// # Overview
//
// A [QRCode] takes a column count and a flat, row-major sequence of module
// flags and turns it into a grid [element.Element]: one leaf per module,
// laid out in a fixed number of columns. Dark modules get the dot style;
// light modules become unstyled placeholders that keep the grid aligned.
//
//	code := qrcode.New(2, []bool{true, false, true, true})
//	tree := code.Render()
//
// The package does not encode QR codes itself. [Encode] and the [Source]
// adapters hand the work to rsc.io/qr or github.com/skip2/go-qrcode and
// convert their output.
//
// # Styling
//
// The grid container carries a white background by default; dots are black
// with a minimum size of 0.25rem. Both are [style.Refinement] values and can
// be refined without rebuilding the component:
//
//	code = code.
//	    Bg(style.RGB(0xee, 0xee, 0xee)).
//	    P(style.Rems(1)).
//	    RefineDotStyle(style.Refinement{
//	        Background:  style.Some(style.Red),
//	        CornerRadii: style.AllCorners(style.Px(10)),
//	    })
//
// # Colour-driven Variant
//
// [NewFromColors] accepts tri-state module colours and tests for [Dark]
// while rendering, instead of converting to booleans first. The result is
// the same tree [New] builds from [Bools] of the same colours.
//
// # Adapters
//
// [FromSource] converts an encoder's output. It fails with
// [ErrExceededWidth] when the code is wider than a uint16 column count can
// describe, and reads no modules in that case.
//
// [element.Element]: github.com/matzehuels/qrgrid/pkg/element.Element
// [style.Refinement]: github.com/matzehuels/qrgrid/pkg/style.Refinement
package qrcode
