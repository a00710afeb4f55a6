package qrcode

import (
	"math"

	goqrcode "github.com/skip2/go-qrcode"
	"rsc.io/qr"

	"github.com/matzehuels/qrgrid/pkg/errors"
)

// ErrExceededWidth is returned when a source is wider than MaxWidth.
var ErrExceededWidth = errors.New(errors.ErrCodeExceededWidth,
	"qr code exceeds the maximum width of %d modules", MaxWidth)

// MaxWidth is the widest code a QRCode can describe.
const MaxWidth = math.MaxUint16

// Source is an encoded QR code: a square of Width()*Width() modules
// returned row-major by Colors.
type Source interface {
	Width() int
	Colors() []Color
}

// FromSource converts src into a QRCode. The width is checked before any
// module is read.
func FromSource(src Source) (QRCode, error) {
	w := src.Width()
	if w < 0 || w > MaxWidth {
		return QRCode{}, ErrExceededWidth
	}
	return New(uint16(w), Bools(src.Colors())), nil
}

// RSCSource adapts an rsc.io/qr code. rsc.io/qr emits no quiet zone.
func RSCSource(c *qr.Code) Source { return rscSource{c} }

type rscSource struct{ code *qr.Code }

func (s rscSource) Width() int { return s.code.Size }

func (s rscSource) Colors() []Color {
	n := s.code.Size
	out := make([]Color, 0, n*n)
	for y := range n {
		for x := range n {
			if s.code.Black(x, y) {
				out = append(out, Dark)
			} else {
				out = append(out, Light)
			}
		}
	}
	return out
}

// Skip2Source adapts a go-qrcode code. The bitmap is read as is, so set
// DisableBorder on q to leave out the quiet zone.
func Skip2Source(q *goqrcode.QRCode) Source { return skip2Source{q} }

type skip2Source struct{ code *goqrcode.QRCode }

func (s skip2Source) Width() int {
	w := 17 + 4*s.code.VersionNumber
	if !s.code.DisableBorder {
		w += 8
	}
	return w
}

func (s skip2Source) Colors() []Color {
	bitmap := s.code.Bitmap()
	out := make([]Color, 0, len(bitmap)*len(bitmap))
	for _, row := range bitmap {
		for _, dark := range row {
			if dark {
				out = append(out, Dark)
			} else {
				out = append(out, Light)
			}
		}
	}
	return out
}

// FromRSC adapts a code encoded by rsc.io/qr.
func FromRSC(c *qr.Code) (QRCode, error) { return FromSource(RSCSource(c)) }

// FromSkip2 adapts a code encoded by go-qrcode.
func FromSkip2(q *goqrcode.QRCode) (QRCode, error) { return FromSource(Skip2Source(q)) }
