package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/qrgrid/pkg/errors"
)

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Named colors.
var (
	White       = Color{0xff, 0xff, 0xff, 0xff}
	Black       = Color{0x00, 0x00, 0x00, 0xff}
	Red         = Color{0xff, 0x00, 0x00, 0xff}
	Green       = Color{0x00, 0xff, 0x00, 0xff}
	Blue        = Color{0x00, 0x00, 0xff, 0xff}
	Yellow      = Color{0xff, 0xff, 0x00, 0xff}
	Transparent = Color{}
)

var namedColors = map[string]Color{
	"white":       White,
	"black":       Black,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"transparent": Transparent,
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 0xff} }

// ParseColor parses a named color ("black", "red", ...) or a hex string
// ("#336699", "#369", with or without the leading '#').
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if s == "" {
		return Color{}, errors.New(errors.ErrCodeInvalidStyle, "empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Hex returns the color as "#rrggbb". Alpha is not included.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opacity returns the alpha channel as a value in [0, 1].
func (c Color) Opacity() float64 { return float64(c.A) / 0xff }

// IsTransparent reports whether the color is fully transparent.
func (c Color) IsTransparent() bool { return c.A == 0 }

// NRGBA converts to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.A != 0xff {
		return fmt.Sprintf("%s/%.2f", c.Hex(), c.Opacity())
	}
	return c.Hex()
}
