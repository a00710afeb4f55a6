package style

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/qrgrid/pkg/errors"
)

// DefaultRemSize is the number of pixels in one rem unless the layout is
// told otherwise.
const DefaultRemSize = 16.0

// Unit is the unit of a Length.
type Unit uint8

const (
	Pixels Unit = iota
	Rem
)

// Length is an absolute length in pixels or rems.
type Length struct {
	Value float64
	Unit  Unit
}

// Px returns a length in pixels.
func Px(v float64) Length { return Length{Value: v, Unit: Pixels} }

// Rems returns a length in rems.
func Rems(v float64) Length { return Length{Value: v, Unit: Rem} }

// ToPixels resolves l against the given rem size.
func (l Length) ToPixels(remSize float64) float64 {
	if l.Unit == Rem {
		return l.Value * remSize
	}
	return l.Value
}

// String formats l as "4px" or "0.25rem".
func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Unit == Rem {
		return v + "rem"
	}
	return v + "px"
}

// ParseLength parses "4px", "0.25rem" or a bare number (pixels).
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	unit := Pixels
	switch {
	case strings.HasSuffix(s, "rem"):
		unit = Rem
		s = strings.TrimSuffix(s, "rem")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Length{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid length %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{}, errors.New(errors.ErrCodeInvalidStyle, "invalid length %q", s)
	}
	if v < 0 {
		return Length{}, errors.New(errors.ErrCodeInvalidStyle, "negative length %q", s)
	}
	return Length{Value: v, Unit: unit}, nil
}
