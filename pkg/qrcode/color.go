package qrcode

// Color is the state of a single module as reported by an encoder.
type Color uint8

const (
	// Empty is a module the encoder has not assigned.
	Empty Color = iota
	Light
	Dark
)

func (c Color) String() string {
	switch c {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "empty"
	}
}

// Bools projects colors onto dark flags: true exactly for Dark.
func Bools(colors []Color) []bool {
	out := make([]bool, len(colors))
	for i, c := range colors {
		out[i] = c == Dark
	}
	return out
}
