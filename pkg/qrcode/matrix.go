package qrcode

import (
	"slices"

	"github.com/matzehuels/qrgrid/pkg/errors"
)

// Matrix is a column count and a row-major sequence of dark flags.
type Matrix struct {
	cols uint16
	data []bool
}

// NewMatrix copies data into a Matrix. The length is not checked against
// cols*cols; a mismatch yields a short final row.
func NewMatrix(cols uint16, data []bool) Matrix {
	return Matrix{cols: cols, data: slices.Clone(data)}
}

// NewStrictMatrix is NewMatrix for callers that require a square matrix.
func NewStrictMatrix(cols uint16, data []bool) (Matrix, error) {
	m := NewMatrix(cols, data)
	if err := m.Validate(); err != nil {
		return Matrix{}, err
	}
	return m, nil
}

// Validate reports an ErrCodeDataLength error unless len == cols*cols.
func (m Matrix) Validate() error {
	want := int(m.cols) * int(m.cols)
	if len(m.data) != want {
		return errors.New(errors.ErrCodeDataLength,
			"matrix has %d modules, want %d for %d columns", len(m.data), want, m.cols)
	}
	return nil
}

// Cols is the row width.
func (m Matrix) Cols() uint16 { return m.cols }

// Len is the number of modules stored.
func (m Matrix) Len() int { return len(m.data) }

// Rows is ceil(Len/Cols), or 0 when Cols is 0.
func (m Matrix) Rows() int {
	if m.cols == 0 {
		return 0
	}
	c := int(m.cols)
	return (len(m.data) + c - 1) / c
}

// Dark reports the module at column x, row y. Out-of-range positions are light.
func (m Matrix) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= int(m.cols) {
		return false
	}
	i := y*int(m.cols) + x
	return i < len(m.data) && m.data[i]
}

// Modules returns a copy of the flags.
func (m Matrix) Modules() []bool { return slices.Clone(m.data) }
