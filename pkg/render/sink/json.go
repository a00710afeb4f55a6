package sink

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/qrgrid/pkg/render/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	content string
	level   string
	engine  string
}

// WithJSONContent records the encoded text.
func WithJSONContent(s string) JSONOption { return func(r *jsonRenderer) { r.content = s } }

// WithJSONLevel records the error correction level and engine.
func WithJSONLevel(level, engine string) JSONOption {
	return func(r *jsonRenderer) { r.level, r.engine = level, engine }
}

type jsonOutput struct {
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Cols       int       `json:"cols"`
	Rows       int       `json:"rows"`
	CellWidth  float64   `json:"cell_width"`
	CellHeight float64   `json:"cell_height"`
	Content    string    `json:"content,omitempty"`
	Level      string    `json:"level,omitempty"`
	Engine     string    `json:"engine,omitempty"`
	Matrix     []string  `json:"matrix"`
	Boxes      []jsonBox `json:"boxes"`
}

type jsonBox struct {
	Kind        string      `json:"kind"`
	Row         int         `json:"row"`
	Col         int         `json:"col"`
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Fill        string      `json:"fill"`
	Radii       *[4]float64 `json:"radii,omitempty"`
	BorderWidth float64     `json:"border_width,omitempty"`
	BorderColor string      `json:"border_color,omitempty"`
}

// RenderJSON serialises the layout. "matrix" has one string per row with
// '1' for a filled module and '0' otherwise.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      l.Width,
		Height:     l.Height,
		Cols:       l.Cols,
		Rows:       l.Rows,
		CellWidth:  l.CellW,
		CellHeight: l.CellH,
		Content:    r.content,
		Level:      r.level,
		Engine:     r.engine,
		Matrix:     matrixRows(l),
		Boxes:      make([]jsonBox, 0, len(l.Boxes)),
	}
	for _, b := range l.Boxes {
		jb := jsonBox{
			Kind:   b.Kind.String(),
			Row:    b.Row,
			Col:    b.Col,
			X:      b.X,
			Y:      b.Y,
			Width:  b.W,
			Height: b.H,
			Fill:   b.Fill.String(),
		}
		if !b.Radii.IsZero() {
			jb.Radii = &[4]float64{b.Radii.TopLeft, b.Radii.TopRight, b.Radii.BottomRight, b.Radii.BottomLeft}
		}
		if b.BorderWidth > 0 {
			jb.BorderWidth = b.BorderWidth
			jb.BorderColor = b.BorderColor.String()
		}
		out.Boxes = append(out.Boxes, jb)
	}
	return json.MarshalIndent(out, "", "  ")
}

func matrixRows(l layout.Layout) []string {
	grid := make([][]byte, l.Rows)
	for y := range grid {
		grid[y] = []byte(strings.Repeat("0", l.Cols))
	}
	for _, b := range l.Modules() {
		if b.Row < l.Rows && b.Col < l.Cols {
			grid[b.Row][b.Col] = '1'
		}
	}
	rows := make([]string, l.Rows)
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows
}
