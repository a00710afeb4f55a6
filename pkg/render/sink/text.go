package sink

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/qrgrid/pkg/element"
	"github.com/matzehuels/qrgrid/pkg/style"
)

// TextOption configures terminal rendering via [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	quiet    int
	renderer *lipgloss.Renderer
	invert   bool
}

// WithQuietZone sets the light margin in modules around the code. Default: 2.
func WithQuietZone(n int) TextOption {
	return func(r *textRenderer) {
		if n >= 0 {
			r.quiet = n
		}
	}
}

// WithRenderer sets the lipgloss renderer that decides the colour profile.
// A renderer on a non-terminal writer produces plain text.
func WithRenderer(lr *lipgloss.Renderer) TextOption {
	return func(r *textRenderer) { r.renderer = lr }
}

// WithPlainText drops all colour codes.
func WithPlainText() TextOption {
	return WithRenderer(lipgloss.NewRenderer(io.Discard))
}

// WithInvert draws light modules instead of dark ones, for terminals that
// show plain text light on dark.
func WithInvert() TextOption { return func(r *textRenderer) { r.invert = true } }

// RenderText draws the grid with Unicode half blocks, two module rows per
// line. Filled modules use the dot colour and the rest the container
// background.
func RenderText(e element.Element, opts ...TextOption) string {
	r := textRenderer{quiet: 2}
	for _, opt := range opts {
		opt(&r)
	}
	if r.renderer == nil {
		r.renderer = lipgloss.DefaultRenderer()
	}

	rows := e.Rows()
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}

	fg := style.Black
	grid := make([][]bool, len(rows))
	for y, row := range rows {
		grid[y] = make([]bool, cols)
		for x, cell := range row {
			if c, ok := cell.Style.Background.Get(); ok {
				grid[y][x] = true
				fg = c
			}
		}
	}
	bg := e.Style.Background.Or(style.White)

	q := r.quiet
	dark := func(x, y int) bool {
		x, y = x-q, y-q
		on := y >= 0 && y < len(grid) && x >= 0 && x < cols && grid[y][x]
		return on != r.invert
	}

	paint := r.renderer.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))

	width, height := cols+2*q, len(rows)+2*q
	lines := make([]string, 0, (height+1)/2)
	var line strings.Builder
	for y := 0; y < height; y += 2 {
		line.Reset()
		for x := range width {
			top, bottom := dark(x, y), y+1 < height && dark(x, y+1)
			line.WriteRune(halfBlock(top, bottom))
		}
		lines = append(lines, paint.Render(line.String()))
	}
	return strings.Join(lines, "\n")
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
