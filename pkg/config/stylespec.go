package config

import (
	"github.com/matzehuels/qrgrid/pkg/style"
)

// StyleSpec is the textual form of a style.Refinement. Lengths take "4px",
// "0.25rem" or a bare pixel count; colours take hex or a name. Empty
// strings leave the attribute unset.
type StyleSpec struct {
	Background  string `toml:"background"`
	Padding     string `toml:"padding"`
	PaddingX    string `toml:"padding_x"`
	PaddingY    string `toml:"padding_y"`
	Width       string `toml:"width"`
	Height      string `toml:"height"`
	Size        string `toml:"size"`
	MinSize     string `toml:"min_size"`
	Radius      string `toml:"radius"`
	BorderWidth string `toml:"border_width"`
	BorderColor string `toml:"border_color"`
}

// Refinement parses s. Later, more specific fields win: padding_x over
// padding, width over size.
func (s StyleSpec) Refinement() (style.Refinement, error) {
	var r style.Refinement
	p := parser{}

	r.Background = p.color(s.Background)
	r.BorderColor = p.color(s.BorderColor)
	r.BorderWidth = p.length(s.BorderWidth)

	if l := p.length(s.Padding); l.IsSet() {
		v, _ := l.Get()
		r.Padding = style.Uniform(v)
	}
	if l := p.length(s.PaddingX); l.IsSet() {
		r.Padding = r.Padding.Refine(style.Edges{Left: l, Right: l})
	}
	if l := p.length(s.PaddingY); l.IsSet() {
		r.Padding = r.Padding.Refine(style.Edges{Top: l, Bottom: l})
	}

	if l := p.length(s.Size); l.IsSet() {
		v, _ := l.Get()
		r.Size = style.Square(v)
	}
	r.Size = r.Size.Refine(style.SizeRefinement{Width: p.length(s.Width), Height: p.length(s.Height)})

	if l := p.length(s.MinSize); l.IsSet() {
		v, _ := l.Get()
		r.MinSize = style.Square(v)
	}
	if l := p.length(s.Radius); l.IsSet() {
		v, _ := l.Get()
		r.CornerRadii = style.AllCorners(v)
	}

	if p.err != nil {
		return style.Refinement{}, p.err
	}
	return r, nil
}

// parser keeps the first error so Refinement reads top to bottom.
type parser struct{ err error }

func (p *parser) length(s string) style.Opt[style.Length] {
	if s == "" || p.err != nil {
		return style.Opt[style.Length]{}
	}
	l, err := style.ParseLength(s)
	if err != nil {
		p.err = err
		return style.Opt[style.Length]{}
	}
	return style.Some(l)
}

func (p *parser) color(s string) style.Opt[style.Color] {
	if s == "" || p.err != nil {
		return style.Opt[style.Color]{}
	}
	c, err := style.ParseColor(s)
	if err != nil {
		p.err = err
		return style.Opt[style.Color]{}
	}
	return style.Some(c)
}
