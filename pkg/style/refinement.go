package style

// Edges holds one optional length per side, used for padding.
type Edges struct {
	Top, Right, Bottom, Left Opt[Length]
}

// Uniform returns Edges with l on every side.
func Uniform(l Length) Edges {
	return Edges{Top: Some(l), Right: Some(l), Bottom: Some(l), Left: Some(l)}
}

// Refine merges o over e.
func (e Edges) Refine(o Edges) Edges {
	return Edges{
		Top:    e.Top.Override(o.Top),
		Right:  e.Right.Override(o.Right),
		Bottom: e.Bottom.Override(o.Bottom),
		Left:   e.Left.Override(o.Left),
	}
}

// SizeRefinement holds an optional width and height.
type SizeRefinement struct {
	Width, Height Opt[Length]
}

// Square returns a SizeRefinement with both sides set to l.
func Square(l Length) SizeRefinement {
	return SizeRefinement{Width: Some(l), Height: Some(l)}
}

// Refine merges o over s.
func (s SizeRefinement) Refine(o SizeRefinement) SizeRefinement {
	return SizeRefinement{
		Width:  s.Width.Override(o.Width),
		Height: s.Height.Override(o.Height),
	}
}

// Corners holds one optional radius per corner.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft Opt[Length]
}

// AllCorners returns Corners with every radius set to l.
func AllCorners(l Length) Corners {
	return Corners{TopLeft: Some(l), TopRight: Some(l), BottomRight: Some(l), BottomLeft: Some(l)}
}

// Refine merges o over c.
func (c Corners) Refine(o Corners) Corners {
	return Corners{
		TopLeft:     c.TopLeft.Override(o.TopLeft),
		TopRight:    c.TopRight.Override(o.TopRight),
		BottomRight: c.BottomRight.Override(o.BottomRight),
		BottomLeft:  c.BottomLeft.Override(o.BottomLeft),
	}
}

// Refinement is a partial style record. Every attribute is optional.
type Refinement struct {
	Background  Opt[Color]
	Padding     Edges
	Size        SizeRefinement
	MinSize     SizeRefinement
	CornerRadii Corners
	BorderWidth Opt[Length]
	BorderColor Opt[Color]
}

// Refine returns r with every attribute set in o replacing r's value.
// Attributes o leaves unset keep r's value.
func (r Refinement) Refine(o Refinement) Refinement {
	return Refinement{
		Background:  r.Background.Override(o.Background),
		Padding:     r.Padding.Refine(o.Padding),
		Size:        r.Size.Refine(o.Size),
		MinSize:     r.MinSize.Refine(o.MinSize),
		CornerRadii: r.CornerRadii.Refine(o.CornerRadii),
		BorderWidth: r.BorderWidth.Override(o.BorderWidth),
		BorderColor: r.BorderColor.Override(o.BorderColor),
	}
}

// Merge folds rs left to right; later records win.
func Merge(rs ...Refinement) Refinement {
	var out Refinement
	for _, r := range rs {
		out = out.Refine(r)
	}
	return out
}

// IsZero reports whether no attribute is set.
func (r Refinement) IsZero() bool {
	return r == Refinement{}
}
