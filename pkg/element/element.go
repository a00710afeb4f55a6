// Package element provides a minimal declarative element tree.
//
// An [Element] is a styled box that either stacks its children ([Block]) or
// places them in a fixed-column grid ([Grid]). The tree carries no geometry;
// sizes and positions are resolved later by the render/layout package.
package element

import "github.com/matzehuels/qrgrid/pkg/style"

// Display selects how an element arranges its children.
type Display uint8

const (
	Block Display = iota
	Grid
)

func (d Display) String() string {
	if d == Grid {
		return "grid"
	}
	return "block"
}

// Element is a node in the element tree.
type Element struct {
	Style    style.Refinement
	Display  Display
	Cols     uint16
	Children []Element
}

// Box returns an empty block element.
func Box() Element { return Element{} }

// NewGrid returns an empty grid element with cols columns.
func NewGrid(cols uint16) Element {
	return Element{Display: Grid, Cols: cols}
}

// Refine merges r into the element's style.
func (e Element) Refine(r style.Refinement) Element {
	e.Style = e.Style.Refine(r)
	return e
}

// Child appends children. The receiver's slice is never shared with the result.
func (e Element) Child(children ...Element) Element {
	out := make([]Element, 0, len(e.Children)+len(children))
	out = append(out, e.Children...)
	e.Children = append(out, children...)
	return e
}

// IsLeaf reports whether the element has no children.
func (e Element) IsLeaf() bool { return len(e.Children) == 0 }

// Rows chunks the children into rows of Cols elements. The final row is short
// when the child count is not a multiple of Cols. Block elements yield one
// child per row; a grid with zero columns has no rows.
func (e Element) Rows() [][]Element {
	if len(e.Children) == 0 {
		return nil
	}
	cols := int(e.Cols)
	if e.Display != Grid {
		cols = 1
	} else if cols == 0 {
		return nil
	}
	rows := make([][]Element, 0, (len(e.Children)+cols-1)/cols)
	for start := 0; start < len(e.Children); start += cols {
		end := min(start+cols, len(e.Children))
		rows = append(rows, e.Children[start:end])
	}
	return rows
}

// Walk visits e and its descendants depth-first, parents before children.
func (e Element) Walk(fn func(depth int, e Element)) {
	e.walk(0, fn)
}

func (e Element) walk(depth int, fn func(int, Element)) {
	fn(depth, e)
	for _, c := range e.Children {
		c.walk(depth+1, fn)
	}
}

// Leaves returns the leaf elements in document order.
func (e Element) Leaves() []Element {
	var out []Element
	e.Walk(func(_ int, n Element) {
		if n.IsLeaf() {
			out = append(out, n)
		}
	})
	return out
}
