// Package style defines partial style records and their field-wise merge.
//
// # Overview
//
// A [Refinement] is a style record in which every attribute is optional.
// Unset attributes defer to whatever the record is refined onto, and in the
// end to the renderer's own defaults. Records are plain comparable values:
// copy them freely, compare them with ==.
//
// # Refinement
//
// [Refinement.Refine] merges an override onto a base. For every attribute,
// a value set in the override replaces the base's value; unset attributes
// leave the base untouched:
//
//	base := style.Refinement{Background: style.Some(style.White)}
//	dot := base.Refine(style.Refinement{
//	    CornerRadii: style.AllCorners(style.Px(10)),
//	})
//
// Refine never mutates its receiver, and sequential refinements are
// associative: a.Refine(b).Refine(c) equals a.Refine(b.Refine(c)).
//
// # Lengths and Colors
//
// [Length] carries a unit ([Pixels] or [Rem]) and is resolved to pixels by
// the layout stage. [Color] is an 8-bit RGBA value; [ParseColor] accepts hex
// strings and a small set of names.
package style
