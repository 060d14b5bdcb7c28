// SPDX-License-Identifier: MIT

package card

import (
	"strconv"

	"github.com/katalvlaran/lvseq/dim"
)

// Cardinality describes the shape of a dimension-D sequence.
//
// Card(sub) returns the number of children below sub, for any sub-index
// of arity < D; Card(dim.Idx{}) is the number of dimension-(D-1) children.
// Child(i) returns the dimension-(D-1) cardinality of the i-th child and
// panics with ErrNoChildren on D1.
type Cardinality interface {
	dim.Shape

	// Dim returns the dimension this cardinality describes.
	Dim() dim.Dim

	// Child returns the cardinality governing the i-th child.
	Child(i int) Cardinality

	// IsRectangular reports whether all siblings at every depth share a count.
	IsRectangular() bool
}

// Compile-time conformance.
var (
	_ Cardinality = Fixed(0)
	_ Cardinality = Rectangular{}
	_ Cardinality = Variable{}
	_ Cardinality = Empty{}
	_ Cardinality = Unbounded{}
)

// ---------- Fixed ----------

// Fixed is the cardinality of a dimension-1 sequence of the given length.
type Fixed int

// Fix returns a Fixed cardinality; it panics on a negative length.
func Fix(n int) Fixed {
	if n < 0 {
		fail("Fix", ErrNegativeCount)
	}

	return Fixed(n)
}

// Dim returns D1.
func (Fixed) Dim() dim.Dim { return dim.D1 }

// Card returns the length; sub must be the empty sub-index.
func (f Fixed) Card(sub dim.Idx) int {
	mustSub("Fixed.Card", sub, dim.D1)

	return int(f)
}

// Child always panics: dimension-1 sequences have scalar elements only.
func (Fixed) Child(int) Cardinality {
	fail("Fixed.Child", ErrNoChildren)

	return nil
}

// IsRectangular is trivially true.
func (Fixed) IsRectangular() bool { return true }

// ---------- Rectangular ----------

// Rectangular is a dense shape [n0, n1, ..., nk]: every node at depth j has
// n(j) children. The dimension is the number of lengths.
type Rectangular struct {
	dims dim.Idx // lengths per depth; arity == dimension
}

// Rect builds a rectangular cardinality from the lengths at each depth.
// Panics with ErrNegativeCount on negative lengths and with the dim
// sentinels on zero or more than dim.MaxDim lengths.
func Rect(lens ...int) Rectangular {
	for _, n := range lens {
		if n < 0 {
			fail("Rect", ErrNegativeCount)
		}
	}
	r := Rectangular{dims: dim.Ix(lens...)}
	dim.MustValid(r.dims.Dim())

	return r
}

// Dim returns the number of depths.
func (r Rectangular) Dim() dim.Dim { return r.dims.Dim() }

// Card returns n(len(sub)).
func (r Rectangular) Card(sub dim.Idx) int {
	mustSub("Rectangular.Card", sub, r.dims.Dim())

	return r.dims.At(sub.Len())
}

// Child returns the shape [n1, ..., nk]; a single remaining length is returned as Fixed.
func (r Rectangular) Child(int) Cardinality {
	if r.dims.Dim() == dim.D1 {
		fail("Rectangular.Child", ErrNoChildren)
	}
	_, lower := r.dims.Split()
	if lower.Dim() == dim.D1 {
		return Fixed(lower.First())
	}

	return Rectangular{dims: lower}
}

// IsRectangular is true by construction.
func (Rectangular) IsRectangular() bool { return true }

// Lens returns the lengths per depth.
func (r Rectangular) Lens() []int { return r.dims.Values() }

// ---------- Empty ----------

// Empty reports zero children below every sub-index.
type Empty struct{ d dim.Dim }

// NewEmpty returns the empty cardinality of dimension d.
func NewEmpty(d dim.Dim) Empty {
	dim.MustValid(d)

	return Empty{d: d}
}

// Dim returns the dimension.
func (e Empty) Dim() dim.Dim { return e.d }

// Card returns 0.
func (e Empty) Card(sub dim.Idx) int {
	mustSub("Empty.Card", sub, e.d)

	return 0
}

// Child returns the empty cardinality one dimension lower.
func (e Empty) Child(int) Cardinality {
	if e.d <= dim.D1 {
		fail("Empty.Child", ErrNoChildren)
	}

	return Empty{d: e.d - 1}
}

// IsRectangular is vacuously true.
func (Empty) IsRectangular() bool { return true }

// ---------- Unbounded ----------

// Unbounded reports dim.MaxCard below every sub-index. Full traversal over
// an unbounded cardinality panics with dim.ErrUnbounded.
type Unbounded struct{ d dim.Dim }

// NewUnbounded returns the unbounded cardinality of dimension d.
func NewUnbounded(d dim.Dim) Unbounded {
	dim.MustValid(d)

	return Unbounded{d: d}
}

// Dim returns the dimension.
func (u Unbounded) Dim() dim.Dim { return u.d }

// Card returns dim.MaxCard.
func (u Unbounded) Card(sub dim.Idx) int {
	mustSub("Unbounded.Card", sub, u.d)

	return dim.MaxCard
}

// Child returns the unbounded cardinality one dimension lower.
func (u Unbounded) Child(int) Cardinality {
	if u.d <= dim.D1 {
		fail("Unbounded.Child", ErrNoChildren)
	}

	return Unbounded{d: u.d - 1}
}

// IsRectangular is vacuously true.
func (Unbounded) IsRectangular() bool { return true }

// ---------- helpers ----------

// NumChildren returns c.Card of the empty sub-index.
func NumChildren(c dim.Shape) int { return c.Card(dim.Idx{}) }

// IsBounded reports whether the root count is below dim.MaxCard.
func IsBounded(c dim.Shape) bool { return NumChildren(c) != dim.MaxCard }

// IsUnbounded reports whether the root count equals dim.MaxCard.
func IsUnbounded(c dim.Shape) bool { return NumChildren(c) == dim.MaxCard }

// String renders a short description, e.g. "Rect[2, 3]" or "Unbounded(D2)".
func String(c Cardinality) string {
	switch v := c.(type) {
	case Fixed:
		return "Fixed(" + strconv.Itoa(int(v)) + ")"
	case Rectangular:
		return "Rect" + v.dims.String()
	case Empty:
		return "Empty(" + v.d.String() + ")"
	case Unbounded:
		return "Unbounded(" + v.d.String() + ")"
	case Variable:
		return "Variable(" + v.Dim().String() + ")"
	default:
		return "Cardinality(" + c.Dim().String() + ")"
	}
}
