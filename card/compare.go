// SPDX-License-Identifier: MIT
// Package card - structural comparisons over cardinalities.
//
// Determinism:
//   - Children are visited in index order; the first mismatch short-circuits.
//
// Notes:
//   - An unbounded level cannot be walked; comparisons there fall back to
//     the first child as a representative, which is exact for Unbounded and
//     for any shape whose children are produced by one rule.

package card

import (
	"github.com/katalvlaran/lvseq/dim"
)

// Equal reports whether a and b describe the same shape.
// Complexity: O(number of nodes) unless both are Rectangular (O(d)).
func Equal(a, b Cardinality) bool {
	if a.Dim() != b.Dim() {
		return false
	}
	ra, okA := a.(Rectangular)
	rb, okB := b.(Rectangular)
	if okA && okB {
		return ra.dims == rb.dims
	}
	n := NumChildren(a)
	if n != NumChildren(b) {
		return false
	}
	if a.Dim() == dim.D1 {
		return true
	}
	if n == dim.MaxCard {
		return Equal(a.Child(0), b.Child(0))
	}
	for i := 0; i < n; i++ {
		if !Equal(a.Child(i), b.Child(i)) {
			return false
		}
	}

	return true
}

// IsRectangular walks the children of c and reports whether every sibling
// at every depth has the same cardinality.
//
// Implementation:
//   - Stage 1: D1 and childless shapes are rectangular.
//   - Stage 2: the first child must itself be rectangular.
//   - Stage 3: every other child must Equal the first; stop at the first mismatch.
//
// Complexity: O(number of children * cost(Equal)) worst case.
func IsRectangular(c Cardinality) bool {
	if c.Dim() == dim.D1 {
		return true
	}
	n := NumChildren(c)
	if n == 0 {
		return true
	}
	first := c.Child(0)
	if !first.IsRectangular() {
		return false
	}
	if n == dim.MaxCard {
		return true
	}
	for i := 1; i < n; i++ {
		if !Equal(first, c.Child(i)) {
			return false
		}
	}

	return true
}

// RectLens returns the per-depth lengths of a rectangular shape and true,
// or nil and false when c is not rectangular. Absent depths below a
// zero-count level are reported as 0.
func RectLens(c Cardinality) ([]int, bool) {
	if r, ok := c.(Rectangular); ok {
		return r.Lens(), true
	}
	if !c.IsRectangular() {
		return nil, false
	}
	lens := make([]int, 0, c.Dim())
	cur := c
	for {
		n := NumChildren(cur)
		lens = append(lens, n)
		if cur.Dim() == dim.D1 {
			break
		}
		if n == 0 {
			for len(lens) < int(c.Dim()) {
				lens = append(lens, 0)
			}
			break
		}
		cur = cur.Child(0)
	}

	return lens, true
}

// Total returns the number of scalar elements described by c.
// Panics with dim.ErrUnbounded on an unbounded level.
func Total(c Cardinality) int {
	if r, ok := c.(Rectangular); ok {
		total := 1
		for _, n := range r.Lens() {
			if n == dim.MaxCard {
				panic(errUnbounded("Total"))
			}
			total *= n
		}

		return total
	}
	n := NumChildren(c)
	if n == dim.MaxCard {
		panic(errUnbounded("Total"))
	}
	if c.Dim() == dim.D1 {
		return n
	}
	total := 0
	for i := 0; i < n; i++ {
		total += Total(c.Child(i))
	}

	return total
}

// errUnbounded wraps dim.ErrUnbounded with a context tag.
func errUnbounded(ctx string) error {
	return wrap("card."+ctx, dim.ErrUnbounded)
}
