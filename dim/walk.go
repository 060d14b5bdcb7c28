// SPDX-License-Identifier: MIT
// Package dim - shape-driven descent: bounds checks and full traversal.
//
// Purpose:
//   - InBounds descends one dimension at a time and stops at the first
//     out-of-range component.
//   - Walk enumerates every full index of a bounded shape in row-major
//     nesting order (last component changes fastest).
//
// Determinism:
//   - Walk order is fixed: depth-first, left-to-right.
//   - Walk never loops forever: an unbounded level panics with ErrUnbounded.

package dim

import "iter"

// Shape is the minimal cardinality seam: the number of children below any
// sub-index whose arity is less than the sequence dimension.
// Every cardinality descriptor and every sequence satisfies it.
type Shape interface {
	Card(sub Idx) int
}

// InBounds reports whether every component of idx is within the count the
// shape declares at the corresponding depth.
//
// Implementation:
//   - Stage 1: start from the empty prefix.
//   - Stage 2: for each component k, compare against s.Card(prefix); bail out on violation.
//   - Stage 3: extend the prefix and continue.
//
// Complexity: O(d) Card calls.
func InBounds(idx Idx, s Shape) bool {
	var p Idx
	for k := Dim(0); k < idx.d; k++ {
		c := idx.v[k]
		if c < 0 || c >= s.Card(p) {
			return false
		}
		p = p.Append(c)
	}

	return true
}

// Walk returns an iterator over every full index of a dimension-d shape.
// It panics immediately with ErrUnbounded when the root level is unbounded,
// and lazily when a deeper level turns out to be unbounded.
func Walk(d Dim, s Shape) iter.Seq[Idx] {
	return WalkFrom(Idx{}, d, s)
}

// WalkFrom is Walk restricted to the subtree below prefix; yielded indices
// carry the prefix. prefix must have arity less than d.
func WalkFrom(prefix Idx, d Dim, s Shape) iter.Seq[Idx] {
	MustValid(d)
	if prefix.d >= d {
		fail("WalkFrom: prefix "+prefix.String()+" for "+d.String(), ErrArityMismatch)
	}
	if s.Card(prefix) == MaxCard {
		fail("Walk "+prefix.String(), ErrUnbounded)
	}

	return func(yield func(Idx) bool) {
		walk(prefix, d, s, yield)
	}
}

// walk yields every full index below p; returns false once the consumer stops.
func walk(p Idx, d Dim, s Shape, yield func(Idx) bool) bool {
	n := s.Card(p)
	if n == MaxCard {
		fail("Walk "+p.String(), ErrUnbounded)
	}
	if p.d+1 == d { // leaf level
		for i := 0; i < n; i++ {
			if !yield(p.Append(i)) {
				return false
			}
		}

		return true
	}
	for i := 0; i < n; i++ {
		if !walk(p.Append(i), d, s, yield) {
			return false
		}
	}

	return true
}
