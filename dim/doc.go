// SPDX-License-Identifier: MIT

// Package dim defines the dimension model shared by every lvseq package.
//
// A sequence of dimension D is addressed by an Idx of arity D. An Idx of
// arity D splits into its leftmost component and an Idx of arity D-1, and
// the inverse LeftJoin glues them back together. All recursive algorithms
// over sequences (bounds checks, full traversal, equality, child views)
// are built from this single split/join primitive.
//
// Dimensions form a closed set D1..D8. D0 is the arity of the empty
// sub-index (the "root" of a sequence) and is never a sequence dimension.
//
//	D3 index [2, 0, 5]
//	   Split  -> (2, [0, 5])
//	   LeftJoin(2, [0, 5]) -> [2, 0, 5]
//
// Idx is a small comparable value type: it can be used as a map key and
// never allocates.
package dim
