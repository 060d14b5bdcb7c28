// SPDX-License-Identifier: MIT

// Package seq defines the core sequence contract.
//
// A Seq[T] of dimension D answers four questions:
//
//	Card(sub)  how many children below a sub-index (the cardinality protocol)
//	At(idx)    the scalar at a full index
//	Child(i)   the i-th dimension-(D-1) sequence
//	All()      every scalar, depth-first, left-to-right
//
// Everything else (TryAt, InBounds, Children, AllIn, Equal, CardEqual,
// IsRectangular, ...) is derived from those four by the package-level
// functions in this package, so a backing only implements the minimum.
//
// Two access paths:
//
//   - At is the trusting path. It never re-validates against the declared
//     cardinality; depending on the backing, an out-of-domain index may
//     return a value (constant, functional, sparse) or panic (slice-backed
//     adapters). Each backing documents its behaviour.
//   - TryAt is the checked path: it validates with InBounds first and
//     returns (zero, false) when the index is outside the declared shape.
//
// Full traversal (All, MutAll, ResetAll, Equal) over an unbounded
// sequence is a programmer error and panics with dim.ErrUnbounded; use
// AllIn with an explicit index iterator instead.
//
// Projection helper: Sub and SubMut implement "child of a child of a child"
// for any sequence by carrying an index prefix, so backings that do not
// have a natural child type can return ChildOf(s, i).
//
// Concurrency: the contract is single-threaded. Read-only backings may be
// shared across goroutines; mutable backings and caching wrappers may not.
package seq
