// SPDX-License-Identifier: MIT

// Package variant implements the four canonical sequences.
//
//	Constant[T]  always the same value                   domain: unbounded
//	Fun[T]       f(idx), never materialized              domain: unbounded
//	Sparse[T]    lookup[idx] if present, else a default  domain: unbounded
//	Cached[T]    lookup-or-compute over an inner Seq     domain: inner's
//
// Constant, Fun and Sparse start unbounded: At works at any index, but
// All/MutAll panic with dim.ErrUnbounded until a cardinality is attached
// with Bounded, WithRectBounds or WithVariableBounds. Attaching bounds never
// changes the production rule; an out-of-domain At on a bounded instance
// keeps returning what the rule produces.
//
// Concurrency: Constant and Fun are immutable values and may be shared.
// Sparse and Cached are NOT safe for concurrent use. Cached in particular
// writes to its lookup on every first read of an index; two goroutines
// reading the same Cached race on that lookup. Give each worker its own
// cache with Cached.Fresh.
package variant
