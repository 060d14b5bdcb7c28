// SPDX-License-Identifier: MIT

package seq

import (
	"iter"

	"github.com/katalvlaran/lvseq/dim"
)

// Seq is an N-dimensional indexable sequence of T.
//
// Contract:
//   - Dim is constant for the lifetime of the value.
//   - Card(sub) is defined for sub-indices of arity < Dim() (see card.Cardinality).
//   - At(idx) takes an index of arity Dim(); it is not bounds-checked.
//   - Child(i) returns a dimension-(Dim()-1) sequence with
//     Child(i).At(r) == At(dim.LeftJoin(i, r)); it panics with
//     ErrNoChildren on dimension 1.
//   - All() yields every scalar in row-major nesting order and panics with
//     dim.ErrUnbounded when the sequence is unbounded.
type Seq[T any] interface {
	Dim() dim.Dim
	Card(sub dim.Idx) int
	At(idx dim.Idx) T
	Child(i int) Seq[T]
	All() iter.Seq[T]
}

// Mut is a Seq backed by writable storage.
//
// AtMut returns a pointer that stays valid until the next structural change
// of the backing (for lookup-backed sequences: until Clear). MutAll and
// ResetAll share All's restriction on unbounded domains.
type Mut[T any] interface {
	Seq[T]
	Set(idx dim.Idx, v T)
	AtMut(idx dim.Idx) *T
	ChildMut(i int) Mut[T]
	MutAll(f func(*T))
	ResetAll(v T)
}
