// SPDX-License-Identifier: MIT

package vec

import (
	"iter"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
)

// Slice is a dimension-1 sequence over a []T.
type Slice[T any] []T

var _ seq.Mut[int] = Slice[int](nil)

// Dim returns D1.
func (Slice[T]) Dim() dim.Dim { return dim.D1 }

// Card returns len(s).
func (s Slice[T]) Card(dim.Idx) int { return len(s) }

// At returns s[idx[0]].
func (s Slice[T]) At(idx dim.Idx) T { return s[idx.First()] }

// Child panics: dimension-1 sequences have no children.
func (Slice[T]) Child(int) seq.Seq[T] {
	seq.Fail("vec.Slice.Child", seq.ErrNoChildren)

	return nil
}

// All yields the elements in order.
func (s Slice[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Set writes s[idx[0]] = v.
func (s Slice[T]) Set(idx dim.Idx, v T) { s[idx.First()] = v }

// AtMut returns &s[idx[0]].
func (s Slice[T]) AtMut(idx dim.Idx) *T { return &s[idx.First()] }

// ChildMut panics: dimension-1 sequences have no children.
func (Slice[T]) ChildMut(int) seq.Mut[T] {
	seq.Fail("vec.Slice.ChildMut", seq.ErrNoChildren)

	return nil
}

// MutAll applies f to every element.
func (s Slice[T]) MutAll(f func(*T)) {
	for i := range s {
		f(&s[i])
	}
}

// ResetAll overwrites every element with v.
func (s Slice[T]) ResetAll(v T) {
	for i := range s {
		s[i] = v
	}
}
