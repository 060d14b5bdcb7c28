// SPDX-License-Identifier: MIT
// Package seq - projection helper (child-of-child derivation).
//
// Purpose:
//   - Sub/SubMut view the subtree of a parent sequence below a fixed index
//     prefix: every query is answered by joining the prefix and delegating.
//   - Child of a Sub extends the prefix instead of nesting views, so a
//     deep descent costs one parent call per access regardless of depth.
//
// Ownership:
//   - Views borrow the parent; they never copy data and must not outlive it.

package seq

import (
	"iter"

	"github.com/katalvlaran/lvseq/dim"
)

// Sub is the read-only view of a parent sequence below a prefix.
type Sub[T any] struct {
	parent Seq[T]
	prefix dim.Idx
}

// SubMut is the mutable view of a parent sequence below a prefix.
type SubMut[T any] struct {
	Sub[T]
	mut Mut[T]
}

// Compile-time conformance.
var (
	_ Seq[int] = Sub[int]{}
	_ Mut[int] = SubMut[int]{}
)

// Descend returns the view of s below prefix. An empty prefix returns s.
// Panics with ErrPrefix unless prefix.Dim() < s.Dim().
func Descend[T any](s Seq[T], prefix dim.Idx) Seq[T] {
	if prefix.IsEmpty() {
		return s
	}
	if prefix.Dim() >= s.Dim() {
		Fail("seq.Descend("+prefix.String()+")", ErrPrefix)
	}
	switch sub := s.(type) {
	case Sub[T]:
		return Sub[T]{parent: sub.parent, prefix: sub.prefix.Join(prefix)}
	case SubMut[T]:
		return Sub[T]{parent: sub.parent, prefix: sub.prefix.Join(prefix)}
	}

	return Sub[T]{parent: s, prefix: prefix}
}

// DescendMut is Descend over a mutable sequence.
func DescendMut[T any](s Mut[T], prefix dim.Idx) Mut[T] {
	if prefix.IsEmpty() {
		return s
	}
	if prefix.Dim() >= s.Dim() {
		Fail("seq.DescendMut("+prefix.String()+")", ErrPrefix)
	}
	if sub, ok := s.(SubMut[T]); ok {
		full := sub.prefix.Join(prefix)

		return SubMut[T]{Sub: Sub[T]{parent: sub.parent, prefix: full}, mut: sub.mut}
	}

	return SubMut[T]{Sub: Sub[T]{parent: s, prefix: prefix}, mut: s}
}

// ChildOf returns the i-th child of s as a projection.
// Panics with ErrNoChildren on dimension-1 sequences.
func ChildOf[T any](s Seq[T], i int) Seq[T] {
	if s.Dim() <= dim.D1 {
		Fail("seq.ChildOf", ErrNoChildren)
	}

	return Descend(s, dim.I1(i))
}

// ChildMutOf returns the i-th mutable child of s as a projection.
func ChildMutOf[T any](s Mut[T], i int) Mut[T] {
	if s.Dim() <= dim.D1 {
		Fail("seq.ChildMutOf", ErrNoChildren)
	}

	return DescendMut(s, dim.I1(i))
}

// Parent returns the sequence this view projects from.
func (s Sub[T]) Parent() Seq[T] { return s.parent }

// Prefix returns the index prefix of this view.
func (s Sub[T]) Prefix() dim.Idx { return s.prefix }

// Dim returns the parent dimension minus the prefix arity.
func (s Sub[T]) Dim() dim.Dim { return s.parent.Dim() - s.prefix.Dim() }

// Card delegates to the parent with the prefix joined.
func (s Sub[T]) Card(sub dim.Idx) int { return s.parent.Card(s.prefix.Join(sub)) }

// At delegates to the parent with the prefix joined.
func (s Sub[T]) At(idx dim.Idx) T { return s.parent.At(s.prefix.Join(idx)) }

// Child extends the prefix by i.
func (s Sub[T]) Child(i int) Seq[T] { return ChildOf[T](s, i) }

// All walks the subtree below the prefix.
func (s Sub[T]) All() iter.Seq[T] { return AllOf[T](s) }

// Set writes through to the parent.
func (s SubMut[T]) Set(idx dim.Idx, v T) { s.mut.Set(s.prefix.Join(idx), v) }

// AtMut returns the parent's pointer for the joined index.
func (s SubMut[T]) AtMut(idx dim.Idx) *T { return s.mut.AtMut(s.prefix.Join(idx)) }

// ChildMut extends the prefix by i.
func (s SubMut[T]) ChildMut(i int) Mut[T] { return ChildMutOf[T](s, i) }

// MutAll applies f to every element of the subtree.
func (s SubMut[T]) MutAll(f func(*T)) { MutAllOf[T](s, f) }

// ResetAll overwrites every element of the subtree with v.
func (s SubMut[T]) ResetAll(v T) { ResetAllOf[T](s, v) }
