// SPDX-License-Identifier: MIT
// Package seq - structural equality with the first point of divergence.
//
// Purpose:
//   - Compare two sequences depth-first, left-to-right, and report either
//     Same or the first divergence found in index order.
//   - At every node the cardinalities are compared before any child is
//     visited, so a shape mismatch is reported ahead of value mismatches
//     below the same node.
//
// Determinism:
//   - The reported divergence is the lexicographically first in index order.
//
// Complexity:
//   - O(total elements) Card + At calls; stops at the first divergence.

package seq

import (
	"fmt"

	"github.com/katalvlaran/lvseq/dim"
)

// Kind classifies the outcome of a structural comparison.
type Kind uint8

const (
	// Same means no divergence was found.
	Same Kind = iota
	// DimMismatch means the sequences have different dimensions.
	DimMismatch
	// CardMismatch means the child counts below Idx differ.
	CardMismatch
	// ValueMismatch means the scalars at Idx differ.
	ValueMismatch
)

// String returns a short name of the kind.
func (k Kind) String() string {
	switch k {
	case Same:
		return "Same"
	case DimMismatch:
		return "DimMismatch"
	case CardMismatch:
		return "CardMismatch"
	case ValueMismatch:
		return "ValueMismatch"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// CardEquality is the result of a shape-only comparison.
//   - Kind   - outcome.
//   - Idx    - sub-index whose counts differ (CardMismatch) or full index of
//     the differing scalars (ValueMismatch).
//   - Card1/Card2 - counts below Idx for CardMismatch; the dimensions of both
//     sides for DimMismatch.
type CardEquality struct {
	Kind  Kind
	Idx   dim.Idx
	Card1 int
	Card2 int
}

// Equal reports whether no divergence was found.
func (e CardEquality) Equal() bool { return e.Kind == Same }

// Equality is the result of a full comparison; Value1/Value2 are set for
// ValueMismatch.
type Equality[T any] struct {
	CardEquality
	Value1 T
	Value2 T
}

// String describes the outcome, e.g. "unequal value at [1, 2]: 5 != 42".
func (e Equality[T]) String() string {
	switch e.Kind {
	case ValueMismatch:
		return fmt.Sprintf("unequal value at %s: %v != %v", e.Idx, e.Value1, e.Value2)
	default:
		return e.CardEquality.String()
	}
}

// String describes the outcome of a shape-only comparison.
func (e CardEquality) String() string {
	switch e.Kind {
	case Same:
		return "equal"
	case DimMismatch:
		return fmt.Sprintf("unequal dimension: D%d != D%d", e.Card1, e.Card2)
	case CardMismatch:
		return fmt.Sprintf("unequal cardinality at %s: %d != %d", e.Idx, e.Card1, e.Card2)
	default:
		return "unequal value at " + e.Idx.String()
	}
}

// Equal compares a and b structurally with ==.
// Panics with dim.ErrUnbounded when a level of both sides is unbounded.
func Equal[T comparable](a, b Seq[T]) Equality[T] {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc compares a and b structurally using eq for scalars.
func EqualFunc[T any](a, b Seq[T], eq func(x, y T) bool) Equality[T] {
	var out Equality[T]
	if a.Dim() != b.Dim() {
		out.Kind, out.Card1, out.Card2 = DimMismatch, int(a.Dim()), int(b.Dim())

		return out
	}
	compareNode(a, b, dim.Idx{}, eq, &out)

	return out
}

// CardEqual compares only the shapes of a and b.
func CardEqual[T, U any](a Seq[T], b Seq[U]) CardEquality {
	var out CardEquality
	if a.Dim() != b.Dim() {
		out.Kind, out.Card1, out.Card2 = DimMismatch, int(a.Dim()), int(b.Dim())

		return out
	}
	compareCards(a, b, a.Dim(), dim.Idx{}, &out)

	return out
}

// compareNode records the first divergence below p into out; returns true once found.
func compareNode[T any](a, b Seq[T], p dim.Idx, eq func(x, y T) bool, out *Equality[T]) bool {
	n1, n2 := a.Card(p), b.Card(p)
	if n1 != n2 {
		out.Kind, out.Idx, out.Card1, out.Card2 = CardMismatch, p, n1, n2

		return true
	}
	if n1 == dim.MaxCard {
		Fail("seq.Equal "+p.String(), dim.ErrUnbounded)
	}
	leaf := p.Dim()+1 == a.Dim()
	for i := 0; i < n1; i++ {
		idx := p.Append(i)
		if !leaf {
			if compareNode(a, b, idx, eq, out) {
				return true
			}
			continue
		}
		v1, v2 := a.At(idx), b.At(idx)
		if !eq(v1, v2) {
			out.Kind, out.Idx = ValueMismatch, idx
			out.Value1, out.Value2 = v1, v2

			return true
		}
	}

	return false
}

// compareCards records the first cardinality divergence below p.
func compareCards(a, b dim.Shape, d dim.Dim, p dim.Idx, out *CardEquality) bool {
	n1, n2 := a.Card(p), b.Card(p)
	if n1 != n2 {
		out.Kind, out.Idx, out.Card1, out.Card2 = CardMismatch, p, n1, n2

		return true
	}
	if p.Dim()+1 == d {
		return false
	}
	if n1 == dim.MaxCard {
		Fail("seq.CardEqual "+p.String(), dim.ErrUnbounded)
	}
	for i := 0; i < n1; i++ {
		if compareCards(a, b, d, p.Append(i), out) {
			return true
		}
	}

	return false
}
