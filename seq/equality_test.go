// SPDX-License-Identifier: MIT
// Package seq_test contains unit tests for structural equality.
package seq_test

import (
	"testing"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
	"github.com/katalvlaran/lvseq/variant"
	"github.com/katalvlaran/lvseq/vec"
	"github.com/stretchr/testify/require"
)

// TestEqualValueMismatch reports the first differing scalar.
func TestEqualValueMismatch(t *testing.T) {
	a := vec.Nested2[int]{{0, 1, 2}, {3, 4, 5, 6}}
	b := vec.Nested2[int]{{0, 1, 2}, {3, 4, 42, 6}}

	eq := seq.Equal[int](a, b)
	require.False(t, eq.Equal())
	require.Equal(t, seq.ValueMismatch, eq.Kind)
	require.Equal(t, dim.I2(1, 2), eq.Idx)
	require.Equal(t, 5, eq.Value1)
	require.Equal(t, 42, eq.Value2)
	require.Equal(t, "unequal value at [1, 2]: 5 != 42", eq.String())

	require.True(t, seq.CardEqual[int, int](a, b).Equal()) // shapes agree
}

// TestEqualCardMismatch reports the child count divergence at [1].
func TestEqualCardMismatch(t *testing.T) {
	a := vec.Nested2[int]{{0, 1, 2}, {3, 4, 5, 6}}
	b := vec.Nested2[int]{{0, 1, 2}, {3, 4, 5, 6, 42}}

	eq := seq.Equal[int](a, b)
	require.Equal(t, seq.CardMismatch, eq.Kind)
	require.Equal(t, dim.I1(1), eq.Idx)
	require.Equal(t, 4, eq.Card1)
	require.Equal(t, 5, eq.Card2)
	require.Equal(t, "unequal cardinality at [1]: 4 != 5", eq.String())

	ce := seq.CardEqual[int, int](a, b)
	require.Equal(t, eq.CardEquality, ce)
}

// TestEqualShapeBeforeValue checks that node counts are compared before the
// node's children and that the first divergence in index order wins.
func TestEqualShapeBeforeValue(t *testing.T) {
	a := vec.Nested2[int]{{0, 1}, {2, 3}}
	b := vec.Nested2[int]{{0, 1}, {2, 3}, {4}}

	eq := seq.Equal[int](a, b)
	require.Equal(t, seq.CardMismatch, eq.Kind)
	require.True(t, eq.Idx.IsEmpty()) // root counts differ
	require.Equal(t, 2, eq.Card1)
	require.Equal(t, 3, eq.Card2)

	c := vec.Nested2[int]{{9, 1}, {2, 3, 4}}
	eq = seq.Equal[int](a, c)
	require.Equal(t, seq.ValueMismatch, eq.Kind) // [0, 0] precedes the row-1 shape
	require.Equal(t, dim.I2(0, 0), eq.Idx)
}

// TestEqualAcrossBackings compares different concrete sequences.
func TestEqualAcrossBackings(t *testing.T) {
	f := variant.NewFun2(func(i, j int) int { return i*3 + j }).WithRectBounds(2, 3)
	n := vec.Nested2[int]{{0, 1, 2}, {3, 4, 5}}
	require.True(t, seq.Equal[int](f, n).Equal())
	require.Equal(t, "equal", seq.Equal[int](f, n).String())

	eq := seq.Equal[int](vec.Slice[int]{1}, n)
	require.Equal(t, seq.DimMismatch, eq.Kind)
	require.Equal(t, "unequal dimension: D1 != D2", eq.String())

	strs := vec.Nested2[string]{{"a", "b", "c"}, {"d", "e", "f"}}
	require.True(t, seq.CardEqual[int, string](n, strs).Equal())
}

// TestEqualFunc uses a custom scalar comparison.
func TestEqualFunc(t *testing.T) {
	a := vec.Slice[float64]{1, 2, 3}
	b := vec.Slice[float64]{1.0001, 2, 2.9999}
	near := func(x, y float64) bool { return x-y < 1e-3 && y-x < 1e-3 }

	require.True(t, seq.EqualFunc[float64](a, b, near).Equal())
	require.False(t, seq.Equal[float64](a, b).Equal())
}

// TestEqualUnboundedPanics ensures comparing unbounded levels fails loudly.
func TestEqualUnboundedPanics(t *testing.T) {
	a := variant.NewConstant(dim.D1, 1)
	b := variant.NewConstant(dim.D1, 1)
	requirePanicsIs(t, dim.ErrUnbounded, func() { seq.Equal[int](a, b) })
}

// TestKindString covers the names.
func TestKindString(t *testing.T) {
	require.Equal(t, "Same", seq.Same.String())
	require.Equal(t, "ValueMismatch", seq.ValueMismatch.String())
	require.Equal(t, "Kind(9)", seq.Kind(9).String())
}
