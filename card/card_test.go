// SPDX-License-Identifier: MIT
// Package card_test contains unit tests for the cardinality variants.
package card_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvseq/card"
	"github.com/katalvlaran/lvseq/dim"
	"github.com/stretchr/testify/require"
)

// requirePanicsIs asserts fn panics with an error value matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value is not an error: %v", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	fn()
}

// counts2 is a dimension-2 Counts over nested slices, used to drive D3 Variable shapes.
type counts2 [][]int

func (c counts2) Dim() dim.Dim { return dim.D2 }

func (c counts2) Card(sub dim.Idx) int {
	if sub.IsEmpty() {
		return len(c)
	}

	return len(c[sub.First()])
}

func (c counts2) At(idx dim.Idx) int { return c[idx.At(0)][idx.At(1)] }

// TestRectConsistency checks Card([])==n0 and Card([i0..ij])==n(j+1) for in-range prefixes.
func TestRectConsistency(t *testing.T) {
	lens := []int{2, 3, 4}
	c := card.Rect(lens...)
	require.Equal(t, dim.D3, c.Dim())
	require.Equal(t, 2, c.Card(dim.Idx{}))
	for i := 0; i < lens[0]; i++ {
		require.Equal(t, 3, c.Card(dim.I1(i)))
		for j := 0; j < lens[1]; j++ {
			require.Equal(t, 4, c.Card(dim.I2(i, j)))
		}
	}
	require.True(t, c.IsRectangular())
	require.Equal(t, lens, c.Lens())
	require.Equal(t, 24, card.Total(c))

	child := c.Child(1)
	require.True(t, card.Equal(card.Rect(3, 4), child))
	require.Equal(t, card.Fixed(4), child.Child(0)) // D1 children come back as Fixed

	requirePanicsIs(t, card.ErrSubIndex, func() { c.Card(dim.I3(0, 0, 0)) })
	requirePanicsIs(t, card.ErrNegativeCount, func() { card.Rect(1, -1) })
	requirePanicsIs(t, dim.ErrInvalidDim, func() { card.Rect() })
}

// TestFixed covers the dimension-1 base case.
func TestFixed(t *testing.T) {
	f := card.Fix(5)
	require.Equal(t, dim.D1, f.Dim())
	require.Equal(t, 5, card.NumChildren(f))
	require.True(t, f.IsRectangular())
	requirePanicsIs(t, card.ErrNoChildren, func() { f.Child(0) })
	requirePanicsIs(t, card.ErrNegativeCount, func() { card.Fix(-1) })
}

// TestEmptyAndUnbounded covers the degenerate shapes.
func TestEmptyAndUnbounded(t *testing.T) {
	e := card.NewEmpty(dim.D3)
	require.Equal(t, 0, e.Card(dim.I2(4, 4)))
	require.Equal(t, dim.D2, e.Child(7).Dim())
	require.True(t, e.IsRectangular())
	require.Equal(t, 0, card.Total(e))

	u := card.NewUnbounded(dim.D2)
	require.Equal(t, dim.MaxCard, u.Card(dim.Idx{}))
	require.Equal(t, dim.MaxCard, u.Card(dim.I1(123456)))
	require.True(t, u.IsRectangular())
	require.True(t, card.IsUnbounded(u))
	require.False(t, card.IsBounded(u))
	require.True(t, card.Equal(u, card.NewUnbounded(dim.D2)))
	requirePanicsIs(t, dim.ErrUnbounded, func() { card.Total(u) })
	requirePanicsIs(t, card.ErrNoChildren, func() { card.NewUnbounded(dim.D1).Child(0) })
}

// TestLengthsJagged covers the dimension-2 Variable shortcut.
func TestLengthsJagged(t *testing.T) {
	c := card.Lengths(4, 1, 3, 2)
	require.Equal(t, dim.D2, c.Dim())
	require.Equal(t, 4, c.Card(dim.Idx{}))
	require.Equal(t, 1, c.Card(dim.I1(1)))
	require.Equal(t, card.Fixed(3), c.Child(2))
	require.False(t, c.IsRectangular())
	require.Equal(t, 10, card.Total(c))

	require.True(t, card.Lengths(3, 3, 3).IsRectangular())
	require.True(t, card.Lengths().IsRectangular())
	require.True(t, card.Equal(card.Lengths(3, 3), card.Rect(2, 3)))
	requirePanicsIs(t, card.ErrNegativeCount, func() { card.Lengths(1, -2) })
}

// TestVariableD3 verifies counts lookups from a dimension-2 counts sequence.
func TestVariableD3(t *testing.T) {
	c := card.Var(counts2{{2, 2}, {1, 0, 3}})
	require.Equal(t, dim.D3, c.Dim())
	require.Equal(t, 2, c.Card(dim.Idx{}))
	require.Equal(t, 3, c.Card(dim.I1(1)))
	require.Equal(t, 3, c.Card(dim.I2(1, 2)))
	require.Equal(t, 0, c.Card(dim.I2(1, 1)))

	child := c.Child(1)
	require.Equal(t, dim.D2, child.Dim())
	require.Equal(t, 3, child.Card(dim.Idx{}))
	require.Equal(t, card.Fixed(1), child.Child(0))
	require.False(t, c.IsRectangular())
	require.Equal(t, 8, card.Total(c))

	rect := card.Var(counts2{{2, 2}, {2, 2}})
	require.True(t, rect.IsRectangular())
	lens, ok := card.RectLens(rect)
	require.True(t, ok)
	require.Equal(t, []int{2, 2, 2}, lens)
	require.True(t, card.Equal(rect, card.Rect(2, 2, 2)))
}

// TestEqualMismatch verifies dimension and count mismatches.
func TestEqualMismatch(t *testing.T) {
	require.False(t, card.Equal(card.Rect(2, 3), card.Rect(2, 3, 1)))
	require.False(t, card.Equal(card.Rect(2, 3), card.Rect(3, 3)))
	require.False(t, card.Equal(card.Lengths(3, 4), card.Rect(2, 3)))
	require.True(t, card.Equal(card.Fix(3), card.Rect(3)))
}

// TestOfShape adapts an arbitrary shape.
func TestOfShape(t *testing.T) {
	c := card.Of(dim.D3, counts3Shape{})
	require.Equal(t, dim.D3, c.Dim())
	require.Equal(t, 2, c.Card(dim.Idx{}))
	require.Equal(t, 2, c.Child(1).Card(dim.I1(0)))
	require.True(t, c.IsRectangular())
	r := card.Rect(1, 1)
	require.Equal(t, card.Cardinality(r), card.Of(dim.D2, r)) // cardinalities pass through
}

// counts3Shape is a rectangular 2x2x2 shape exposed only through dim.Shape.
type counts3Shape struct{}

func (counts3Shape) Card(dim.Idx) int { return 2 }

// TestString renders short descriptions.
func TestString(t *testing.T) {
	require.Equal(t, "Rect[2, 3]", card.String(card.Rect(2, 3)))
	require.Equal(t, "Fixed(4)", card.String(card.Fix(4)))
	require.Equal(t, "Unbounded(D2)", card.String(card.NewUnbounded(dim.D2)))
	require.Equal(t, "Empty(D1)", card.String(card.NewEmpty(dim.D1)))
	require.Equal(t, "Variable(D2)", card.String(card.Lengths(1)))
}
