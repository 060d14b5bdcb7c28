// SPDX-License-Identifier: MIT
package dim_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/stretchr/testify/require"
)

// jagged2 is a dimension-2 test shape with per-row lengths.
type jagged2 []int

func (j jagged2) Card(sub dim.Idx) int {
	if sub.IsEmpty() {
		return len(j)
	}

	return j[sub.First()]
}

// unbounded reports MaxCard at every level.
type unbounded struct{}

func (unbounded) Card(dim.Idx) int { return dim.MaxCard }

// TestInBounds verifies level-by-level descent with short-circuit.
func TestInBounds(t *testing.T) {
	s := jagged2{3, 0, 2}
	require.True(t, dim.InBounds(dim.I2(0, 2), s))
	require.True(t, dim.InBounds(dim.I2(2, 1), s))
	require.False(t, dim.InBounds(dim.I2(0, 3), s))
	require.False(t, dim.InBounds(dim.I2(1, 0), s)) // empty row
	require.False(t, dim.InBounds(dim.I2(3, 0), s)) // short-circuits before indexing j[3]
	require.True(t, dim.InBounds(dim.I1(2), s))     // sub-index check
}

// TestWalkJagged verifies row-major nesting order over a jagged shape.
func TestWalkJagged(t *testing.T) {
	s := jagged2{2, 0, 1}
	got := slices.Collect(dim.Walk(dim.D2, s))
	want := []dim.Idx{dim.I2(0, 0), dim.I2(0, 1), dim.I2(2, 0)}
	require.Equal(t, want, got)
}

// TestWalkFrom restricts traversal to one child.
func TestWalkFrom(t *testing.T) {
	s := jagged2{2, 3}
	got := slices.Collect(dim.WalkFrom(dim.I1(1), dim.D2, s))
	require.Equal(t, []dim.Idx{dim.I2(1, 0), dim.I2(1, 1), dim.I2(1, 2)}, got)
}

// TestWalkEarlyStop verifies the iterator honours a consumer break.
func TestWalkEarlyStop(t *testing.T) {
	s := jagged2{5, 5}
	n := 0
	for range dim.Walk(dim.D2, s) {
		n++
		if n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)
}

// TestWalkUnbounded verifies the traversal fails loudly instead of hanging.
func TestWalkUnbounded(t *testing.T) {
	requirePanicsIs(t, dim.ErrUnbounded, func() { dim.Walk(dim.D2, unbounded{}) })
	requirePanicsIs(t, dim.ErrArityMismatch, func() { dim.WalkFrom(dim.I2(0, 0), dim.D2, jagged2{1}) })
}
