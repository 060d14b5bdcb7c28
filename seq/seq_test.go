// SPDX-License-Identifier: MIT
// Package seq_test contains unit tests for the derived operations and projections.
package seq_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/seq"
	"github.com/katalvlaran/lvseq/variant"
	"github.com/katalvlaran/lvseq/vec"
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

// jagged is the running fixture: rows of length 3, 0 and 4.
func jagged() vec.Nested2[int] {
	return vec.Nested2[int]{{0, 1, 2}, {}, {3, 4, 5, 6}}
}

// TestShapeQueries checks the cardinality delegates.
func TestShapeQueries(t *testing.T) {
	s := jagged()
	require.Equal(t, 3, seq.NumChildren[int](s))
	require.True(t, seq.IsBounded[int](s))
	require.False(t, seq.IsUnbounded[int](s))
	require.False(t, seq.IsRectangular[int](s))
	require.Equal(t, 7, seq.Total[int](s))
	require.Equal(t, dim.D2, seq.CardOf[int](s).Dim())

	r := vec.Nested2[int]{{1, 2}, {3, 4}}
	require.True(t, seq.IsRectangular[int](r))
	require.True(t, seq.IsRectangular[int](variant.NewConstant(dim.D3, 0))) // vacuous
}

// TestTryAt checks the checked access path, including the empty middle row.
func TestTryAt(t *testing.T) {
	s := jagged()
	cases := []struct {
		idx  dim.Idx
		want int
		ok   bool
	}{
		{dim.I2(0, 2), 2, true},
		{dim.I2(2, 3), 6, true},
		{dim.I2(1, 0), 0, false}, // empty row
		{dim.I2(0, 3), 0, false},
		{dim.I2(3, 0), 0, false}, // row out of range, never indexes n[3]
	}
	for _, tc := range cases {
		got, ok := seq.TryAt[int](s, tc.idx)
		require.Equal(t, tc.ok, ok, "idx %v", tc.idx)
		require.Equal(t, tc.want, got, "idx %v", tc.idx)
		require.Equal(t, tc.ok, seq.InBounds[int](s, tc.idx))
	}

	requirePanicsIs(t, dim.ErrArityMismatch, func() { seq.InBounds[int](s, dim.I1(0)) })
}

// TestTraversal checks Indices, All and Collect agree in row-major order.
func TestTraversal(t *testing.T) {
	s := jagged()
	want := []dim.Idx{
		dim.I2(0, 0), dim.I2(0, 1), dim.I2(0, 2),
		dim.I2(2, 0), dim.I2(2, 1), dim.I2(2, 2), dim.I2(2, 3),
	}
	require.Equal(t, want, slices.Collect(seq.Indices[int](s)))

	got := slices.Collect(seq.AllOf[int](s))
	if diff := cmp.Diff(seq.Collect[int](s), got); diff != "" {
		t.Fatalf("AllOf mismatch (-All +AllOf):\n%s", diff)
	}

	var firstTwo []int
	for v := range seq.AllOf[int](s) {
		firstTwo = append(firstTwo, v)
		if len(firstTwo) == 2 {
			break
		}
	}
	require.Equal(t, []int{0, 1}, firstTwo)
}

// TestAllInUnbounded iterates an unbounded sequence over explicit indices.
func TestAllInUnbounded(t *testing.T) {
	f := variant.NewFun2(func(i, j int) int { return i * j })
	diag := func(yield func(dim.Idx) bool) {
		for i := 0; ; i++ {
			if !yield(dim.I2(i, i)) {
				return
			}
		}
	}

	var got []int
	for v := range seq.AllIn[int](f, diag) {
		if v > 20 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 4, 9, 16}, got)

	requirePanicsIs(t, dim.ErrUnbounded, func() { seq.AllOf[int](f) })
	requirePanicsIs(t, dim.ErrUnbounded, func() { seq.Total[int](f) })
}

// TestChildren enumerates rows lazily, including on unbounded sequences.
func TestChildren(t *testing.T) {
	var rows [][]int
	for row := range seq.Children[int](jagged()) {
		rows = append(rows, seq.Collect(row))
	}
	want := [][]int{{0, 1, 2}, nil, {3, 4, 5, 6}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}

	n := 0
	for range seq.Children[int](variant.NewConstant(dim.D2, 1)) {
		if n++; n == 3 {
			break
		}
	}
	require.Equal(t, 3, n)

	requirePanicsIs(t, seq.ErrNoChildren, func() { seq.Children[int](vec.Slice[int]{1}) })
	requirePanicsIs(t, seq.ErrNoChildren, func() { seq.ChildrenMut[int](vec.Slice[int]{1}) })
}

// TestChildrenMut writes through every row.
func TestChildrenMut(t *testing.T) {
	s := jagged()
	i := 0
	for row := range seq.ChildrenMut[int](s) {
		row.ResetAll(i)
		i++
	}
	require.Equal(t, vec.Nested2[int]{{0, 0, 0}, {}, {2, 2, 2, 2}}, s)
}

// TestMutDefaults covers MutAllOf and ResetAllOf over a generic Mut.
func TestMutDefaults(t *testing.T) {
	s := jagged()
	seq.MutAllOf[int](s, func(v *int) { *v *= 10 })
	require.Equal(t, []int{0, 10, 20, 30, 40, 50, 60}, seq.Collect[int](s))

	seq.ResetAllOf[int](s, 1)
	require.Equal(t, 7, seq.Total[int](s))
	for v := range s.All() {
		require.Equal(t, 1, v)
	}
}

// TestDescend covers projections and their flattening.
func TestDescend(t *testing.T) {
	cube := vec.Nested3[int]{
		{{0, 1}, {2, 3}},
		{{4, 5}, {6, 7}},
	}

	row := seq.Descend[int](cube, dim.I2(1, 0))
	require.Equal(t, dim.D1, row.Dim())
	require.Equal(t, []int{4, 5}, seq.Collect(row))

	plane := seq.ChildOf[int](cube, 1)
	nested := seq.ChildOf(plane, 1)
	sub, ok := nested.(seq.Sub[int])
	require.True(t, ok)
	require.Equal(t, dim.I2(1, 1), sub.Prefix()) // child of child extends the prefix
	require.Equal(t, []int{6, 7}, seq.Collect(nested))

	require.Equal(t, seq.Seq[int](cube), seq.Descend[int](cube, dim.Idx{}))
	requirePanicsIs(t, seq.ErrPrefix, func() { seq.Descend[int](cube, dim.I3(0, 0, 0)) })
	requirePanicsIs(t, seq.ErrNoChildren, func() { seq.ChildOf[int](vec.Slice[int]{1}, 0) })
}

// TestDescendMut writes through nested mutable projections.
func TestDescendMut(t *testing.T) {
	cube := vec.Nested3[int]{
		{{0, 1}, {2, 3}},
		{{4, 5}, {6, 7}},
	}

	plane := seq.ChildMutOf[int](cube, 0)
	row := plane.ChildMut(1)
	sub, ok := row.(seq.SubMut[int])
	require.True(t, ok)
	require.Equal(t, dim.I2(0, 1), sub.Prefix())

	row.Set(dim.I1(0), 20)
	*row.AtMut(dim.I1(1)) = 30
	require.Equal(t, []int{20, 30}, cube[0][1])

	plane.MutAll(func(v *int) { *v = -*v })
	require.Equal(t, [][]int{{0, -1}, {-20, -30}}, cube[0])

	plane.ResetAll(9)
	require.Equal(t, []int{9, 9, 9, 9}, seq.Collect[int](plane))
	require.Equal(t, []int{4, 5}, cube[1][0]) // sibling untouched

	view := seq.Descend[int](plane, dim.I1(1))
	require.Equal(t, dim.I2(0, 1), view.(seq.Sub[int]).Prefix()) // SubMut flattens into Sub
}
