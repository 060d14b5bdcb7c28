// SPDX-License-Identifier: MIT
// Package variant_test contains unit tests for Constant, Fun, Sparse and Cached.
package variant_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/lvseq/card"
	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/lookup"
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

// counter returns a dimension-2 function i*10+j and a pointer to its call count.
func counter() (variant.Fun[int], *int) {
	calls := 0
	f := variant.NewFun2(func(i, j int) int {
		calls++

		return i*10 + j
	})

	return f, &calls
}

// first returns the first n indices of dimension 1.
func first(n int) func(func(dim.Idx) bool) {
	return func(yield func(dim.Idx) bool) {
		for i := 0; i < n; i++ {
			if !yield(dim.I1(i)) {
				return
			}
		}
	}
}

// TestConstant covers unbounded reads, bounding and children.
func TestConstant(t *testing.T) {
	c := variant.NewConstant(dim.D2, 7)
	require.Equal(t, dim.D2, c.Dim())
	require.True(t, seq.IsUnbounded[int](c))
	require.Equal(t, 7, c.At(dim.I2(1_000_000, 3))) // any index reads the constant

	b := c.WithRectBounds(2, 3)
	require.True(t, seq.IsBounded[int](b))
	require.Equal(t, []int{7, 7, 7, 7, 7, 7}, seq.Collect[int](b))
	require.Equal(t, 7, b.At(dim.I2(9, 9))) // bounding keeps the rule
	require.Equal(t, []int{7, 7, 7}, seq.Collect(b.Child(1)))

	_, ok := seq.TryAt[int](b, dim.I2(2, 0))
	require.False(t, ok)

	jag := c.WithVariableBounds(vec.Slice[int]{2, 0, 3})
	require.Equal(t, 5, seq.Total[int](jag))
	require.Empty(t, seq.Collect(jag.Child(1)))
	require.False(t, seq.IsRectangular[int](jag))
}

// TestFun checks the rule, child derivation and the nil guards.
func TestFun(t *testing.T) {
	f := variant.NewFun2(func(i, j int) int { return i*10 + j }).WithRectBounds(2, 3)
	require.Equal(t, 12, f.At(dim.I2(1, 2)))
	require.Equal(t, []int{10, 11, 12}, seq.Collect(f.Child(1)))
	require.Equal(t, []int{0, 1, 2, 10, 11, 12}, seq.Collect[int](f))

	sq := variant.NewFun1(func(i int) int { return i * i })
	require.Equal(t, []int{0, 1, 4, 9}, slices.Collect(seq.AllIn[int](sq, first(4))))

	requirePanicsIs(t, variant.ErrNilFunc, func() { variant.NewFun[int](dim.D1, nil) })
	requirePanicsIs(t, variant.ErrNilFunc, func() { variant.NewFun2[int](nil) })
	requirePanicsIs(t, seq.ErrNoChildren, func() { sq.Child(0) })
}

// TestUnboundedTraversalPanics ensures whole-domain traversal fails loudly.
func TestUnboundedTraversalPanics(t *testing.T) {
	requirePanicsIs(t, dim.ErrUnbounded, func() { variant.NewConstant(dim.D1, 1).All() })
	requirePanicsIs(t, dim.ErrUnbounded, func() { variant.NewFun1(func(i int) int { return i }).All() })

	s := variant.NewSparse(dim.D2, 0)
	requirePanicsIs(t, dim.ErrUnbounded, func() { s.All() })
	requirePanicsIs(t, dim.ErrUnbounded, func() { s.MutAll(func(*int) {}) })
	requirePanicsIs(t, dim.ErrUnbounded, func() { s.ResetAll(1) })
}

// TestBoundsDimMismatch ensures bounds of another dimension are rejected.
func TestBoundsDimMismatch(t *testing.T) {
	requirePanicsIs(t, variant.ErrBoundsDim, func() { variant.NewConstant(dim.D2, 1).Bounded(card.Fix(3)) })
	requirePanicsIs(t, variant.ErrBoundsDim, func() { variant.NewSparse(dim.D1, 0).Bounded(nil) })
	requirePanicsIs(t, variant.ErrNilInner, func() { variant.NewCached[int](nil) })
}

// TestSparseRoundTrip checks read-after-write and the default on misses.
func TestSparseRoundTrip(t *testing.T) {
	s := variant.NewSparse(dim.D2, -1)
	writes := []struct {
		idx dim.Idx
		v   int
	}{
		{dim.I2(0, 0), 1},
		{dim.I2(5, 9), 2},
		{dim.I2(0, 0), 3}, // overwrite
		{dim.I2(1_000, 1_000), 4},
	}
	for _, w := range writes {
		s.Set(w.idx, w.v)
	}

	require.Equal(t, 3, s.At(dim.I2(0, 0)))
	require.Equal(t, 2, s.At(dim.I2(5, 9)))
	require.Equal(t, 4, s.At(dim.I2(1_000, 1_000)))
	require.Equal(t, -1, s.At(dim.I2(0, 1))) // never written
	require.Equal(t, 3, s.Len())             // one entry per distinct index

	*s.AtMut(dim.I2(2, 2)) += 10
	require.Equal(t, 9, s.At(dim.I2(2, 2)))
	require.Equal(t, 4, s.Len())

	requirePanicsIs(t, dim.ErrArityMismatch, func() { s.Set(dim.I1(0), 1) })

	s.Clear()
	require.Zero(t, s.Len())
	require.Equal(t, -1, s.At(dim.I2(0, 0)))
}

// TestSparseBoundedViews checks that bounded copies and children share the lookup.
func TestSparseBoundedViews(t *testing.T) {
	s := variant.NewSparse(dim.D2, 0)
	b := s.WithRectBounds(2, 3)

	b.ChildMut(1).Set(dim.I1(2), 5)
	require.Equal(t, 5, s.At(dim.I2(1, 2))) // written through the projection
	require.Equal(t, []int{0, 0, 0, 0, 0, 5}, seq.Collect[int](b))
	require.Equal(t, []int{0, 0, 5}, seq.Collect(b.Child(1)))

	require.Equal(t, 0, b.At(dim.I2(7, 7))) // out of bounds reads the default
	_, ok := seq.TryAt[int](b, dim.I2(7, 7))
	require.False(t, ok)

	b.MutAll(func(v *int) { *v++ })
	require.Equal(t, []int{1, 1, 1, 1, 1, 6}, seq.Collect[int](b))
	require.Equal(t, 6, b.Len()) // every visited index is stored
}

// TestSparseResetAll checks the clear optimization and the element-wise path.
func TestSparseResetAll(t *testing.T) {
	s := variant.NewSparse(dim.D1, 0).WithRectBounds(3)
	s.Set(dim.I1(1), 4)
	s.Set(dim.I1(10), 4) // outside the declared cardinality

	s.ResetAll(9)
	require.Equal(t, []int{9, 9, 9}, seq.Collect[int](s))
	require.Equal(t, 4, s.At(dim.I1(10))) // element-wise reset stays in bounds

	s.ResetAll(0)
	require.Zero(t, s.Len()) // reset to default clears the lookup
	require.Equal(t, 0, s.At(dim.I1(10)))
}

// TestSparseResetAllCustomEqual covers non-comparable element types.
func TestSparseResetAllCustomEqual(t *testing.T) {
	empty := func(a, b []int) bool { return len(a) == 0 && len(b) == 0 }

	withEq := variant.NewSparse[[]int](dim.D1, nil, variant.WithEqual(empty)).WithRectBounds(3)
	withEq.Set(dim.I1(0), []int{1})
	withEq.ResetAll(nil)
	require.Zero(t, withEq.Len())

	noEq := variant.NewSparse[[]int](dim.D1, nil).WithRectBounds(3)
	noEq.ResetAll(nil)
	require.Equal(t, 3, noEq.Len()) // no equality known, every element written
}

// TestSparseOrderedLookup checks insertion-ordered storage.
func TestSparseOrderedLookup(t *testing.T) {
	s := variant.NewSparse(dim.D1, "", variant.WithOrderedLookup[string]())
	for _, i := range []int{2, 0, 1} {
		s.Set(dim.I1(i), string(rune('a'+i)))
	}

	var keys []dim.Idx
	var vals []string
	for k, v := range s.Stored() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	require.Equal(t, []dim.Idx{dim.I1(2), dim.I1(0), dim.I1(1)}, keys)
	require.Equal(t, []string{"c", "a", "b"}, vals)
}

// TestCacheTransparency checks memoization over a pure function.
func TestCacheTransparency(t *testing.T) {
	f, calls := counter()
	c := variant.NewCached[int](f)

	require.Equal(t, 11, c.At(dim.I2(1, 1)))
	require.Equal(t, 1, c.Len())
	require.Equal(t, 1, *calls)

	require.Equal(t, 11, c.At(dim.I2(1, 1))) // second read hits the cache
	require.Equal(t, 1, c.Len())
	require.Equal(t, 1, *calls)

	require.Equal(t, 23, c.At(dim.I2(2, 3)))
	require.Equal(t, 2, c.Len())
	require.Equal(t, 2, *calls)

	c.Clear()
	require.Zero(t, c.Len())
	require.Equal(t, 11, c.At(dim.I2(1, 1))) // recomputed after Clear
	require.Equal(t, 3, *calls)
	require.Equal(t, dim.D2, c.Inner().Dim())
}

// TestCachedBoundsAndChildren checks inherited and attached cardinality.
func TestCachedBoundsAndChildren(t *testing.T) {
	inner := vec.Nested2[int]{{0, 1, 2}, {3, 4, 5, 6}}
	c := variant.NewCached[int](inner)
	require.Equal(t, 2, seq.NumChildren[int](c))
	require.Equal(t, 4, c.Card(dim.I1(1)))
	require.Equal(t, []int{3, 4, 5, 6}, seq.Collect(c.Child(1)))
	require.Equal(t, 4, c.Len()) // the child read filled the cache

	require.True(t, seq.Equal[int](c, inner).Equal())

	f, _ := counter()
	b := variant.NewCached[int](f).WithRectBounds(2, 2)
	require.Equal(t, []int{0, 1, 10, 11}, seq.Collect[int](b))
	require.Equal(t, 4, b.Len())
}

// TestCachedFresh checks that Fresh builds an independent cache over the same inner.
func TestCachedFresh(t *testing.T) {
	f, calls := counter()
	a := variant.NewCached[int](f, variant.WithOrderedLookup[int]())
	a.At(dim.I2(0, 1))

	b := a.Fresh()
	require.Zero(t, b.Len())
	require.Equal(t, 1, b.At(dim.I2(0, 1)))
	require.Equal(t, 2, *calls) // b computed its own entry
	require.Equal(t, 1, a.Len())
	require.IsType(t, a.Lookup(), b.Lookup())
}

// TestCachedLRUEviction checks that evicted entries are recomputed.
func TestCachedLRUEviction(t *testing.T) {
	f, calls := counter()
	c := variant.NewCached[int](f, variant.WithLRULookup[int](2))

	c.At(dim.I2(0, 0))
	c.At(dim.I2(0, 1))
	c.At(dim.I2(0, 2)) // evicts [0, 0]
	require.Equal(t, 2, c.Len())
	require.Equal(t, 3, *calls)

	require.Equal(t, 0, c.At(dim.I2(0, 0)))
	require.Equal(t, 4, *calls)
}

// TestOptionGuards ensures nonsensical options panic at construction.
func TestOptionGuards(t *testing.T) {
	require.Panics(t, func() { variant.WithLookup[int](nil) })
	require.Panics(t, func() { variant.WithEqual[int](nil) })
	require.Panics(t, func() { variant.WithLRULookup[int](0) })
	require.Panics(t, func() { variant.NewSparse[int](dim.D1, 0, nil) })
}

// TestSparseRejectsEvictingLookup keeps every write readable back.
func TestSparseRejectsEvictingLookup(t *testing.T) {
	requirePanicsIs(t, variant.ErrEvictingLookup, func() {
		variant.NewSparse(dim.D1, 0, variant.WithLRULookup[int](2))
	})
	requirePanicsIs(t, variant.ErrEvictingLookup, func() {
		variant.NewSparse(dim.D1, 0, variant.WithLookup(lookup.LRUFactory[dim.Idx, int](8)))
	})

	// the bounded backing stays available to Cached
	c := variant.NewCached[int](variant.NewFun1(func(i int) int { return i }), variant.WithLRULookup[int](2))
	require.Equal(t, 2, c.At(dim.I1(2)))

	s := variant.NewSparse(dim.D1, 0, variant.WithOrderedLookup[int]())
	for i := 0; i < 3; i++ {
		s.Set(dim.I1(i), i+1)
	}
	require.Equal(t, 1, s.At(dim.I1(0)))
	require.Equal(t, 3, s.Len())
}
