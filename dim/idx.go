// SPDX-License-Identifier: MIT
// Package dim - Idx value type and the split/join primitive.
//
// Purpose:
//   - Represent an index of any arity 0..MaxDim as a fixed-size, comparable value.
//   - Provide Split / LeftJoin as mutual inverses; everything recursive builds on them.
//   - Provide prefix helpers (Prefix, Join, Append) used by child projections.
//
// Complexity quicksheet:
//   - every operation is O(MaxDim) at worst and allocation-free (except Values/String).

package dim

import (
	"strconv"
	"strings"
)

// Idx is an ordered tuple of non-negative integers whose length is its Dim.
// The zero value is the empty sub-index (arity D0).
// Idx is comparable and may be used as a map key.
type Idx struct {
	d Dim         // arity (0..MaxDim)
	v [MaxDim]int // components; positions >= d are always zero
}

// Ix builds an Idx from its components.
// Panics with ErrDimOverflow for more than MaxDim components and with
// ErrNegativeIndex for negative components.
func Ix(v ...int) Idx {
	if len(v) > MaxDim {
		fail("Ix", ErrDimOverflow)
	}
	var x Idx
	for k, c := range v {
		if c < 0 {
			fail("Ix", ErrNegativeIndex)
		}
		x.v[k] = c
	}
	x.d = Dim(len(v))

	return x
}

// I1 builds a dimension-1 index.
func I1(i int) Idx { return Ix(i) }

// I2 builds a dimension-2 index.
func I2(i, j int) Idx { return Ix(i, j) }

// I3 builds a dimension-3 index.
func I3(i, j, k int) Idx { return Ix(i, j, k) }

// I4 builds a dimension-4 index.
func I4(i, j, k, l int) Idx { return Ix(i, j, k, l) }

// Dim returns the arity of x.
func (x Idx) Dim() Dim { return x.d }

// Len returns the arity of x as an int.
func (x Idx) Len() int { return int(x.d) }

// IsEmpty reports whether x is the empty sub-index.
func (x Idx) IsEmpty() bool { return x.d == D0 }

// At returns the k-th component; it panics when k is outside [0, Len()).
func (x Idx) At(k int) int {
	if k < 0 || k >= int(x.d) {
		fail("Idx.At("+strconv.Itoa(k)+")", ErrArityMismatch)
	}

	return x.v[k]
}

// First returns the leftmost component. Panics on the empty index.
func (x Idx) First() int {
	if x.d == D0 {
		fail("Idx.First", ErrEmptySplit)
	}

	return x.v[0]
}

// Last returns the rightmost component. Panics on the empty index.
func (x Idx) Last() int {
	if x.d == D0 {
		fail("Idx.Last", ErrEmptySplit)
	}

	return x.v[x.d-1]
}

// Values returns a fresh slice with the components of x.
func (x Idx) Values() []int {
	out := make([]int, x.d)
	copy(out, x.v[:x.d])

	return out
}

// Split separates x into its leftmost component and the remaining index of
// arity Dim()-1. Splitting a dimension-1 index yields the empty sub-index.
// Panics with ErrEmptySplit on the empty index.
//
// Split is the inverse of LeftJoin:
//
//	i, lower := x.Split()
//	LeftJoin(i, lower) == x
func (x Idx) Split() (int, Idx) {
	if x.d == D0 {
		fail("Idx.Split", ErrEmptySplit)
	}
	var lower Idx
	copy(lower.v[:], x.v[1:x.d])
	lower.d = x.d - 1

	return x.v[0], lower
}

// LeftJoin prepends i to lower and returns the index of arity lower.Dim()+1.
// Panics with ErrDimOverflow when lower already has MaxDim components and
// with ErrNegativeIndex when i < 0.
func LeftJoin(i int, lower Idx) Idx {
	if lower.d >= MaxDim {
		fail("LeftJoin", ErrDimOverflow)
	}
	if i < 0 {
		fail("LeftJoin", ErrNegativeIndex)
	}
	var x Idx
	x.v[0] = i
	copy(x.v[1:], lower.v[:lower.d])
	x.d = lower.d + 1

	return x
}

// Append returns x with i added as the new rightmost component.
func (x Idx) Append(i int) Idx {
	if x.d >= MaxDim {
		fail("Idx.Append", ErrDimOverflow)
	}
	if i < 0 {
		fail("Idx.Append", ErrNegativeIndex)
	}
	x.v[x.d] = i
	x.d++

	return x
}

// Join concatenates x (as prefix) with tail.
// LeftJoin(i, r) == I1(i).Join(r).
func (x Idx) Join(tail Idx) Idx {
	if int(x.d)+int(tail.d) > MaxDim {
		fail("Idx.Join", ErrDimOverflow)
	}
	copy(x.v[x.d:], tail.v[:tail.d])
	x.d += tail.d

	return x
}

// Prefix returns the first k components of x.
func (x Idx) Prefix(k int) Idx {
	if k < 0 || k > int(x.d) {
		fail("Idx.Prefix("+strconv.Itoa(k)+")", ErrArityMismatch)
	}
	for p := k; p < int(x.d); p++ {
		x.v[p] = 0
	}
	x.d = Dim(k)

	return x
}

// Compare orders indices lexicographically; a proper prefix sorts first.
// Returns -1, 0 or +1.
func (x Idx) Compare(y Idx) int {
	n := min(x.d, y.d)
	for k := Dim(0); k < n; k++ {
		switch {
		case x.v[k] < y.v[k]:
			return -1
		case x.v[k] > y.v[k]:
			return 1
		}
	}
	switch {
	case x.d < y.d:
		return -1
	case x.d > y.d:
		return 1
	}

	return 0
}

// String renders x as "[i, j, ...]".
func (x Idx) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for k := Dim(0); k < x.d; k++ {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(x.v[k]))
	}
	b.WriteByte(']')

	return b.String()
}
