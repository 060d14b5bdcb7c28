// SPDX-License-Identifier: MIT

package dim

import (
	"math"
	"strconv"
)

// MaxDim is the highest supported sequence dimension.
const MaxDim = 8

// MaxCard is the cardinality reported by unbounded domains at every level.
const MaxCard = math.MaxInt

// Dim is a dimension tag. Valid sequence dimensions are D1..D8; D0 is the
// arity of the empty sub-index.
type Dim uint8

// Dimension tags.
const (
	D0 Dim = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
)

// Arity returns the number of components of an Idx of this dimension.
func (d Dim) Arity() int { return int(d) }

// Valid reports whether d is a sequence dimension (D1..D8).
func (d Dim) Valid() bool { return d >= D1 && d <= MaxDim }

// Prev returns the tag one dimension lower. D1 is its own predecessor:
// dimension-1 sequences are the recursion base and have no children.
func (d Dim) Prev() Dim {
	if d <= D1 {
		return D1
	}

	return d - 1
}

// Next returns the tag one dimension higher; it panics at D8.
func (d Dim) Next() Dim {
	if d >= MaxDim {
		fail("Dim.Next", ErrDimOverflow)
	}

	return d + 1
}

// String renders the tag as "D<n>".
func (d Dim) String() string { return "D" + strconv.Itoa(int(d)) }

// MustValid panics with ErrInvalidDim unless d is in D1..D8.
func MustValid(d Dim) {
	if !d.Valid() {
		fail("dim "+d.String(), ErrInvalidDim)
	}
}

// MustMatch panics with ErrArityMismatch unless idx has arity d.
// The context tag names the caller in the panic message.
func MustMatch(ctx string, idx Idx, d Dim) {
	if idx.d != d {
		fail(ctx+": got "+idx.d.String()+", want "+d.String(), ErrArityMismatch)
	}
}
