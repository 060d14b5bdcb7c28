// SPDX-License-Identifier: MIT

// Package dtw - DTW / Align: accumulated cost fill and path backtracking.
//
// Algorithm outline:
//  1. Validate and collect both inputs (D1, bounded, non-empty).
//  2. Fill rows 1..n of D left to right. FullMatrix rows are lines of a
//     matrix.Dense; TwoRows swaps two buffers.
//  3. distance = D[n][m].
//  4. With WithPath, walk back from (n, m) to (1, 1) choosing the cheapest
//     predecessor; ties prefer the diagonal, then the a-step, then the b-step.
//
// Complexity:
//   - Time O(n*m), or O(n*w) cells evaluated with a window w.
//   - Memory O(n*m) for FullMatrix, O(m) for TwoRows.

package dtw

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvseq/dim"
	"github.com/katalvlaran/lvseq/matrix"
	"github.com/katalvlaran/lvseq/seq"
	"github.com/katalvlaran/lvseq/vec"
)

// Coord is one step of a warping path: a[I] is aligned with b[J].
type Coord struct {
	I, J int
}

// Result is the outcome of one alignment.
type Result struct {
	// Distance is D[n][m]; +Inf when the window admits no alignment.
	Distance float64

	// Path is the warping path from (0, 0) to (n-1, m-1). Nil unless WithPath
	// was given or when Distance is +Inf.
	Path []Coord

	// Table is the (n+1)x(m+1) accumulated cost table in FullMatrix mode, nil otherwise.
	Table *matrix.Dense[float64]
}

// DTW aligns two float sequences under the absolute difference cost.
func DTW(a, b seq.Seq[float64], opts ...Option) (Result, error) {
	return Align(a, b, absDiff, opts...)
}

func absDiff(x, y float64) float64 { return math.Abs(x - y) }

// Align aligns two sequences under a caller-supplied cost.
//
// Errors:
//   - ErrNilInput, ErrNotSequence, ErrUnboundedInput, ErrEmptyInput for bad inputs.
//   - ErrNilCost when cost is nil.
//   - ErrPathNeedsMatrix when WithPath is combined with TwoRows.
//   - matrix.ErrBadShape when the FullMatrix table area overflows int.
func Align[T any](a, b seq.Seq[T], cost func(x, y T) float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if cost == nil {
		return Result{}, ErrNilCost
	}
	if o.wantPath && o.mode != FullMatrix {
		return Result{}, ErrPathNeedsMatrix
	}
	xs, err := collect("a", a)
	if err != nil {
		return Result{}, err
	}
	ys, err := collect("b", b)
	if err != nil {
		return Result{}, err
	}

	n, m := len(xs), len(ys)
	width := m + 1
	inf := math.Inf(1)

	var (
		table      *matrix.Dense[float64]
		prev, curr vec.Slice[float64]
		rowOf      func(i int) vec.Slice[float64]
	)
	if o.mode == FullMatrix {
		if table, err = matrix.NewDense[float64](n+1, width); err != nil {
			return Result{}, fmt.Errorf("cost table: %w", err)
		}
		data := table.Data()
		rowOf = func(i int) vec.Slice[float64] { return data[i*width : (i+1)*width] }
	} else {
		bufs := [2]vec.Slice[float64]{make(vec.Slice[float64], width), make(vec.Slice[float64], width)}
		rowOf = func(i int) vec.Slice[float64] { return bufs[i%2] }
	}

	prev = rowOf(0)
	prev.ResetAll(inf)
	prev[0] = 0
	for i := 1; i <= n; i++ {
		curr = rowOf(i)
		curr.ResetAll(inf)
		lo, hi := o.band(i, m)
		for j := lo; j <= hi; j++ {
			best := min(prev[j-1], prev[j]+o.penalty, curr[j-1]+o.penalty)
			curr[j] = cost(xs[i-1], ys[j-1]) + best
		}
		prev = curr
	}

	res := Result{Distance: prev[m], Table: table}
	if o.wantPath && !math.IsInf(res.Distance, 1) {
		res.Path = backtrack(table, n, m, o.penalty)
	}

	return res, nil
}

// band returns the admissible column range [lo, hi] of row i.
func (o Options) band(i, m int) (lo, hi int) {
	if o.window == NoWindow {
		return 1, m
	}

	return max(1, i-o.window), min(m, i+o.window)
}

func collect[T any](name string, s seq.Seq[T]) ([]T, error) {
	switch {
	case s == nil:
		return nil, fmt.Errorf("%s: %w", name, ErrNilInput)
	case s.Dim() != dim.D1:
		return nil, fmt.Errorf("%s is %s: %w", name, s.Dim(), ErrNotSequence)
	case seq.IsUnbounded(s):
		return nil, fmt.Errorf("%s: %w", name, ErrUnboundedInput)
	case seq.NumChildren(s) == 0:
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyInput)
	}

	return seq.Collect(s), nil
}

func backtrack(table *matrix.Dense[float64], n, m int, penalty float64) []Coord {
	at := func(i, j int) float64 { return table.At(dim.I2(i, j)) }

	path := make([]Coord, 0, n+m-1)
	i, j := n, m
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := at(i-1, j-1), at(i-1, j)+penalty, at(i, j-1)+penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	slices.Reverse(path)

	return path
}
