// Package dtw computes Dynamic Time Warping (DTW) alignments between two
// dimension-1 sequences of any backing: slices, bounded computed sequences,
// memoized sequences or rows of a matrix view.
//
// What is DTW?
//
//	DTW finds the cheapest monotone alignment of two sequences by warping
//	the index axis. The accumulated cost table follows
//
//	  D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	  D[i][j] = cost(a[i-1], b[j-1]) + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//
//	where p is the slope penalty for non-diagonal steps.
//
// Key features:
//   - FullMatrix mode keeps the (n+1)x(m+1) table as a matrix.Dense and can
//     backtrack the warping path.
//   - TwoRows mode keeps two rows only, O(m) memory, distance only.
//   - Optional Sakoe-Chiba band (|i-j| <= w).
//   - Align accepts any element type with a caller-supplied cost.
//
// Usage:
//
//	res, err := dtw.DTW(vec.Slice[float64](a), vec.Slice[float64](b),
//		dtw.WithWindow(10), dtw.WithSlopePenalty(0.5), dtw.WithPath())
//
// Inputs are read once with seq.Collect, so computed sequences are evaluated
// n+m times, not n*m times.
package dtw
