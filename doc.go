// Package lvseq lets algorithms be written once against an abstract
// N-dimensional indexable sequence and run unchanged over dense nested
// slices, flat buffers viewed as matrices or jagged rows, sparse
// lookup-backed structures, computed sequences and memoizing wrappers.
//
// What is in the box:
//
//	dim/      dimension tags D1..D8, the comparable Idx, split/join, Walk
//	card/     cardinality protocol: Fixed, Rect, Variable, Empty, Unbounded
//	seq/      the Seq / Mut contract, derived ops, equality, projections
//	lookup/   key/value backings: Map, Ordered (insertion order), LRU
//	variant/  Constant, Fun, Sparse and Cached sequences
//	vec/      adapters over []T, [][]T, [][][]T and strided tensors
//	matrix/   Flat, Nested, Dense, Transpose and Jagged views
//	dtw/      Dynamic Time Warping over any two dimension-1 sequences
//
// Every sequence reports its dimension, the number of children below any
// sub-index, and the element at a full index:
//
//	s := vec.Nested2[int]{{1, 2, 3}, {4}}
//	s.Dim()                         // D2
//	s.Card(dim.I1(1))               // 1
//	s.At(dim.I2(0, 2))              // 3
//	seq.TryAt[int](s, dim.I2(1, 1)) // 0, false
//
// Computed and sparse sequences are unbounded until a cardinality is
// attached; full traversal of an unbounded level panics with
// dim.ErrUnbounded.
//
//	go get github.com/katalvlaran/lvseq
package lvseq
