// SPDX-License-Identifier: MIT

// Package vec adapts plain Go containers to the seq contract.
//
//	Slice[T]    []T           dimension 1
//	Nested2[T]  [][]T         dimension 2, rows may differ in length
//	Nested3[T]  [][][]T       dimension 3
//	Tensor[T]   flat []T      dimension 1..8, rectangular, row-major strides
//
// The adapters are thin named types or small structs over caller-owned
// storage: nothing is copied on construction and writes go straight to the
// backing slices.
//
// Out-of-domain At: every adapter indexes Go slices directly, so an index
// outside the declared cardinality panics with the runtime's
// "index out of range" error. Use seq.TryAt for the checked path.
package vec
