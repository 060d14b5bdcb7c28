// Package matrix reinterprets flat or nested sequences as 2-D grids.
//
// The matrix package provides:
//
//   - Flat / FlatMut: a dimension-1 sequence of length rows*cols viewed
//     under RowMajor (offset = cols*i + j) or ColMajor (offset = rows*j + i).
//   - Nested / NestedMut: a rectangular dimension-2 sequence whose children
//     are rows (RowMajor) or columns (ColMajor).
//   - Dense: owned storage exposed through the flat view, with Materialize
//     to copy any Matrix.
//   - Transpose / TransposeMut: axis-swapping views.
//   - Jagged / JaggedMut: a dimension-1 sequence split by row-end offsets.
//
// Every view is non-owning: it borrows the wrapped sequence and never
// copies it. Views are dimension-2 seq.Seq values, so the whole seq toolkit
// (TryAt, Children, Equal, ...) applies to them.
//
// Construction validates the shape and returns sentinel errors (see
// errors.go); the Must* forms panic instead. Access on the rectangular views
// is unchecked, the checked path is seq.TryAt or Layout.FlatIndex. Jagged
// access is always checked, because an out-of-row column would otherwise
// silently read the next row.
package matrix
