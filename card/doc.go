// SPDX-License-Identifier: MIT

// Package card implements the cardinality (shape) protocol.
//
// A Cardinality answers, for a sequence of dimension D, how many children
// live below any sub-index of arity < D and produces the cardinality that
// governs the i-th child, all without materializing data.
//
// Variants:
//
//   - Fixed       - dimension-1 length.
//   - Rectangular - every sibling at a given depth has the same count
//     (generalized dense matrix); IsRectangular is true by construction.
//   - Variable    - counts supplied per index by a dimension-(D-1) integer
//     sequence (jagged arrays); IsRectangular walks children on demand.
//   - Empty       - zero children everywhere.
//   - Unbounded   - MaxCard everywhere; marks a domain with no declared
//     upper bound (constant, functional and sparse sequences start here).
//
// Complexity:
//
//	Card/Child are O(1) for Fixed, Rectangular, Empty and Unbounded and
//	cost one Counts lookup for Variable. IsRectangular on Variable is
//	O(number of children) per level in the worst case and is not cached.
package card
