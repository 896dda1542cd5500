// Package rref reduces a mat2.Matrix to Reduced Row-Echelon Form via
// Gauss-Jordan elimination and validates the RREF predicate.
//
// What:
//
//   - Reduce: in-place Gauss-Jordan elimination, built entirely from the
//     structural and row-algebra operations of package mat2.
//   - IsRREF: pure predicate checking the four defining RREF properties.
//
// RREF, for reference: every nonzero row's leading entry is one, leading
// entries occur in strictly increasing columns top-to-bottom, all-zero
// rows sink to the bottom, and each leading one is the only nonzero
// entry in its column. Reduce(m) always satisfies IsRREF, and reducing
// an already-reduced matrix leaves it unchanged.
//
// Complexity:
//
//   - Reduce: O(rows·cols·min(rows,cols)).
//   - IsRREF: O(rows·cols) plus O(rows) per pivot column.
//
// Numerics:
//
//	Reduce requires a Field element type (floating point or complex);
//	simple nonzero pivot selection only, no partial pivoting. Dividing
//	by a pivot that T cannot represent exactly leaves the usual
//	floating-point residue — that is the caller's domain to manage.
package rref
