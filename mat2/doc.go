// Package mat2 provides a dense, generic two-dimensional matrix over a
// caller-chosen element type, together with the structural and row-level
// operations that Gauss-Jordan elimination composes.
//
// What:
//
//   - Matrix[T]: rectangular storage with rows×cols elements, created by
//     New, NewWith, or FromRows.
//   - Row and column iterators: lazy, forward-only views over the storage.
//   - Structural mutation: SwapRows, SetRow, AppendRow, AppendColumn,
//     Augment — each validates fully before writing anything.
//   - Row algebra: ScaleRow and AddScaledRow for Numeric element types.
//
// Why:
//
//   - Element capabilities are demanded per operation, not per type:
//     a Matrix[string] supports access and structural mutation, while
//     ScaleRow requires Numeric and elimination (package rref) requires
//     Field. This keeps non-numeric uses first-class.
//
// Invariant:
//
//	After every successful public operation each row has length Cols()
//	and there are exactly Rows() rows. Mutations that cannot preserve
//	the invariant are rejected atomically with a sentinel error.
//
// Errors & panics:
//
//   - Recoverable shape problems (empty or ragged input, mismatched
//     append/augment lengths) return ErrBadShape, ErrEmptyMatrix,
//     ErrRaggedRows or ErrShapeMismatch and leave the matrix untouched.
//   - Index misuse on At, Row, SwapRows, SetRow, ScaleRow and
//     AddScaledRow is a caller-contract violation and panics; use the
//     *Ok variants when an index may legitimately be out of range.
//
// Concurrency:
//
//	A Matrix is not internally synchronized. Concurrent mutation is the
//	caller's problem to prevent; iterators borrow the storage and are
//	invalidated by structural mutation while alive.
package mat2
