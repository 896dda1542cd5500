package mat2

import "errors"

// Sentinel errors for recoverable construction and mutation failures.
// All are returned plain so call sites can match them via errors.Is.
// Index misuse is not represented here: it panics (see doc.go).
var (
	// ErrBadShape indicates requested dimensions are non-positive.
	ErrBadShape = errors.New("mat2: dimensions must be >= 1")
	// ErrEmptyMatrix indicates FromRows received no rows.
	ErrEmptyMatrix = errors.New("mat2: input must have at least one row")
	// ErrRaggedRows indicates FromRows received rows of differing lengths.
	ErrRaggedRows = errors.New("mat2: all rows must have the same length")
	// ErrShapeMismatch indicates an append/augment operand does not match
	// the matrix dimensions. The matrix is left unchanged.
	ErrShapeMismatch = errors.New("mat2: operand shape does not match matrix")
)
