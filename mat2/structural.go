package mat2

import "fmt"

// SwapRows exchanges rows i and j in place. Panics when either index is
// out of range. Swapping a row with itself is a no-op.
// Complexity: O(1) — row headers are swapped, not elements.
func (m *Matrix[T]) SwapRows(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.rows {
		panic(fmt.Sprintf("mat2: SwapRows(%d,%d) out of range for %d rows", i, j, m.rows))
	}
	m.data[i], m.data[j] = m.data[j], m.data[i]
}

// SetRow replaces row i with the given slice, taking ownership of it.
// Panics when i is out of range or len(row) != Cols(): both are
// caller-contract violations that would break the shape invariant.
// Complexity: O(1).
func (m *Matrix[T]) SetRow(i int, row []T) {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("mat2: SetRow(%d) out of range for %d rows", i, m.rows))
	}
	if len(row) != m.cols {
		panic(fmt.Sprintf("mat2: SetRow(%d) with %d elements, want %d", i, len(row), m.cols))
	}
	m.data[i] = row
}

// AppendColumn appends one element per row, growing Cols() by one.
// Returns ErrShapeMismatch when len(values) != Rows(); the matrix is
// then left bit-for-bit unchanged. Complexity: O(rows) appends.
func (m *Matrix[T]) AppendColumn(values []T) error {
	// Validate before the first write: the loop below must not be able
	// to fail halfway through.
	if len(values) != m.rows {
		return ErrShapeMismatch
	}
	for i, v := range values {
		m.data[i] = append(m.data[i], v)
	}
	m.cols++

	return nil
}

// AppendRow appends the given slice as a new last row, taking ownership
// of it. Returns ErrShapeMismatch when len(values) != Cols(); the matrix
// is then left unchanged. Complexity: O(1).
func (m *Matrix[T]) AppendRow(values []T) error {
	if len(values) != m.cols {
		return ErrShapeMismatch
	}
	m.data = append(m.data, values)
	m.rows++

	return nil
}

// Augment appends every column of other to m row-wise, growing Cols()
// by other.Cols(). Element values are copied, so other remains valid and
// untouched whether the call succeeds or not. Returns ErrShapeMismatch
// when the row counts differ; m is then left unchanged.
// Complexity: O(rows·other.cols).
func (m *Matrix[T]) Augment(other *Matrix[T]) error {
	if other.rows != m.rows {
		return ErrShapeMismatch
	}
	for i := range m.data {
		m.data[i] = append(m.data[i], other.data[i]...)
	}
	m.cols += other.cols

	return nil
}
