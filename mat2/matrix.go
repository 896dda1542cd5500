package mat2

import (
	"fmt"
	"strings"
)

// Matrix is a dense rectangular collection of elements of type T,
// stored row-major as one slice per row.
//
// Invariant: len(data) == rows, and every data[i] has length cols.
// Every public operation either preserves this or rejects the call
// before mutating anything.
type Matrix[T any] struct {
	rows, cols int
	data       [][]T
}

// New creates a rows×cols matrix with every element set to the zero
// value of T. Returns ErrBadShape when either dimension is < 1.
// Complexity: O(rows·cols) time and memory.
func New[T any](rows, cols int) (*Matrix[T], error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadShape
	}
	data := make([][]T, rows)
	for i := range data {
		data[i] = make([]T, cols)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// NewWith creates a rows×cols matrix using gen to produce each element.
// gen receives the (row, column) coordinate it is constructing.
// Returns ErrBadShape when either dimension is < 1.
// Complexity: O(rows·cols) plus the cost of gen.
func NewWith[T any](rows, cols int, gen func(i, j int) T) (*Matrix[T], error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadShape
	}
	data := make([][]T, rows)
	for i := range data {
		data[i] = make([]T, cols)
		for j := range data[i] {
			data[i][j] = gen(i, j)
		}
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// FromRows builds a matrix that takes ownership of the given rows.
// Returns ErrEmptyMatrix if rows is empty and ErrRaggedRows if any row's
// length differs from the first's. The input slices are not copied; the
// caller must not retain them after a successful call.
// Complexity: O(rows) validation, O(1) adoption.
func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}
	cols := len(rows[0])
	for _, r := range rows {
		if len(r) != cols {
			return nil, ErrRaggedRows
		}
	}

	return &Matrix[T]{rows: len(rows), cols: cols, data: rows}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Dims returns the dimensions as (cols, rows) — column count first.
// The order is intentional and callers must not assume (rows, cols).
// Complexity: O(1).
func (m *Matrix[T]) Dims() (cols, rows int) { return m.cols, m.rows }

// At returns the element at (i, j). Panics when either index is out of
// range: an invalid index here is a caller-contract violation, not a
// recoverable condition. Use AtOk when the index is untrusted.
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("mat2: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}

	return m.data[i][j]
}

// AtOk returns the element at (i, j) and true, or the zero value and
// false when either index is out of range. Complexity: O(1).
func (m *Matrix[T]) AtOk(i, j int) (T, bool) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		var zero T
		return zero, false
	}

	return m.data[i][j], true
}

// Row returns row i as a borrowed slice. The slice aliases the matrix
// storage: callers must treat it as read-only and must not use it across
// structural mutations. Panics when i is out of range.
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("mat2: row index %d out of range for %d rows", i, m.rows))
	}

	return m.data[i]
}

// RowOk returns row i as a borrowed slice and true, or nil and false
// when i is out of range. Complexity: O(1).
func (m *Matrix[T]) RowOk(i int) ([]T, bool) {
	if i < 0 || i >= m.rows {
		return nil, false
	}

	return m.data[i], true
}

// Clone returns a deep copy of the matrix. The copy shares no storage
// with the original. Complexity: O(rows·cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([][]T, m.rows)
	for i, row := range m.data {
		data[i] = make([]T, m.cols)
		copy(data[i], row)
	}

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports element-wise equality of a and b. Equal matrices
// necessarily have equal dimensions. Complexity: O(rows·cols).
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if a.data[i][j] != b.data[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix for debugging: one space-separated line per
// row between a leading "[" line and a trailing "]" line.
// Complexity: O(rows·cols).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	b.WriteString("[\n")
	for _, row := range m.data {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", v)
		}
		b.WriteByte('\n')
	}
	b.WriteString("]\n")

	return b.String()
}
