package rref

import "github.com/matkit/matkit/mat2"

// IsRREF reports whether m is in Reduced Row-Echelon Form. The predicate
// never mutates m and short-circuits on the first violated rule:
//
//  1. once an all-zero row appears, every later row is all-zero;
//  2. each nonzero row's leading entry equals one;
//  3. leading entries occur in strictly increasing columns;
//  4. a leading one is the only nonzero entry in its column.
//
// An all-zero matrix and an identity matrix both satisfy the predicate.
// Complexity: O(rows·cols) plus O(rows) per pivot column.
func IsRREF[T mat2.Numeric](m *mat2.Matrix[T]) bool {
	var zero T
	one := T(1)
	rows := m.Rows()

	seenZeroRow := false
	lastPivot := -1
	rowIt := m.RowIter()
	for i := 0; ; i++ {
		row, ok := rowIt.Next()
		if !ok {
			break
		}

		// Locate the leading (leftmost nonzero) entry.
		lead := -1
		for j, v := range row {
			if v != zero {
				lead = j
				break
			}
		}
		if lead < 0 {
			seenZeroRow = true
			continue
		}
		if seenZeroRow {
			return false // nonzero row below an all-zero row
		}
		if row[lead] != one {
			return false
		}
		if lead <= lastPivot {
			return false // pivot columns must strictly increase
		}
		lastPivot = lead

		// The pivot column must be clean everywhere else.
		colIt := m.ColumnIter(lead)
		for k := 0; k < rows; k++ {
			v, _ := colIt.Next()
			if k != i && v != zero {
				return false
			}
		}
	}

	return true
}
