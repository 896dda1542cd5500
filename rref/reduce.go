package rref

import "github.com/matkit/matkit/mat2"

// Reduce transforms m in place into Reduced Row-Echelon Form using
// Gauss-Jordan elimination. It composes only mat2's structural and
// row-algebra operations: swap the pivot row up, normalize it so the
// pivot entry becomes one, then eliminate the pivot column from every
// other row, above and below.
//
// Columns with no nonzero entry at or below the current pivot row are
// free columns and are skipped without advancing the pivot row. The
// pass stops once min(rows, cols) pivots have been placed.
// Complexity: O(rows·cols·min(rows,cols)).
func Reduce[T mat2.Field](m *mat2.Matrix[T]) {
	var zero T
	one := T(1)
	rows, cols := m.Rows(), m.Cols()
	limit := min(rows, cols)

	r := 0 // next pivot row
	for j := 0; j < cols && r < limit; j++ {
		// Find a row at or below r with a nonzero entry in column j.
		pivot := -1
		for i := r; i < rows; i++ {
			if m.At(i, j) != zero {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue // free column, pivot row stays put
		}
		if pivot != r {
			m.SwapRows(pivot, r)
		}

		// Normalize: divide row r by the pivot entry. Division rather
		// than multiplying by 1/pivot keeps the pivot exactly one
		// (p/p == 1 holds for every finite p, p*(1/p) does not), which
		// in turn makes every eliminated entry below exactly zero.
		if pv := m.At(r, j); pv != one {
			row := m.Row(r)
			norm := make([]T, len(row))
			for c := range row {
				norm[c] = row[c] / pv
			}
			m.SetRow(r, norm)
		}

		// Clear column j everywhere else.
		for k := 0; k < rows; k++ {
			if k == r {
				continue
			}
			if e := m.At(k, j); e != zero {
				mat2.AddScaledRow(m, k, r, -e)
			}
		}
		r++
	}
}
