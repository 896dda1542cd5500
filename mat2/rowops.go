package mat2

import "fmt"

// ScaleRow multiplies every element of row i by a, in place.
// Panics when i is out of range. Complexity: O(cols).
//
// ScaleRow is a package-level function rather than a method so that the
// Numeric bound applies to this operation alone: matrices over
// non-numeric element types keep their full access/mutation surface.
func ScaleRow[T Numeric](m *Matrix[T], i int, a T) {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("mat2: ScaleRow(%d) out of range for %d rows", i, m.rows))
	}
	row := m.data[i]
	for j := range row {
		row[j] *= a
	}
}

// AddScaledRow sets target[j] = source[j]*a + target[j] for every column
// j, in place. The source row is read in full before the target row is
// written, so target == source is safe (if degenerate). Panics when
// either index is out of range. Complexity: O(cols) time and memory.
func AddScaledRow[T Numeric](m *Matrix[T], target, source int, a T) {
	if target < 0 || target >= m.rows || source < 0 || source >= m.rows {
		panic(fmt.Sprintf("mat2: AddScaledRow(%d,%d) out of range for %d rows", target, source, m.rows))
	}
	src, dst := m.data[source], m.data[target]
	// Build the new target row from a full read of both operands before
	// storing it, mirroring SetRow semantics.
	sum := make([]T, m.cols)
	for j := range sum {
		sum[j] = src[j]*a + dst[j]
	}
	m.data[target] = sum
}
