// Package matkit is a small toolkit for dense two-dimensional matrices
// over generic element types, centered on Gauss-Jordan reduction to
// Reduced Row-Echelon Form.
//
// What is matkit?
//
//	A pure-library core with a thin CLI on top:
//		• mat2/  — generic dense Matrix[T]: construction, access, row and
//		  column iterators, structural mutation, elementary row operations
//		• rref/  — Gauss-Jordan elimination to RREF and the IsRREF predicate
//		• cmd/matkit — reduce/check/dims commands over YAML matrix files
//
// Why matkit?
//
//   - Per-operation capability bounds — plain access works for any T,
//     row algebra needs Numeric, elimination needs Field
//   - Atomic mutation contract — shape-changing operations validate
//     fully before the first write, or fail with a sentinel error
//   - No hidden state — single-threaded, synchronous, caller-owned
//
// Quick taste:
//
//	m, _ := mat2.FromRows([][]float64{{1, 2, 3}, {1, 5, 6}, {1, 8, 9}})
//	rref.Reduce(m)
//	fmt.Print(m) // now in reduced row-echelon form
//
// See README.md for the full API walk-through.
package matkit
