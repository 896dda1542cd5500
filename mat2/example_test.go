package mat2_test

import (
	"fmt"

	"github.com/matkit/matkit/mat2"
)

// ExampleMatrix_Augment shows how augmenting appends another matrix's
// columns row-wise, the usual prelude to solving a linear system.
func ExampleMatrix_Augment() {
	a, _ := mat2.FromRows([][]int{
		{1, 2},
		{3, 4},
	})
	b, _ := mat2.FromRows([][]int{
		{5},
		{6},
	})

	_ = a.Augment(b)
	fmt.Print(a)

	// Output:
	// [
	// 1 2 5
	// 3 4 6
	// ]
}

// ExampleMatrix_ColumnIter walks a single column top to bottom.
func ExampleMatrix_ColumnIter() {
	m, _ := mat2.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	it := m.ColumnIter(1)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Println(v)
	}

	// Output:
	// 2
	// 5
	// 8
}
