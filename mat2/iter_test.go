package mat2_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRowIter verifies rows come out in order and exhaustion is sticky.
func TestRowIter(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	it := m.RowIter()
	for _, want := range [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}} {
		row, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, want, row)
	}
	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.Next()
	require.False(t, ok, "exhaustion must be idempotent")
}

// TestRowIter_Restart verifies a fresh iterator restarts the sequence.
func TestRowIter_Restart(t *testing.T) {
	m := mustFromRows(t, [][]int{{1}, {2}})

	it := m.RowIter()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
	}

	fresh := m.RowIter()
	row, ok := fresh.Next()
	require.True(t, ok)
	require.Equal(t, []int{1}, row)
}

// TestColumnIter verifies per-column traversal over every column.
func TestColumnIter(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	cases := []struct {
		col  int
		want []int
	}{
		{0, []int{1, 4, 7}},
		{1, []int{2, 5, 8}},
		{2, []int{3, 6, 9}},
	}
	for _, tc := range cases {
		it := m.ColumnIter(tc.col)
		for _, want := range tc.want {
			v, ok := it.Next()
			require.True(t, ok)
			require.Equal(t, want, v)
		}
		_, ok := it.Next()
		require.False(t, ok, "column %d should exhaust after %d entries", tc.col, len(tc.want))
	}
}

// TestColumnIter_OutOfRange verifies an invalid column index yields an
// immediately and permanently exhausted sequence, never an error.
func TestColumnIter_OutOfRange(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	it := m.ColumnIter(3)
	_, ok := it.Next()
	require.False(t, ok)
	_, ok = it.Next()
	require.False(t, ok)

	neg := m.ColumnIter(-1)
	_, ok = neg.Next()
	require.False(t, ok)
}
