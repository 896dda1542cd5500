package mat2

// RowIterator is a lazy, forward-only view over the rows of a matrix.
// Obtain a fresh iterator to restart the sequence. The iterator borrows
// the matrix storage and is invalidated by structural mutation.
type RowIterator[T any] struct {
	m *Matrix[T]
	i int
}

// RowIter returns an iterator yielding rows 0..Rows()-1 in order.
// Complexity: O(1); each Next is O(1).
func (m *Matrix[T]) RowIter() *RowIterator[T] {
	return &RowIterator[T]{m: m}
}

// Next returns the next row as a borrowed slice. Once past the last row
// it reports (nil, false) on this and every subsequent call.
func (it *RowIterator[T]) Next() ([]T, bool) {
	row, ok := it.m.RowOk(it.i)
	if ok {
		it.i++
	}

	return row, ok
}

// ColumnIterator is a lazy, forward-only view over one column's entries,
// top to bottom. A column index that is out of range yields an iterator
// that is exhausted from the start; exhaustion is idempotent.
type ColumnIterator[T any] struct {
	m      *Matrix[T]
	col, i int
}

// ColumnIter returns an iterator over the entries of column col across
// rows 0..Rows()-1. It iterates a single column, not all of them.
// Complexity: O(1); each Next is O(1).
func (m *Matrix[T]) ColumnIter(col int) *ColumnIterator[T] {
	return &ColumnIterator[T]{m: m, col: col}
}

// Next returns the next entry of the column. Out-of-range column indices
// and past-the-end positions both report (zero, false), forever.
func (it *ColumnIterator[T]) Next() (T, bool) {
	v, ok := it.m.AtOk(it.i, it.col)
	if ok {
		it.i++
	}

	return v, ok
}
