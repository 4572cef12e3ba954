package view

import "iter"

// Rows returns a forward iterator over the outermost dimension. Each step
// yields the index and the plain storage of that element, as Row would
// return it. The sequence is finite and restartable.
//
//	for i, row := range v.Rows() { ... }
func (v View[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < v.shape[0]; i++ {
			if !yield(i, v.Row(i)) {
				return
			}
		}
	}
}

// RowsBackward returns the reverse-order counterpart of Rows.
func (v View[T]) RowsBackward() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := v.shape[0] - 1; i >= 0; i-- {
			if !yield(i, v.Row(i)) {
				return
			}
		}
	}
}

// Elems returns an iterator over every scalar element in flat row-major
// order, yielding the flat offset and the element value.
func (v View[T]) Elems() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := v.shape.NumElements()
		for i := 0; i < n; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Subs returns a forward iterator over the outermost dimension yielding
// sub-views instead of raw storage: the wrapped counterpart of Rows.
// Requires rank > 1.
func (v View[T]) Subs() iter.Seq2[int, View[T]] {
	return func(yield func(int, View[T]) bool) {
		for i := 0; i < v.shape[0]; i++ {
			if !yield(i, v.Sub(i)) {
				return
			}
		}
	}
}
