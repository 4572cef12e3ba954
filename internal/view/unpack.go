package view

import "fmt"

// Positional decomposition: Split2, Split3 and Split4 unpack the outermost
// dimension into individual bindings, the multiple-assignment counterpart of
// a structured binding. Each returned slice aliases the original storage, so
// a mutation through a binding is visible through the array and vice versa,
// whether the view is held by value or by pointer. The view's extent must
// match the split arity.
//
//	rows := [2][4]byte{}
//	a, b := view.Bind[byte](&rows).Split2()

func (v View[T]) mustExtent(n int) {
	if v.shape[0] != n {
		panic(fmt.Errorf("view: cannot split extent %d into %d bindings", v.shape[0], n))
	}
}

// Split2 unpacks a view of extent 2.
func (v View[T]) Split2() ([]T, []T) {
	v.mustExtent(2)
	return v.Row(0), v.Row(1)
}

// Split3 unpacks a view of extent 3.
func (v View[T]) Split3() ([]T, []T, []T) {
	v.mustExtent(3)
	return v.Row(0), v.Row(1), v.Row(2)
}

// Split4 unpacks a view of extent 4.
func (v View[T]) Split4() ([]T, []T, []T, []T) {
	v.mustExtent(4)
	return v.Row(0), v.Row(1), v.Row(2), v.Row(3)
}
