package view

import "fmt"

// Swap exchanges the two views' handles: after the call each view refers to
// the storage the other referred to before. No element data moves. This is
// the shallow counterpart of DeepSwap; the two must not be confused.
// Swapping a view with itself is a no-op. Shallow swap is permitted on
// read-only views, as it never touches element storage.
func (v *View[T]) Swap(o *View[T]) {
	*v, *o = *o, *v
}

// DeepSwap exchanges elements between the two views' storage, element by
// element, recursing through the dimensions. The shapes must match exactly
// (ErrShapeMismatch otherwise) and both views must be mutable. Swapping a
// view with its own storage is a value-preserving no-op.
func (v View[T]) DeepSwap(o View[T]) error {
	v.mustWrite()
	o.mustWrite()
	if !v.shape.Equal(o.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, []int(v.shape), []int(o.shape))
	}
	v.deepSwap(o)
	return nil
}

func (v View[T]) deepSwap(o View[T]) {
	if v.Rank() == 1 {
		n := v.shape[0]
		for i := 0; i < n; i++ {
			v.data[i], o.data[i] = o.data[i], v.data[i]
		}
		return
	}
	for i := 0; i < v.shape[0]; i++ {
		v.Sub(i).deepSwap(o.Sub(i))
	}
}

// SwapArray deep-swaps the view's elements with those of the array pointed
// to by arr, which must have the view's exact array type. Swapping a view
// with the very array it is bound to is a no-op.
func SwapArray[A any, T any](v View[T], arr *A) {
	if err := v.DeepSwap(Bind[T](arr)); err != nil {
		panic(err)
	}
}
