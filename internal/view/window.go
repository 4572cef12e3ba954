package view

import "fmt"

// Window returns a view of the given shape over a sub-run of the view's
// storage beginning at flat element offset start. The window's extents must
// describe a contiguous region within the remaining storage
// (ErrShortBuffer otherwise). Windows inherit read-only mode.
//
// Successive windows at increasing offsets give sliding-window access over
// a larger array:
//
//	rows := [4][2]int{}
//	v := view.Bind[int](&rows)
//	w, _ := v.Window(i*2, view.Shape{2, 2}) // rows i and i+1
func (v View[T]) Window(start int, shape Shape) (View[T], error) {
	if err := shape.Validate(); err != nil {
		return View[T]{}, err
	}
	if start < 0 || start > v.shape.NumElements() {
		return View[T]{}, fmt.Errorf("%w: window start %d with %d elements",
			ErrOutOfRange, start, v.shape.NumElements())
	}
	n := shape.NumElements()
	if rest := v.shape.NumElements() - start; rest < n {
		return View[T]{}, fmt.Errorf("%w: %d elements past offset %d, shape %v needs %d",
			ErrShortBuffer, rest, start, []int(shape), n)
	}
	return View[T]{data: v.data[start : start+n : start+n], shape: shape.Clone(), ro: v.ro}, nil
}
