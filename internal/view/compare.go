package view

import (
	"cmp"
	"fmt"
	"slices"
)

// mustSameShape panics when the operand shapes differ: cross-shape
// comparison is a programming error, not a data condition.
func mustSameShape[T any](a, b View[T]) {
	if !a.shape.Equal(b.shape) {
		panic(fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, []int(a.shape), []int(b.shape)))
	}
}

// Equal reports whether every corresponding scalar element of a and b
// compares equal, recursing through the dimensions. Read-only and mutable
// views over the same shape compare freely; a shape mismatch panics.
func Equal[T comparable](a, b View[T]) bool {
	mustSameShape(a, b)
	return deepEqual(a, b)
}

func deepEqual[T comparable](a, b View[T]) bool {
	if a.Rank() == 1 {
		n := a.shape[0]
		for i := 0; i < n; i++ {
			if a.data[i] != b.data[i] {
				return false
			}
		}
		return true
	}
	for i := 0; i < a.shape[0]; i++ {
		if !deepEqual(a.Sub(i), b.Sub(i)) {
			return false
		}
	}
	return true
}

// EqualArray reports whether the view's elements equal those of the array
// pointed to by arr, which must have the view's exact array type.
func EqualArray[A any, T comparable](v View[T], arr *A) bool {
	return Equal(v, BindConst[T](arr))
}

// Compare orders a and b lexicographically as-if flattened row-major:
// subarrays are compared dimension by dimension, the first unequal subarray
// pair deciding. It returns -1, 0 or +1 in the manner of cmp.Compare.
func Compare[T cmp.Ordered](a, b View[T]) int {
	mustSameShape(a, b)
	return deepCompare(a, b)
}

func deepCompare[T cmp.Ordered](a, b View[T]) int {
	if a.Rank() == 1 {
		n := a.shape[0]
		return slices.Compare(a.data[:n], b.data[:n])
	}
	for i := 0; i < a.shape[0]; i++ {
		if c := deepCompare(a.Sub(i), b.Sub(i)); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether a orders before b under Compare.
func Less[T cmp.Ordered](a, b View[T]) bool {
	return Compare(a, b) < 0
}

// CompareArray orders the view against the array pointed to by arr, which
// must have the view's exact array type.
func CompareArray[A any, T cmp.Ordered](v View[T], arr *A) int {
	return Compare(v, BindConst[T](arr))
}
