// Copyright 2026 The NDView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package view

import (
	"cmp"

	"github.com/ndview/ndview/internal/view"
)

// View is a non-owning reference wrapper over a fixed-size multidimensional
// array with element type T. See the package documentation for semantics.
type View[T any] = view.View[T]

// Shape is the ordered list of a view's dimension extents, outermost first.
type Shape = view.Shape

// Errors surfaced by view operations.
var (
	ErrOutOfRange    = view.ErrOutOfRange
	ErrShapeMismatch = view.ErrShapeMismatch
	ErrReadOnly      = view.ErrReadOnly
	ErrShortBuffer   = view.ErrShortBuffer
	ErrBadShape      = view.ErrBadShape
)

// Bind wraps an existing array in a mutable view.
//
// Example:
//
//	a := [3][4]int{}
//	v := view.Bind[int](&a) // rank 2, shape {3, 4}
func Bind[T any](arrPtr any) View[T] {
	return view.Bind[T](arrPtr)
}

// BindConst wraps an existing array in a read-only view.
func BindConst[T any](arrPtr any) View[T] {
	return view.BindConst[T](arrPtr)
}

// FromSlice constructs a view over the leading elements of an existing
// storage run.
func FromSlice[T any](data []T, shape Shape) (View[T], error) {
	return view.FromSlice[T](data, shape)
}

// BindField wraps the array-typed exported struct field named name.
func BindField[T any](structPtr any, name string) (View[T], error) {
	return view.BindField[T](structPtr, name)
}

// Assign deep-copies a whole array value (composite literals included) into
// the view's storage.
//
// Example:
//
//	b := [2][2]bool{}
//	v := view.Bind[bool](&b)
//	view.Assign(v, [2][2]bool{{true}}) // b[0][0] = true, rest zero-filled
func Assign[A any, T any](v View[T], src A) {
	view.Assign(v, src)
}

// AssignArray deep-copies the array pointed to by src into the view's
// storage.
func AssignArray[A any, T any](v View[T], src *A) {
	view.AssignArray(v, src)
}

// SwapArray deep-swaps the view's elements with the array pointed to by arr.
func SwapArray[A any, T any](v View[T], arr *A) {
	view.SwapArray(v, arr)
}

// Array returns a typed pointer to the full underlying array object of a
// mutable view, address-identical to the bound array.
func Array[A any, T any](v View[T]) *A {
	return view.Array[A](v)
}

// Equal reports deep element-wise equality of two same-shape views.
func Equal[T comparable](a, b View[T]) bool {
	return view.Equal(a, b)
}

// EqualArray reports deep element-wise equality of a view and an array.
func EqualArray[A any, T comparable](v View[T], arr *A) bool {
	return view.EqualArray(v, arr)
}

// Compare orders two same-shape views lexicographically as-if flattened
// row-major, returning -1, 0 or +1 in the manner of cmp.Compare.
func Compare[T cmp.Ordered](a, b View[T]) int {
	return view.Compare(a, b)
}

// Less reports whether a orders before b under Compare.
func Less[T cmp.Ordered](a, b View[T]) bool {
	return view.Less(a, b)
}

// CompareArray orders a view against an array of its exact array type.
func CompareArray[A any, T cmp.Ordered](v View[T], arr *A) int {
	return view.CompareArray(v, arr)
}
