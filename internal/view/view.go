// Package view implements View, a non-owning reference wrapper over
// fixed-size multidimensional Go arrays.
//
// A View binds to an existing array and exposes array-like operations
// (indexing, iteration, comparison, deep assignment, fill, swap) that
// recurse through the dimensions, bottoming out at rank 1 where they become
// direct element operations. A View never allocates element storage, never
// extends its own semantics over the array's lifetime beyond aliasing it,
// and is cheap to copy: copying a View copies one slice header and a shape,
// never the referred-to data.
package view

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/ndview/ndview/internal/traits"
)

// Errors reported by view operations. Misuse the original construct rejects
// at the type level (binding a non-array, mutating through a read-only view,
// comparing mismatched shapes) panics with the matching error instead of
// returning it.
var (
	// ErrOutOfRange reports a checked index at or beyond its extent.
	ErrOutOfRange = errors.New("view: index out of range")
	// ErrShapeMismatch reports operands whose shapes differ.
	ErrShapeMismatch = errors.New("view: shape mismatch")
	// ErrReadOnly reports a mutating operation on a read-only view.
	ErrReadOnly = errors.New("view: view is read-only")
	// ErrShortBuffer reports a backing run too small for the requested shape.
	ErrShortBuffer = errors.New("view: buffer too small for shape")
	// ErrBadShape reports a shape with rank 0 or a non-positive extent.
	ErrBadShape = errors.New("view: invalid shape")
)

// View is a non-owning handle to a fixed-size array of element type T.
//
// The zero View is not usable; construct one with Bind, BindConst,
// FromSlice, Window or BindField. A View bound through BindConst is
// read-only: its mutating operations panic with ErrReadOnly. Accessors that
// expose raw storage (Row, Data, Rows, Split2...) alias the underlying array
// in both modes; the read-only contract covers the view's own operations.
type View[T any] struct {
	data  []T
	shape Shape
	ro    bool
}

// elemType returns the reflect type of T.
func elemType[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// bindShape derives the extents of array type at, stripping dimensions until
// the element type elem is reached. elem may itself be an array type.
func bindShape(at, elem reflect.Type) (Shape, error) {
	var shape Shape
	t := at
	for t != elem && traits.IsArray(t) {
		shape = append(shape, traits.Extent(t))
		t = traits.RemoveExtent(t)
	}
	if t != elem {
		return nil, fmt.Errorf("view: array %s has element type %s, not %s",
			at, traits.RemoveAllExtents(at), elem)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}

// bind wraps the array pointed to by rv, which must be a non-nil pointer to
// a built-in array whose (possibly multidimensional) element type is T.
func bind[T any](rv reflect.Value, ro bool) (View[T], error) {
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return View[T]{}, fmt.Errorf("view: bind requires a non-nil pointer to an array, got %s", rv.Kind())
	}
	at := rv.Type().Elem()
	if !traits.IsArray(at) {
		return View[T]{}, fmt.Errorf("view: bind requires a pointer to an array, got *%s", at)
	}
	shape, err := bindShape(at, elemType[T]())
	if err != nil {
		return View[T]{}, err
	}
	data := unsafe.Slice((*T)(rv.UnsafePointer()), shape.NumElements())
	return View[T]{data: data, shape: shape, ro: ro}, nil
}

// Bind wraps an existing array in a mutable view. arrPtr must be a non-nil
// pointer to a fixed-size array whose element type is T; the view's rank and
// every extent are captured from the array's type. T may itself be an array
// type, in which case outer dimensions are stripped only down to T.
//
// Binding misuse (non-array, zero extent, element type mismatch) panics:
// it is a programming error, not a data condition.
//
// Example:
//
//	a := [3][4]int{}
//	v := view.Bind[int](&a) // rank 2, shape {3, 4}
func Bind[T any](arrPtr any) View[T] {
	v, err := bind[T](reflect.ValueOf(arrPtr), false)
	if err != nil {
		panic(err)
	}
	return v
}

// BindConst wraps an existing array in a read-only view. Mutating
// operations on the result panic with ErrReadOnly.
func BindConst[T any](arrPtr any) View[T] {
	v, err := bind[T](reflect.ValueOf(arrPtr), true)
	if err != nil {
		panic(err)
	}
	return v
}

// FromSlice constructs a view over the first shape.NumElements() elements
// of data. The slice must alias array storage the caller keeps alive; the
// view does not copy it. This is the explicit handle+extents form used for
// windows into larger arrays.
func FromSlice[T any](data []T, shape Shape) (View[T], error) {
	if err := shape.Validate(); err != nil {
		return View[T]{}, err
	}
	if n := shape.NumElements(); len(data) < n {
		return View[T]{}, fmt.Errorf("%w: have %d elements, shape %v needs %d",
			ErrShortBuffer, len(data), []int(shape), n)
	}
	return View[T]{data: data[:shape.NumElements()], shape: shape.Clone()}, nil
}

// Rank returns the number of dimensions, always >= 1.
func (v View[T]) Rank() int { return v.shape.Rank() }

// Extent returns the outermost dimension size.
func (v View[T]) Extent() int { return v.shape[0] }

// Size returns the number of outermost elements, equal to Extent.
func (v View[T]) Size() int { return v.shape[0] }

// MaxSize returns Size; the view's size is fixed by its type.
func (v View[T]) MaxSize() int { return v.shape[0] }

// Empty always reports false: zero-extent arrays do not exist in this model.
func (v View[T]) Empty() bool { return false }

// NumElements returns the total number of scalar elements reachable through
// the view.
func (v View[T]) NumElements() int { return v.shape.NumElements() }

// Shape returns a copy of the view's extents, outermost first.
func (v View[T]) Shape() Shape { return v.shape.Clone() }

// ReadOnly reports whether the view was bound through BindConst.
func (v View[T]) ReadOnly() bool { return v.ro }

// ArrayType returns the built-in array type the view represents, including
// every extent. It implements traits.ArrayTyped, so trait queries answer
// identically for a view and for the array it is bound to.
func (v View[T]) ArrayType() reflect.Type {
	t := elemType[T]()
	for i := len(v.shape) - 1; i >= 0; i-- {
		t = reflect.ArrayOf(v.shape[i], t)
	}
	return t
}

// mustWrite panics if the view is read-only.
func (v View[T]) mustWrite() {
	if v.ro {
		panic(ErrReadOnly)
	}
}

// Row returns the contiguous storage of outermost element i as a plain
// slice aliasing the original array: the direct indexing form. For rank > 1
// the slice spans the whole subarray ordered row-major; for rank 1 it has
// length 1. Out-of-range i panics; use RowAt for checked access.
func (v View[T]) Row(i int) []T {
	is := v.shape.InnerSize()
	if i < 0 || i >= v.shape[0] {
		panic(fmt.Errorf("%w: %d with extent %d", ErrOutOfRange, i, v.shape[0]))
	}
	return v.data[i*is : (i+1)*is : (i+1)*is]
}

// RowAt is the checked form of Row.
func (v View[T]) RowAt(i int) ([]T, error) {
	if i < 0 || i >= v.shape[0] {
		return nil, fmt.Errorf("%w: %d with extent %d", ErrOutOfRange, i, v.shape[0])
	}
	return v.Row(i), nil
}

// Front returns the storage of the first outermost element.
func (v View[T]) Front() []T { return v.Row(0) }

// Back returns the storage of the last outermost element.
func (v View[T]) Back() []T { return v.Row(v.shape[0] - 1) }

// Sub returns a view of outermost element i: the wrapped indexing form,
// enabling further view operations on the subarray without re-wrapping.
// The sub-view aliases the same storage and inherits read-only mode.
// Sub requires rank > 1; at rank 1 the elements are scalars, reached with
// Get, Set and Ptr. Out-of-range i panics; use At for checked access.
func (v View[T]) Sub(i int) View[T] {
	if v.Rank() == 1 {
		panic(fmt.Errorf("view: Sub on a rank-1 view; use Get or Set"))
	}
	return View[T]{data: v.Row(i), shape: v.shape.Inner(), ro: v.ro}
}

// At is the checked form of Sub.
func (v View[T]) At(i int) (View[T], error) {
	if v.Rank() == 1 {
		return View[T]{}, fmt.Errorf("view: At on a rank-1 view; use GetAt")
	}
	if i < 0 || i >= v.shape[0] {
		return View[T]{}, fmt.Errorf("%w: %d with extent %d", ErrOutOfRange, i, v.shape[0])
	}
	return v.Sub(i), nil
}

// offset resolves a full multi-index (one index per dimension) to a flat
// element offset. Every coordinate is validated: stride arithmetic with a
// wild coordinate could land on the wrong element while staying in range.
func (v View[T]) offset(ix []int) (int, error) {
	if len(ix) != v.Rank() {
		return 0, fmt.Errorf("view: got %d indices for rank %d", len(ix), v.Rank())
	}
	off := 0
	stride := v.shape.NumElements()
	for d, i := range ix {
		stride /= v.shape[d]
		if i < 0 || i >= v.shape[d] {
			return 0, fmt.Errorf("%w: %d at dimension %d with extent %d",
				ErrOutOfRange, i, d, v.shape[d])
		}
		off += i * stride
	}
	return off, nil
}

// Get returns the scalar element at the given multi-index, one index per
// dimension. Out-of-range indices panic; use GetAt for checked access.
func (v View[T]) Get(ix ...int) T {
	off, err := v.offset(ix)
	if err != nil {
		panic(err)
	}
	return v.data[off]
}

// GetAt is the checked form of Get.
func (v View[T]) GetAt(ix ...int) (T, error) {
	off, err := v.offset(ix)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.data[off], nil
}

// Set writes the scalar element at the given multi-index. It writes through
// to the bound array. Panics with ErrReadOnly on a read-only view.
func (v View[T]) Set(val T, ix ...int) {
	v.mustWrite()
	off, err := v.offset(ix)
	if err != nil {
		panic(err)
	}
	v.data[off] = val
}

// Ptr returns the address of the scalar element at the given multi-index.
// Panics with ErrReadOnly on a read-only view.
func (v View[T]) Ptr(ix ...int) *T {
	v.mustWrite()
	off, err := v.offset(ix)
	if err != nil {
		panic(err)
	}
	return &v.data[off]
}

// Data returns the view's full storage as a flat row-major slice aliasing
// the bound array. The first element shares its address with the array.
func (v View[T]) Data() []T {
	return v.data[:v.shape.NumElements():v.shape.NumElements()]
}

// Array returns a typed pointer to the full underlying array object: the
// same identity, by address, as the array the view was bound to. A must be
// the view's exact array type (shape and element type included).
//
// Read-only views refuse Array with an ErrReadOnly panic: a full-array
// pointer would hand back mutable access. Use Data on read-only views.
func Array[A any, T any](v View[T]) *A {
	v.mustWrite()
	at := reflect.TypeFor[A]()
	if at != v.ArrayType() {
		panic(fmt.Errorf("view: Array type %s does not match view type %s", at, v.ArrayType()))
	}
	return (*A)(unsafe.Pointer(&v.data[0]))
}

// Fill sets every scalar element reachable through the view to val,
// recursing through the dimensions to the rank-1 base case.
// Panics with ErrReadOnly on a read-only view.
func (v View[T]) Fill(val T) {
	v.mustWrite()
	v.fill(val)
}

func (v View[T]) fill(val T) {
	if v.Rank() == 1 {
		for i := range v.data[:v.shape[0]] {
			v.data[i] = val
		}
		return
	}
	for i := 0; i < v.shape[0]; i++ {
		v.Sub(i).fill(val)
	}
}

// CopyFrom deep-copies src's elements into the view's storage. The shapes
// must match exactly (ErrShapeMismatch otherwise). Copying a view from
// itself, or from another view over the same storage, preserves all values.
// Panics with ErrReadOnly on a read-only view.
func (v View[T]) CopyFrom(src View[T]) error {
	v.mustWrite()
	if !v.shape.Equal(src.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, []int(v.shape), []int(src.shape))
	}
	v.copyFrom(src)
	return nil
}

func (v View[T]) copyFrom(src View[T]) {
	if v.Rank() == 1 {
		copy(v.data[:v.shape[0]], src.data[:v.shape[0]])
		return
	}
	for i := 0; i < v.shape[0]; i++ {
		v.Sub(i).copyFrom(src.Sub(i))
	}
}

// Assign deep-copies a whole array value into the view's storage. Composite
// literals work directly, and follow Go's aggregate rules: elements the
// literal leaves out arrive zero-valued, so a partial literal zero-fills the
// rest of the target.
//
//	view.Assign(v, [2][2]bool{{true}}) // sets [0][0], zeroes the rest
//
// A must be the view's exact array type; a mismatch panics, as does a
// read-only view.
func Assign[A any, T any](v View[T], src A) {
	s := BindConst[T](&src)
	if err := v.CopyFrom(s); err != nil {
		panic(err)
	}
}

// AssignArray deep-copies the array pointed to by src into the view's
// storage without copying src to the stack first. Self-assignment (src is
// the view's own array) preserves all values.
func AssignArray[A any, T any](v View[T], src *A) {
	s := BindConst[T](src)
	if err := v.CopyFrom(s); err != nil {
		panic(err)
	}
}
