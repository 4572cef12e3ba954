// Package traits provides generalized compile-time-style queries over array
// types: rank, extent, extent stripping, and element type resolution.
//
// Every query answers uniformly whether it is applied to a built-in Go array
// type ([3][4]int), a pointer to one, or a view type that reports its array
// type through the ArrayTyped interface. Generic algorithms written against
// these queries work over either representation.
package traits

import "reflect"

// ArrayTyped is implemented by array-like class types (notably view.View)
// that stand in for a built-in array type. ArrayType reports the built-in
// array type the value represents, including every extent.
type ArrayTyped interface {
	ArrayType() reflect.Type
}

// Strip removes pointer indirections from t, yielding the underlying type.
// It is the qualifier-stripping primitive the array queries build on:
// Rank, Extent and friends expect a stripped type.
func Strip(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// IsStripped reports whether t carries no pointer indirection.
func IsStripped(t reflect.Type) bool {
	return t != nil && t.Kind() != reflect.Pointer
}

// IsArray reports whether t is a built-in fixed-size array type.
func IsArray(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Array
}

// Rank returns the number of array dimensions of t, 0 for non-array types.
// [3][4]int has rank 2.
func Rank(t reflect.Type) int {
	r := 0
	for IsArray(t) {
		r++
		t = t.Elem()
	}
	return r
}

// Extent returns the outermost dimension size of t, 0 for non-array types.
func Extent(t reflect.Type) int {
	if !IsArray(t) {
		return 0
	}
	return t.Len()
}

// Extents returns every dimension size of t from outermost to innermost.
// Non-array types yield nil.
func Extents(t reflect.Type) []int {
	var ext []int
	for IsArray(t) {
		ext = append(ext, t.Len())
		t = t.Elem()
	}
	return ext
}

// RemoveExtent strips the outermost dimension of t. Non-array types are
// returned unchanged, mirroring remove-extent semantics.
func RemoveExtent(t reflect.Type) reflect.Type {
	if !IsArray(t) {
		return t
	}
	return t.Elem()
}

// RemoveAllExtents strips every dimension of t down to the scalar element
// type. Non-array types are returned unchanged.
func RemoveAllExtents(t reflect.Type) reflect.Type {
	for IsArray(t) {
		t = t.Elem()
	}
	return t
}

// ArraySize returns the total number of scalar elements of t: the product
// of all extents, or 1 for non-array types.
func ArraySize(t reflect.Type) int {
	n := 1
	for IsArray(t) {
		n *= t.Len()
		t = t.Elem()
	}
	return n
}

// AllSame reports whether every type in ts is identical, returning the
// common type. An empty list is vacuously same with a nil type.
func AllSame(ts ...reflect.Type) (reflect.Type, bool) {
	if len(ts) == 0 {
		return nil, true
	}
	for _, t := range ts[1:] {
		if t != ts[0] {
			return nil, false
		}
	}
	return ts[0], true
}

// TypeOf resolves the array type a value represents: an ArrayTyped value
// answers through its ArrayType method, anything else through its stripped
// reflect type. The result may or may not be an array type.
func TypeOf(v any) reflect.Type {
	if at, ok := v.(ArrayTyped); ok {
		return at.ArrayType()
	}
	return Strip(reflect.TypeOf(v))
}

// RankOf returns the rank of the array type v represents.
func RankOf(v any) int {
	return Rank(TypeOf(v))
}

// ExtentOf returns the outermost extent of the array type v represents.
func ExtentOf(v any) int {
	return Extent(TypeOf(v))
}

// ArraySizeOf returns the total scalar element count of the array type v
// represents.
func ArraySizeOf(v any) int {
	return ArraySize(TypeOf(v))
}
