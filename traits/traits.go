// Copyright 2026 The NDView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package traits provides generalized array-type queries: rank, extent,
// extent stripping and element resolution, answered uniformly for built-in
// Go array types and for view types that implement ArrayTyped.
//
// Example:
//
//	a := [3][4]int{}
//	v := view.Bind[int](&a)
//	traits.RankOf(a) == traits.RankOf(v)   // 2 == 2
//	traits.ExtentOf(a) == traits.ExtentOf(v) // 3 == 3
package traits

import (
	"reflect"

	"github.com/ndview/ndview/internal/traits"
)

// ArrayTyped is implemented by array-like types that report the built-in
// array type they stand in for.
type ArrayTyped = traits.ArrayTyped

// Field is a get/set/addr capability for one named struct field, the
// replacement for a member-pointer handle.
type Field = traits.Field

// Field access errors.
var (
	ErrNoSuchField = traits.ErrNoSuchField
	ErrUnexported  = traits.ErrUnexported
	ErrNotStruct   = traits.ErrNotStruct
)

// Strip removes pointer indirections from t.
func Strip(t reflect.Type) reflect.Type { return traits.Strip(t) }

// IsStripped reports whether t carries no pointer indirection.
func IsStripped(t reflect.Type) bool { return traits.IsStripped(t) }

// IsArray reports whether t is a built-in fixed-size array type.
func IsArray(t reflect.Type) bool { return traits.IsArray(t) }

// Rank returns the number of array dimensions of t, 0 for non-arrays.
func Rank(t reflect.Type) int { return traits.Rank(t) }

// Extent returns the outermost dimension size of t, 0 for non-arrays.
func Extent(t reflect.Type) int { return traits.Extent(t) }

// Extents returns every dimension size of t, outermost first.
func Extents(t reflect.Type) []int { return traits.Extents(t) }

// RemoveExtent strips the outermost dimension of t.
func RemoveExtent(t reflect.Type) reflect.Type { return traits.RemoveExtent(t) }

// RemoveAllExtents strips every dimension of t down to the scalar element.
func RemoveAllExtents(t reflect.Type) reflect.Type { return traits.RemoveAllExtents(t) }

// ArraySize returns the product of all extents of t, 1 for non-arrays.
func ArraySize(t reflect.Type) int { return traits.ArraySize(t) }

// AllSame reports whether every listed type is identical.
func AllSame(ts ...reflect.Type) (reflect.Type, bool) { return traits.AllSame(ts...) }

// TypeOf resolves the array type a value represents, consulting ArrayTyped
// when implemented.
func TypeOf(v any) reflect.Type { return traits.TypeOf(v) }

// RankOf returns the rank of the array type v represents.
func RankOf(v any) int { return traits.RankOf(v) }

// ExtentOf returns the outermost extent of the array type v represents.
func ExtentOf(v any) int { return traits.ExtentOf(v) }

// ArraySizeOf returns the total scalar element count of the array type v
// represents.
func ArraySizeOf(v any) int { return traits.ArraySizeOf(v) }

// FieldOf decomposes the exported field named name of a struct type, value
// or pointer.
func FieldOf(s any, name string) (Field, error) { return traits.FieldOf(s, name) }
