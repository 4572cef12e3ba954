package view

import (
	"fmt"
	"reflect"

	"github.com/ndview/ndview/internal/traits"
)

// BindField wraps the array-typed exported field named name of the struct
// pointed to by structPtr, so deep assignment and the other view operations
// apply to the field in place:
//
//	type object struct{ Tag [4]byte }
//	var o object
//	v, err := view.BindField[byte](&o, "Tag")
//	view.Assign(v, [4]byte{'n', 'a', 'm', 'e'})
//
// The field accessor replaces a member-pointer handle; shape and element
// type are captured from the field's type like Bind captures them from an
// array's type.
func BindField[T any](structPtr any, name string) (View[T], error) {
	f, err := traits.FieldOf(structPtr, name)
	if err != nil {
		return View[T]{}, err
	}
	if !traits.IsArray(f.Type) {
		return View[T]{}, fmt.Errorf("view: field %s.%s is %s, not an array", f.Struct, name, f.Type)
	}
	addr, err := f.Addr(structPtr)
	if err != nil {
		return View[T]{}, err
	}
	return bind[T](reflect.ValueOf(addr), false)
}
