package traits

import (
	"errors"
	"fmt"
	"reflect"
)

// Field access errors.
var (
	ErrNoSuchField = errors.New("traits: no such field")
	ErrUnexported  = errors.New("traits: field is unexported")
	ErrNotStruct   = errors.New("traits: not a struct type")
)

// Field is a capability for one named field of a struct type: a get/set/addr
// accessor pair decomposed from the struct type, standing in for a member
// pointer. It lets deep-assignment logic route through an array-typed field
// without the caller touching reflection directly.
type Field struct {
	// Struct is the owning struct type.
	Struct reflect.Type
	// Name is the field name within Struct.
	Name string
	// Type is the field's own type.
	Type reflect.Type

	index []int
}

// FieldOf decomposes the field named name of s, where s is a struct value,
// a pointer to one, or a reflect.Type of one. The field must be exported.
func FieldOf(s any, name string) (Field, error) {
	t, ok := s.(reflect.Type)
	if !ok {
		t = Strip(reflect.TypeOf(s))
	}
	t = Strip(t)
	if t == nil || t.Kind() != reflect.Struct {
		return Field{}, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}
	sf, ok := t.FieldByName(name)
	if !ok {
		return Field{}, fmt.Errorf("%w: %s.%s", ErrNoSuchField, t, name)
	}
	if !sf.IsExported() {
		return Field{}, fmt.Errorf("%w: %s.%s", ErrUnexported, t, name)
	}
	return Field{Struct: t, Name: name, Type: sf.Type, index: sf.Index}, nil
}

// value resolves the field within structPtr, which must be a non-nil
// pointer to the decomposed struct type.
func (f Field) value(structPtr any) (reflect.Value, error) {
	rv := reflect.ValueOf(structPtr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("traits: Field accessor requires a non-nil *%s, got %T", f.Struct, structPtr)
	}
	if rv.Type().Elem() != f.Struct {
		return reflect.Value{}, fmt.Errorf("traits: Field accessor for %s applied to %T", f.Struct, structPtr)
	}
	return rv.Elem().FieldByIndex(f.index), nil
}

// Get returns the field's current value within structPtr.
func (f Field) Get(structPtr any) (any, error) {
	fv, err := f.value(structPtr)
	if err != nil {
		return nil, err
	}
	return fv.Interface(), nil
}

// Set writes v to the field within structPtr. The value's type must match
// the field type exactly.
func (f Field) Set(structPtr any, v any) error {
	fv, err := f.value(structPtr)
	if err != nil {
		return err
	}
	rv := reflect.ValueOf(v)
	if rv.Type() != f.Type {
		return fmt.Errorf("traits: cannot set %s.%s (%s) from %T", f.Struct, f.Name, f.Type, v)
	}
	fv.Set(rv)
	return nil
}

// Addr returns a pointer to the field within structPtr, typed *FieldType.
// View binding uses it to wrap array-typed fields in place.
func (f Field) Addr(structPtr any) (any, error) {
	fv, err := f.value(structPtr)
	if err != nil {
		return nil, err
	}
	return fv.Addr().Interface(), nil
}
