package traits

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  [4]byte
	Count int

	hidden int
}

func TestFieldOf(t *testing.T) {
	want := Field{
		Struct: reflect.TypeFor[record](),
		Name:   "Name",
		Type:   reflect.TypeFor[[4]byte](),
	}

	// Struct value, pointer and reflect.Type all decompose the same way.
	for _, s := range []any{record{}, &record{}, reflect.TypeFor[record]()} {
		f, err := FieldOf(s, "Name")
		require.NoError(t, err)
		typeCmp := cmp.Comparer(func(a, b reflect.Type) bool { return a == b })
		if diff := cmp.Diff(want, f, cmpopts.IgnoreUnexported(Field{}), typeCmp); diff != "" {
			t.Errorf("FieldOf mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestFieldOfErrors(t *testing.T) {
	_, err := FieldOf(record{}, "Nope")
	assert.ErrorIs(t, err, ErrNoSuchField)

	_, err = FieldOf(record{}, "hidden")
	assert.ErrorIs(t, err, ErrUnexported)

	_, err = FieldOf(42, "Name")
	assert.ErrorIs(t, err, ErrNotStruct)
}

func TestFieldGetSet(t *testing.T) {
	f, err := FieldOf(record{}, "Count")
	require.NoError(t, err)

	r := record{Count: 1}
	got, err := f.Get(&r)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	require.NoError(t, f.Set(&r, 7))
	assert.Equal(t, 7, r.Count)

	// Type-checked set.
	assert.Error(t, f.Set(&r, "seven"))
	// Accessor bound to the wrong struct type.
	type other struct{ Count int }
	_, err = f.Get(&other{})
	assert.Error(t, err)
	// Value, not pointer.
	_, err = f.Get(r)
	assert.Error(t, err)
}

func TestFieldAddrAliasesStruct(t *testing.T) {
	f, err := FieldOf(record{}, "Name")
	require.NoError(t, err)

	r := record{}
	addr, err := f.Addr(&r)
	require.NoError(t, err)

	p, ok := addr.(*[4]byte)
	require.True(t, ok, "Addr returned %T", addr)
	assert.Equal(t, &r.Name, p)

	p[0] = 'x'
	assert.Equal(t, byte('x'), r.Name[0])
}
