package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignFullLiteral(t *testing.T) {
	b := [2][2]bool{{true, true}, {true, true}}
	v := Bind[bool](&b)

	Assign(v, [2][2]bool{}) // clears everything
	assert.Equal(t, [2][2]bool{}, b)

	Assign(v, [2][2]bool{{false, true}, {true, false}})
	assert.Equal(t, [2][2]bool{{false, true}, {true, false}}, b)
}

// TestAssignPartialLiteral pins the aggregate-initialization convention:
// elements a literal leaves out arrive zero-valued, so a partial literal
// zero-fills the rest of the target rather than leaving it untouched.
func TestAssignPartialLiteral(t *testing.T) {
	b := [2][2]bool{{true, true}, {true, true}}
	v := Bind[bool](&b)

	Assign(v, [2][2]bool{{true}})
	assert.Equal(t, [2][2]bool{{true, false}, {false, false}}, b)
}

func TestAssignFromArrayValue(t *testing.T) {
	b := [2][2]bool{}
	c := [2][2]bool{{false, true}, {true, false}}

	Assign(Bind[bool](&b), c)
	assert.Equal(t, c, b)

	// The source was copied by value; mutating b does not touch c.
	b[0][0] = true
	assert.Equal(t, [2][2]bool{{false, true}, {true, false}}, c)
}

func TestSelfAssignPreservesValues(t *testing.T) {
	b := [2][2]bool{{false, true}, {true, false}}
	v := Bind[bool](&b)

	AssignArray(v, &b) // assign the view from its own array
	assert.Equal(t, [2][2]bool{{false, true}, {true, false}}, b)

	require.NoError(t, v.CopyFrom(v)) // and from itself
	assert.Equal(t, [2][2]bool{{false, true}, {true, false}}, b)
}

func TestCopyFromView(t *testing.T) {
	src := [3][3]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	var dst [3][3]float64

	require.NoError(t, Bind[float64](&dst).CopyFrom(BindConst[float64](&src)))
	assert.Equal(t, src, dst)
}

func TestCopyFromShapeMismatch(t *testing.T) {
	a := [2][2]int{}
	b := [4]int{}
	err := Bind[int](&a).CopyFrom(Bind[int](&b))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAssignRowsOfByteBuffers(t *testing.T) {
	var from, to [2][4]byte

	// Row-level assignment through rank-1 views, then a whole-array copy.
	Assign(Bind[byte](&from).Sub(0), [4]byte{'a', 'b', 'c', 0})
	Bind[byte](&from).Set('g', 1, 2)

	require.NoError(t, Bind[byte](&to).CopyFrom(BindConst[byte](&from)))
	assert.Equal(t, byte('a'), to[0][0])
	assert.Equal(t, byte('g'), to[1][2])

	to[0][3] = 'd'
	to[1][3] = 'h'
	AssignArray(Bind[byte](&from).Sub(0), &to[0])
	assert.Equal(t, byte('d'), from[0][3])
	assert.Equal(t, byte(0), from[1][3])
}

func TestAssignThroughStructField(t *testing.T) {
	type object struct {
		Str [4]byte
	}
	o := object{Str: [4]byte{'C', '+', '+', 0}}

	v, err := BindField[byte](&o, "Str")
	require.NoError(t, err)

	Assign(v, [4]byte{})
	assert.Equal(t, [4]byte{}, o.Str)

	Assign(v, [4]byte{'+', '+', 'C', 0})
	assert.Equal(t, byte('+'), o.Str[0])

	AssignArray(v, &[4]byte{'C', '-', '-', 0})
	assert.Equal(t, byte('C'), o.Str[0])
}

func TestBindFieldErrors(t *testing.T) {
	type object struct {
		Str [4]byte
		N   int
	}
	o := object{}

	_, err := BindField[byte](&o, "Missing")
	require.Error(t, err)

	_, err = BindField[byte](&o, "N")
	require.Error(t, err)

	_, err = BindField[int](&o, "Str")
	require.Error(t, err)
}
