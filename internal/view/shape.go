package view

import "fmt"

// Shape is the ordered list of dimension extents of a view, outermost first.
// A valid shape has rank >= 1 and every extent > 0: zero-size arrays do not
// exist in this model.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of scalar elements the shape spans.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has rank >= 1 and all extents > 0.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: rank 0", ErrBadShape)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: extent %d at dimension %d", ErrBadShape, dim, i)
		}
	}
	return nil
}

// Equal reports whether two shapes have identical rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Inner returns the shape with the outermost dimension stripped.
// The result of stripping a rank-1 shape is the empty (scalar) shape.
func (s Shape) Inner() Shape {
	return s[1:]
}

// InnerSize returns the number of scalar elements per outermost element:
// the product of all inner extents, 1 for rank-1 shapes.
func (s Shape) InnerSize() int {
	return s.Inner().NumElements()
}

// ComputeStrides calculates row-major strides: stride[i] is the scalar
// distance between consecutive elements along dimension i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}
