package view

import (
	"errors"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
		{Shape{5, 6, 7, 8, 9, 10}, 151200},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	for _, s := range []Shape{{}, {0}, {2, 0}, {-1, 3}} {
		err := s.Validate()
		if err == nil {
			t.Errorf("%v.Validate() = nil, want error", s)
			continue
		}
		if !errors.Is(err, ErrBadShape) {
			t.Errorf("%v.Validate() = %v, want ErrBadShape", s, err)
		}
	}
}

func TestShapeInner(t *testing.T) {
	s := Shape{2, 3, 4}
	if !s.Inner().Equal(Shape{3, 4}) {
		t.Errorf("Inner() = %v, want [3 4]", s.Inner())
	}
	if got := s.InnerSize(); got != 12 {
		t.Errorf("InnerSize() = %d, want 12", got)
	}
	if got := (Shape{7}).InnerSize(); got != 1 {
		t.Errorf("rank-1 InnerSize() = %d, want 1", got)
	}
}

func TestShapeComputeStrides(t *testing.T) {
	s := Shape{2, 3, 4}
	want := []int{12, 4, 1}
	got := s.ComputeStrides()
	if len(got) != len(want) {
		t.Fatalf("ComputeStrides() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stride[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 2 {
		t.Error("Clone shares storage with original")
	}
}
