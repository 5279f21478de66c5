package tensor

import (
	"fmt"
	"slices"
)

// Shape represents the dimensions of a payload. An empty Shape is a scalar.
type Shape []int

// NumElements returns the total number of elements; 1 for a scalar.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate rejects non-positive dimensions.
func (s Shape) Validate() error {
	for axis, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("dimension %d of %v is %d, must be positive", axis, s, dim)
		}
	}
	return nil
}

// Equal reports whether both shapes have the same dimensions.
// A nil and an empty Shape are equal.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns an independent copy. The copy of a scalar shape is empty,
// never nil.
func (s Shape) Clone() Shape {
	return append(Shape{}, s...)
}

// ComputeStrides returns row-major element strides: the innermost axis has
// stride 1 and each outer axis spans the product of the axes inside it.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for axis := len(s) - 1; axis >= 0; axis-- {
		strides[axis] = step
		step *= s[axis]
	}
	return strides
}

// BroadcastShapes returns the shape produced by combining operands of
// shapes a and b under NumPy broadcasting.
//
// Shapes are aligned on their trailing axes; a missing axis counts as 1.
// Two sizes are compatible when they are equal or one of them is 1.
// The boolean reports whether either operand has to be expanded.
//
// Examples:
//
//	(3, 1) + (3, 5) -> (3, 5), true
//	()     + (3, 5) -> (3, 5), true
//	(3, 5) + (3, 5) -> (3, 5), false
//	(3, 4) + (3, 5) -> error wrapping ErrShapeMismatch
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	rank := max(len(a), len(b))
	out := make(Shape, rank)
	expanded := len(a) != len(b)

	for axis := rank - 1; axis >= 0; axis-- {
		da := dimFromRight(a, rank-1-axis)
		db := dimFromRight(b, rank-1-axis)
		switch {
		case da == db:
			out[axis] = da
		case da == 1:
			out[axis], expanded = db, true
		case db == 1:
			out[axis], expanded = da, true
		default:
			return nil, false, fmt.Errorf("%w: %v and %v differ on axis %d (%d vs %d)",
				ErrShapeMismatch, a, b, axis, da, db)
		}
	}
	return out, expanded, nil
}

// dimFromRight returns the size of the k-th trailing axis, or 1 past the
// leading axis.
func dimFromRight(s Shape, k int) int {
	if k >= len(s) {
		return 1
	}
	return s[len(s)-1-k]
}
