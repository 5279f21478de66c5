package cpu

import (
	"fmt"

	"github.com/born-ml/trace/internal/tensor"
)

// SumTo reduces x by summation so that its shape becomes shape.
// shape must broadcast to x.Shape(); this is the adjoint of broadcasting.
//
// Example:
//
//	x: [3, 4], shape: [3, 1] -> sum along dim 1
//	x: [3, 4], shape: []     -> sum of all elements
func (cpu *CPUBackend) SumTo(x *tensor.RawTensor, shape tensor.Shape) (*tensor.RawTensor, error) {
	if x.Shape().Equal(shape) {
		return x, nil
	}

	target, _, err := tensor.BroadcastShapes(shape, x.Shape())
	if err != nil || !target.Equal(x.Shape()) {
		return nil, fmt.Errorf("sum to: %w: cannot reduce %v to %v", tensor.ErrShapeMismatch, x.Shape(), shape)
	}

	result, err := tensor.NewRaw(shape, x.DType())
	if err != nil {
		return nil, fmt.Errorf("sum to: %w", err)
	}

	idx := newBroadcastIndex(shape, x.Shape())
	switch x.DType() {
	case tensor.Float32:
		accumulate(result.AsFloat32(), x.AsFloat32(), idx)
	default:
		accumulate(result.AsFloat64(), x.AsFloat64(), idx)
	}

	return result, nil
}

// accumulate adds every source element into the destination element it was
// broadcast from.
func accumulate[T tensor.Float](dst, src []T, idx broadcastIndex) {
	for i, v := range src {
		dst[idx.at(i)] += v
	}
}
