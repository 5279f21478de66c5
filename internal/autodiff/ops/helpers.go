package ops

import (
	"errors"
	"fmt"

	"github.com/born-ml/trace/internal/tensor"
)

// ErrArity is returned when an operation receives the wrong number of operands.
var ErrArity = errors.New("wrong number of operands")

// checkArity validates the operand count for a forward or backward call.
func checkArity(name string, got []*tensor.RawTensor, want int) error {
	if len(got) != want {
		return fmt.Errorf("%s: %w: got %d, want %d", name, ErrArity, len(got), want)
	}
	return nil
}

// reduceBroadcast reduces a gradient to match the target shape.
// This is necessary when broadcasting was used in the forward pass.
//
// Example:
//
//	Forward: a[3,1] + b[3,4] -> c[3,4]  (a was broadcast along dim 1)
//	Backward: grad_c[3,4] -> grad_a[3,1] (sum along dim 1)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) (*tensor.RawTensor, error) {
	if grad.Shape().Equal(targetShape) {
		return grad, nil
	}
	return backend.SumTo(grad, targetShape)
}

// single wraps one result as an output slice.
func single(y *tensor.RawTensor, err error) ([]*tensor.RawTensor, error) {
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{y}, nil
}

// pair reduces two gradients to their operand shapes.
func pair(backend tensor.Backend, xs []*tensor.RawTensor, gx0, gx1 *tensor.RawTensor) ([]*tensor.RawTensor, error) {
	g0, err := reduceBroadcast(gx0, xs[0].Shape(), backend)
	if err != nil {
		return nil, err
	}
	g1, err := reduceBroadcast(gx1, xs[1].Shape(), backend)
	if err != nil {
		return nil, err
	}
	return []*tensor.RawTensor{g0, g1}, nil
}
