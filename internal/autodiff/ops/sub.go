package ops

import "github.com/born-ml/trace/internal/tensor"

// SubOp represents an element-wise subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// NewSubOp creates a new SubOp.
func NewSubOp() *SubOp {
	return &SubOp{}
}

// Name returns "sub".
func (op *SubOp) Name() string { return "sub" }

// Forward computes a - b.
func (op *SubOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 2); err != nil {
		return nil, err
	}
	return single(backend.Sub(xs[0], xs[1]))
}

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 2); err != nil {
		return nil, err
	}
	gy := gys[0]
	negGy, err := backend.Neg(gy)
	if err != nil {
		return nil, err
	}
	return pair(backend, xs, gy, negGy)
}
