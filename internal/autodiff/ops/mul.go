package ops

import "github.com/born-ml/trace/internal/tensor"

// MulOp represents an element-wise multiplication: output = a * b.
//
// Backward pass uses the forward-time operand values:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// NewMulOp creates a new MulOp.
func NewMulOp() *MulOp {
	return &MulOp{}
}

// Name returns "mul".
func (op *MulOp) Name() string { return "mul" }

// Forward computes a * b.
func (op *MulOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 2); err != nil {
		return nil, err
	}
	return single(backend.Mul(xs[0], xs[1]))
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 2); err != nil {
		return nil, err
	}
	a, b, gy := xs[0], xs[1], gys[0]

	gradA, err := backend.Mul(gy, b)
	if err != nil {
		return nil, err
	}
	gradB, err := backend.Mul(gy, a)
	if err != nil {
		return nil, err
	}
	return pair(backend, xs, gradA, gradB)
}
