package ops

import "github.com/born-ml/trace/internal/tensor"

// SquareOp represents y = a².
//
// Backward pass:
//   - d(a²)/da = 2a, so grad_a = 2a * outputGrad
type SquareOp struct{}

// NewSquareOp creates a new SquareOp.
func NewSquareOp() *SquareOp {
	return &SquareOp{}
}

// Name returns "square".
func (op *SquareOp) Name() string { return "square" }

// Forward computes a².
func (op *SquareOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	return single(backend.Mul(xs[0], xs[0]))
}

// Backward computes 2a * outputGrad.
func (op *SquareOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	twoA, err := backend.MulScalar(xs[0], 2)
	if err != nil {
		return nil, err
	}
	return single(backend.Mul(twoA, gys[0]))
}
