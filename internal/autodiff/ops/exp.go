package ops

import "github.com/born-ml/trace/internal/tensor"

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x)
//   - grad_input = grad_output * exp(x)
//
// exp(x) is recomputed from the retained input rather than read from the
// output, which the graph holds only weakly.
type ExpOp struct{}

// NewExpOp creates a new ExpOp.
func NewExpOp() *ExpOp {
	return &ExpOp{}
}

// Name returns "exp".
func (op *ExpOp) Name() string { return "exp" }

// Forward computes exp(x).
func (op *ExpOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	return single(backend.Exp(xs[0]))
}

// Backward computes grad_output * exp(x).
func (op *ExpOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	y, err := backend.Exp(xs[0])
	if err != nil {
		return nil, err
	}
	return single(backend.Mul(gys[0], y))
}
