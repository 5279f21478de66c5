package ops

import "github.com/born-ml/trace/internal/tensor"

// NegOp represents element-wise negation: output = -a.
//
// Backward pass:
//   - d(-a)/da = -1, so grad_a = -outputGrad
type NegOp struct{}

// NewNegOp creates a new NegOp.
func NewNegOp() *NegOp {
	return &NegOp{}
}

// Name returns "neg".
func (op *NegOp) Name() string { return "neg" }

// Forward computes -a.
func (op *NegOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	return single(backend.Neg(xs[0]))
}

// Backward negates the output gradient.
func (op *NegOp) Backward(backend tensor.Backend, _, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	return single(backend.Neg(gys[0]))
}
