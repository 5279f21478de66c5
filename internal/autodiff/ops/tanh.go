package ops

import "github.com/born-ml/trace/internal/tensor"

// TanhOp represents the hyperbolic tangent: y = tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x)
//   - grad_input = grad_output * (1 - tanh²(x))
type TanhOp struct{}

// NewTanhOp creates a new TanhOp.
func NewTanhOp() *TanhOp {
	return &TanhOp{}
}

// Name returns "tanh".
func (op *TanhOp) Name() string { return "tanh" }

// Forward computes tanh(x).
func (op *TanhOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	return single(backend.Tanh(xs[0]))
}

// Backward computes grad_output * (1 - tanh²(x)).
func (op *TanhOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	y, err := backend.Tanh(xs[0])
	if err != nil {
		return nil, err
	}
	ySquared, err := backend.Mul(y, y)
	if err != nil {
		return nil, err
	}
	derivative, err := backend.Sub(tensor.OnesLike(y), ySquared)
	if err != nil {
		return nil, err
	}
	return single(backend.Mul(gys[0], derivative))
}
