package ops

import "github.com/born-ml/trace/internal/tensor"

// SinOp represents the sine operation: y = sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
//   - grad_input = grad_output * cos(input)
type SinOp struct{}

// NewSinOp creates a new SinOp.
func NewSinOp() *SinOp {
	return &SinOp{}
}

// Name returns "sin".
func (op *SinOp) Name() string { return "sin" }

// Forward computes sin(x).
func (op *SinOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	return single(backend.Sin(xs[0]))
}

// Backward computes grad_output * cos(input).
func (op *SinOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	cosInput, err := backend.Cos(xs[0])
	if err != nil {
		return nil, err
	}
	return single(backend.Mul(gys[0], cosInput))
}
