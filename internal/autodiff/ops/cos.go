package ops

import "github.com/born-ml/trace/internal/tensor"

// CosOp represents the cosine operation: y = cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
//   - grad_input = grad_output * (-sin(input))
type CosOp struct{}

// NewCosOp creates a new CosOp.
func NewCosOp() *CosOp {
	return &CosOp{}
}

// Name returns "cos".
func (op *CosOp) Name() string { return "cos" }

// Forward computes cos(x).
func (op *CosOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	return single(backend.Cos(xs[0]))
}

// Backward computes grad_output * (-sin(input)).
func (op *CosOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	sinInput, err := backend.Sin(xs[0])
	if err != nil {
		return nil, err
	}
	negSin, err := backend.MulScalar(sinInput, -1)
	if err != nil {
		return nil, err
	}
	return single(backend.Mul(gys[0], negSin))
}
