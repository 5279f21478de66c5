package ops

import "github.com/born-ml/trace/internal/tensor"

// DivOp represents an element-wise division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = outputGrad * (-a / b²)
type DivOp struct{}

// NewDivOp creates a new DivOp.
func NewDivOp() *DivOp {
	return &DivOp{}
}

// Name returns "div".
func (op *DivOp) Name() string { return "div" }

// Forward computes a / b.
func (op *DivOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 2); err != nil {
		return nil, err
	}
	return single(backend.Div(xs[0], xs[1]))
}

// Backward computes input gradients for division.
func (op *DivOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 2); err != nil {
		return nil, err
	}
	a, b, gy := xs[0], xs[1], gys[0]

	gradA, err := backend.Div(gy, b)
	if err != nil {
		return nil, err
	}

	// grad_b = -(gy * a) / b²
	bSquared, err := backend.Mul(b, b)
	if err != nil {
		return nil, err
	}
	numerator, err := backend.Mul(gy, a)
	if err != nil {
		return nil, err
	}
	quotient, err := backend.Div(numerator, bSquared)
	if err != nil {
		return nil, err
	}
	gradB, err := backend.Neg(quotient)
	if err != nil {
		return nil, err
	}
	return pair(backend, xs, gradA, gradB)
}
