package ops

import "github.com/born-ml/trace/internal/tensor"

// PowOp raises its input to a constant power: output = a^c.
// The exponent is fixed at construction and is not differentiated.
//
// Backward pass:
//   - d(a^c)/da = c * a^(c-1), so grad_a = c * a^(c-1) * outputGrad
type PowOp struct {
	c float64
}

// NewPowOp creates a new PowOp with exponent c.
func NewPowOp(c float64) *PowOp {
	return &PowOp{c: c}
}

// Name returns "pow".
func (op *PowOp) Name() string { return "pow" }

// Exponent returns the constant exponent.
func (op *PowOp) Exponent() float64 { return op.c }

// Forward computes a^c.
func (op *PowOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	return single(backend.Pow(xs[0], op.c))
}

// Backward computes c * a^(c-1) * outputGrad.
func (op *PowOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	powered, err := backend.Pow(xs[0], op.c-1)
	if err != nil {
		return nil, err
	}
	scaled, err := backend.MulScalar(powered, op.c)
	if err != nil {
		return nil, err
	}
	return single(backend.Mul(scaled, gys[0]))
}
