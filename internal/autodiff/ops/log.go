package ops

import "github.com/born-ml/trace/internal/tensor"

// LogOp represents element-wise natural logarithm.
//
// Forward:
//
//	output = log(input)
//
// Backward:
//
//	∂L/∂input = ∂L/∂output / input
//
// Non-positive inputs produce NaN or -Inf, following IEEE 754.
type LogOp struct{}

// NewLogOp creates a new LogOp.
func NewLogOp() *LogOp {
	return &LogOp{}
}

// Name returns "log".
func (op *LogOp) Name() string { return "log" }

// Forward computes log(x).
func (op *LogOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	return single(backend.Log(xs[0]))
}

// Backward computes grad_output / input.
func (op *LogOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 1); err != nil {
		return nil, err
	}
	return single(backend.Div(gys[0], xs[0]))
}
