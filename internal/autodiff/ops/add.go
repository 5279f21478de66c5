package ops

import "github.com/born-ml/trace/internal/tensor"

// AddOp represents an element-wise addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
//
// If broadcasting was used in the forward pass, gradients are summed back
// to the operand shapes.
type AddOp struct{}

// NewAddOp creates a new AddOp.
func NewAddOp() *AddOp {
	return &AddOp{}
}

// Name returns "add".
func (op *AddOp) Name() string { return "add" }

// Forward computes a + b.
func (op *AddOp) Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 2); err != nil {
		return nil, err
	}
	return single(backend.Add(xs[0], xs[1]))
}

// Backward passes the output gradient through to both inputs.
func (op *AddOp) Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if err := checkArity(op.Name(), xs, 2); err != nil {
		return nil, err
	}
	gy := gys[0]
	return pair(backend, xs, gy, gy)
}
