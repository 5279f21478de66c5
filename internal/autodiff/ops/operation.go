// Package ops defines the Operation interface and the reference operation
// kinds for automatic differentiation.
//
// Each operation implements:
//   - Forward: a pure numeric transform over unwrapped payloads
//   - Backward: the vector-Jacobian product, mapping output gradients to
//     one gradient per input, in input order
//
// Operations carry no graph bookkeeping; the tracer in the parent package
// records them. New kinds are added by implementing Operation, nothing else
// needs to change.
//
// Supported operations:
//   - AddOp: a + b (grads: gy, gy)
//   - SubOp: a - b (grads: gy, -gy)
//   - NegOp: -a (grad: -gy)
//   - MulOp: a * b (grads: gy*b, gy*a)
//   - DivOp: a / b (grads: gy/b, gy*(-a/b²))
//   - PowOp: a^c (grad: c*a^(c-1)*gy)
//   - SquareOp: a² (grad: 2a*gy)
//   - ExpOp: exp(a) (grad: exp(a)*gy)
//   - LogOp: log(a) (grad: gy/a)
//   - SinOp, CosOp, TanhOp: trigonometric and hyperbolic functions
package ops

import (
	"errors"
	"fmt"

	"github.com/born-ml/trace/internal/tensor"
)

// ErrNotImplemented is returned when an operation kind does not override
// Forward or Backward. It signals a programming error in the kind itself.
var ErrNotImplemented = errors.New("operation method not implemented")

// Operation represents a differentiable primitive in the computation graph.
type Operation interface {
	// Name returns a short identifier used in errors and logs.
	Name() string

	// Forward computes the outputs from the input payloads.
	Forward(backend tensor.Backend, xs ...*tensor.RawTensor) ([]*tensor.RawTensor, error)

	// Backward computes gradients for inputs given the output gradients.
	// xs are the forward-time input payloads; gys holds one gradient per
	// output. Returns one gradient per input, in input order.
	//
	// Example for AddOp:
	//   xs: [a, b]
	//   gys: [dL/d(a+b)]
	//   returns: [dL/d(a+b), dL/d(a+b)]
	Backward(backend tensor.Backend, xs, gys []*tensor.RawTensor) ([]*tensor.RawTensor, error)
}

// BaseOp is the abstract base for operation kinds. Embed it and override
// Forward and Backward; a method left un-overridden returns ErrNotImplemented.
type BaseOp struct{}

// Name returns a generic identifier. Kinds should override it.
func (BaseOp) Name() string {
	return "operation"
}

// Forward returns ErrNotImplemented.
func (BaseOp) Forward(_ tensor.Backend, _ ...*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	return nil, fmt.Errorf("forward: %w", ErrNotImplemented)
}

// Backward returns ErrNotImplemented.
func (BaseOp) Backward(_ tensor.Backend, _, _ []*tensor.RawTensor) ([]*tensor.RawTensor, error) {
	return nil, fmt.Errorf("backward: %w", ErrNotImplemented)
}
