package autodiff

import (
	"fmt"

	"github.com/born-ml/trace/internal/tensor"
)

// BackwardOption configures a backward pass.
type BackwardOption func(*backwardConfig)

type backwardConfig struct {
	retainGrad bool
}

// RetainGrad keeps the gradients of intermediate Values after the pass.
// By default a node's output gradients are released as soon as the node's
// backward rule has consumed them; only leaves keep their gradients.
func RetainGrad() BackwardOption {
	return func(c *backwardConfig) {
		c.retainGrad = true
	}
}

// Backward computes the gradient of v with respect to every ancestor and
// accumulates it into their Grad.
//
// Algorithm:
//  1. Seed v's gradient with ones shaped like its payload, unless already set
//  2. Enqueue v's creator (a leaf has none: nothing more to do)
//  3. Repeatedly dequeue the pending node of highest generation
//  4. Gather its output gradients (zeros for outputs no gradient reached)
//  5. Run its backward rule on the forward-time inputs
//  6. Accumulate each input gradient by element-wise sum and enqueue the
//     input's creator
//  7. Unless RetainGrad is given, clear the node's output gradients
//
// Backward accumulates: calling it twice without ClearGrad on the leaves
// adds the contributions twice.
func (v *Value) Backward(opts ...BackwardOption) error {
	var cfg backwardConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if v.data == nil {
		return fmt.Errorf("backward: %w", ErrNoPayload)
	}
	if v.grad == nil {
		v.grad = tensor.OnesLike(v.data)
	}
	if v.creator == nil {
		return nil
	}
	if v.tracer == nil {
		return fmt.Errorf("backward: %w", ErrNoTracer)
	}

	tr := v.tracer
	backend := tr.backend
	tr.logger.Debug("backward pass started",
		"name", v.name, "generation", v.generation, "retain_grad", cfg.retainGrad)

	sched := newScheduler()
	sched.push(v.creator)

	visited := 0
	for !sched.empty() {
		p := sched.pop()
		n := p.node
		visited++

		gys := n.outputGrads(p.outputs)
		gxs, err := n.op.Backward(backend, n.inputPayloads(), gys)
		if err != nil {
			return &OpError{Op: n.op.Name(), Phase: "backward", Err: err}
		}
		if len(gxs) != len(n.inputs) {
			return &OpError{Op: n.op.Name(), Phase: "backward",
				Err: fmt.Errorf("%w: got %d, want %d", ErrGradientCount, len(gxs), len(n.inputs))}
		}

		for i, x := range n.inputs {
			if err := x.accumulate(backend, gxs[i]); err != nil {
				return &OpError{Op: n.op.Name(), Phase: "backward", Err: fmt.Errorf("input %d: %w", i, err)}
			}
			if x.creator != nil {
				sched.push(x.creator)
			}
		}

		if !cfg.retainGrad {
			for _, out := range p.outputs {
				if out != nil {
					out.grad = nil
				}
			}
		}
	}

	tr.logger.Debug("backward pass finished", "name", v.name, "nodes", visited)
	return nil
}

// accumulate adds gx into the gradient slot. The first contribution is
// stored as is; later ones are summed into a new tensor, so a gradient
// shared with another Value is never modified.
func (v *Value) accumulate(backend tensor.Backend, gx *tensor.RawTensor) error {
	if gx == nil {
		return nil
	}
	if !gx.Shape().Equal(v.data.Shape()) {
		return fmt.Errorf("%w: %v vs %v", ErrGradientShape, gx.Shape(), v.data.Shape())
	}
	if v.grad == nil {
		v.grad = gx
		return nil
	}
	sum, err := backend.Add(v.grad, gx)
	if err != nil {
		return err
	}
	v.grad = sum
	return nil
}
