// Package autodiff implements define-by-run reverse-mode automatic
// differentiation.
//
// A Tracer wraps a kernel backend and records every operation it evaluates
// as a Node in a DAG of Values. Calling Backward on any Value walks that DAG
// from the Value towards its leaves, highest generation first, and
// accumulates gradients into every ancestor.
//
// Architecture:
//   - Value: payload, gradient accumulator, strong link to its creator Node
//   - Node: operation kind, strong inputs, weak outputs, generation
//   - Tracer: wires operation calls into the graph under a scoped Config
//   - scheduler: max-heap of pending nodes keyed by generation
//
// Usage:
//
//	tr := autodiff.New(cpu.New())
//	x, _ := tr.Wrap(2.0)
//	y, _ := x.Mul(x) // y = x²
//
//	_ = y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4
//
// A Tracer and the Values it creates are not safe for concurrent use.
package autodiff

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/born-ml/trace/internal/autodiff/ops"
	"github.com/born-ml/trace/internal/tensor"
)

// Tracer records operations into a computation graph.
// It owns the kernel backend and the stack of recording configurations.
type Tracer struct {
	backend tensor.Backend
	configs []Config // configs[len-1] is active
	logger  *slog.Logger
}

// Option configures a Tracer.
type Option func(*Tracer)

// WithLogger sets the logger used for backward-pass debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithConfig sets the base recording configuration.
func WithConfig(cfg Config) Option {
	return func(t *Tracer) {
		t.configs[0] = cfg
	}
}

// New creates a Tracer dispatching kernels to backend.
func New(backend tensor.Backend, opts ...Option) *Tracer {
	t := &Tracer{
		backend: backend,
		configs: []Config{DefaultConfig()},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Backend returns the wrapped kernel backend.
func (t *Tracer) Backend() tensor.Backend {
	return t.backend
}

// Name returns the tracer name.
func (t *Tracer) Name() string {
	return "Autodiff(" + t.backend.Name() + ")"
}

// NewValue creates a leaf Value. data must be a *tensor.RawTensor or nil,
// the "no data yet" placeholder; anything else fails with
// ErrUnsupportedPayload.
func (t *Tracer) NewValue(data any, name string) (*Value, error) {
	v := &Value{name: name, tracer: t}
	switch d := data.(type) {
	case nil:
	case *tensor.RawTensor:
		v.data = d // a typed nil stays a placeholder
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPayload, data)
	}
	return v, nil
}

// Wrap lifts x into a leaf Value. A *Value is returned unchanged; scalars,
// float slices and raw tensors are converted with tensor.AsRaw.
func (t *Tracer) Wrap(x any) (*Value, error) {
	if v, ok := x.(*Value); ok {
		if v == nil {
			return nil, fmt.Errorf("%w: nil *Value", ErrUnsupportedPayload)
		}
		return v, nil
	}
	raw, err := tensor.AsRaw(x)
	if err != nil {
		return nil, err
	}
	return &Value{data: raw, tracer: t}, nil
}

// Call evaluates op on args and, when recording, links the results into the
// graph. Arguments are auto-wrapped with Wrap.
//
// The forward rule sees only unwrapped payloads. Each result is wrapped in
// a fresh Value. With recording disabled the results are detached: no node
// is created and no generation is assigned.
func (t *Tracer) Call(op ops.Operation, args ...any) ([]*Value, error) {
	inputs := make([]*Value, len(args))
	xs := make([]*tensor.RawTensor, len(args))
	for i, arg := range args {
		in, err := t.Wrap(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", op.Name(), i, err)
		}
		if in.data == nil {
			return nil, fmt.Errorf("%s: argument %d: %w", op.Name(), i, ErrNoPayload)
		}
		inputs[i] = in
		xs[i] = in.data
	}

	ys, err := op.Forward(t.backend, xs...)
	if err != nil {
		return nil, &OpError{Op: op.Name(), Phase: "forward", Err: err}
	}
	if len(ys) == 0 {
		return nil, fmt.Errorf("%s: %w", op.Name(), ErrNoOutputs)
	}

	outputs := make([]*Value, len(ys))
	for i, y := range ys {
		if y == nil {
			return nil, &OpError{Op: op.Name(), Phase: "forward", Err: fmt.Errorf("output %d: %w", i, ErrNoPayload)}
		}
		outputs[i] = &Value{data: y, tracer: t}
	}

	if t.IsRecording() {
		newNode(op, inputs, outputs)
	}

	return outputs, nil
}

// Apply is Call for single-output operations.
func (t *Tracer) Apply(op ops.Operation, args ...any) (*Value, error) {
	outputs, err := t.Call(op, args...)
	if err != nil {
		return nil, err
	}
	if len(outputs) != 1 {
		return nil, fmt.Errorf("%s: %w (%d)", op.Name(), ErrMultipleOutputs, len(outputs))
	}
	return outputs[0], nil
}

// Add returns a + b.
func (t *Tracer) Add(a, b any) (*Value, error) {
	return t.Apply(ops.NewAddOp(), a, b)
}

// Sub returns a - b.
func (t *Tracer) Sub(a, b any) (*Value, error) {
	return t.Apply(ops.NewSubOp(), a, b)
}

// Mul returns a * b.
func (t *Tracer) Mul(a, b any) (*Value, error) {
	return t.Apply(ops.NewMulOp(), a, b)
}

// Div returns a / b.
func (t *Tracer) Div(a, b any) (*Value, error) {
	return t.Apply(ops.NewDivOp(), a, b)
}

// Neg returns -a.
func (t *Tracer) Neg(a any) (*Value, error) {
	return t.Apply(ops.NewNegOp(), a)
}

// Pow returns a^c for a constant exponent c.
func (t *Tracer) Pow(a any, c float64) (*Value, error) {
	return t.Apply(ops.NewPowOp(c), a)
}

// Square returns a².
func (t *Tracer) Square(a any) (*Value, error) {
	return t.Apply(ops.NewSquareOp(), a)
}

// Exp returns exp(a).
func (t *Tracer) Exp(a any) (*Value, error) {
	return t.Apply(ops.NewExpOp(), a)
}

// Log returns the natural logarithm of a.
func (t *Tracer) Log(a any) (*Value, error) {
	return t.Apply(ops.NewLogOp(), a)
}

// Sin returns sin(a).
func (t *Tracer) Sin(a any) (*Value, error) {
	return t.Apply(ops.NewSinOp(), a)
}

// Cos returns cos(a).
func (t *Tracer) Cos(a any) (*Value, error) {
	return t.Apply(ops.NewCosOp(), a)
}

// Tanh returns tanh(a).
func (t *Tracer) Tanh(a any) (*Value, error) {
	return t.Apply(ops.NewTanhOp(), a)
}
