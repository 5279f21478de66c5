package autodiff

import (
	"fmt"

	"github.com/born-ml/trace/internal/tensor"
)

// Value is a traced numeric quantity in the computation graph.
//
// A Value owns its payload, an optional gradient accumulator, and a strong
// reference to the Node that created it (nil for leaves). Identity is
// pointer identity: two Values with equal payloads are distinct graph nodes.
//
// Values are created by a Tracer and are not safe for concurrent use.
type Value struct {
	data       *tensor.RawTensor // nil until materialized
	grad       *tensor.RawTensor // nil until a backward pass reaches this value
	name       string
	creator    *Node // strong: keeps the producing node and its inputs alive
	generation int
	tracer     *Tracer
}

// Data returns the payload, or nil for a placeholder.
func (v *Value) Data() *tensor.RawTensor {
	return v.data
}

// SetData materializes a placeholder Value.
// Returns ErrPayloadAlreadySet if the Value already holds data.
func (v *Value) SetData(data *tensor.RawTensor) error {
	if v.data != nil {
		return ErrPayloadAlreadySet
	}
	if data == nil {
		return fmt.Errorf("%w: nil *RawTensor", ErrUnsupportedPayload)
	}
	v.data = data
	return nil
}

// Grad returns the accumulated gradient, or nil when unset.
func (v *Value) Grad() *tensor.RawTensor {
	return v.grad
}

// SetGrad replaces the gradient. A non-nil gradient set before Backward is
// used as the seed instead of ones.
func (v *Value) SetGrad(grad *tensor.RawTensor) {
	v.grad = grad
}

// ClearGrad resets the gradient to unset. Use it between independent
// backward passes that reuse the same leaves.
func (v *Value) ClearGrad() {
	v.grad = nil
}

// Name returns the cosmetic label.
func (v *Value) Name() string {
	return v.name
}

// SetName sets the cosmetic label.
func (v *Value) SetName(name string) {
	v.name = name
}

// Creator returns the Node that produced this Value, or nil for leaves and
// values computed without recording.
func (v *Value) Creator() *Node {
	return v.creator
}

// SetCreator links this Value to the node that produced it and derives its
// generation from the node's.
func (v *Value) SetCreator(n *Node) {
	v.creator = n
	v.generation = n.generation + 1
}

// Generation returns the topological depth: 0 for leaves.
func (v *Value) Generation() int {
	return v.generation
}

// IsLeaf reports whether the Value has no creator.
func (v *Value) IsLeaf() bool {
	return v.creator == nil
}

// Tracer returns the tracer the Value belongs to.
func (v *Value) Tracer() *Tracer {
	return v.tracer
}

// Shape returns the payload shape, or nil for a placeholder.
func (v *Value) Shape() tensor.Shape {
	if v.data == nil {
		return nil
	}
	return v.data.Shape()
}

// Ndim returns the number of dimensions.
func (v *Value) Ndim() int {
	if v.data == nil {
		return 0
	}
	return v.data.Ndim()
}

// Size returns the number of elements, or 0 for a placeholder.
func (v *Value) Size() int {
	if v.data == nil {
		return 0
	}
	return v.data.NumElements()
}

// DType returns the payload data type. Panics on a placeholder.
func (v *Value) DType() tensor.DataType {
	if v.data == nil {
		panic("dtype of a value without payload")
	}
	return v.data.DType()
}

// Len returns the size of the first dimension, or 0 for scalars and placeholders.
func (v *Value) Len() int {
	if v.data == nil || v.data.Ndim() == 0 {
		return 0
	}
	return v.data.Shape()[0]
}

// Detach returns a new leaf sharing this Value's payload.
// Gradients do not flow from the detached Value back into this graph.
func (v *Value) Detach() *Value {
	return &Value{
		data:   v.data,
		name:   v.name,
		tracer: v.tracer,
	}
}

// String returns a human-readable representation.
func (v *Value) String() string {
	if v.data == nil {
		return "variable(nil)"
	}
	return "variable(" + v.data.String() + ")"
}

// Add returns v + other.
func (v *Value) Add(other any) (*Value, error) {
	if v.tracer == nil {
		return nil, ErrNoTracer
	}
	return v.tracer.Add(v, other)
}

// Sub returns v - other.
func (v *Value) Sub(other any) (*Value, error) {
	if v.tracer == nil {
		return nil, ErrNoTracer
	}
	return v.tracer.Sub(v, other)
}

// RSub returns other - v.
func (v *Value) RSub(other any) (*Value, error) {
	if v.tracer == nil {
		return nil, ErrNoTracer
	}
	return v.tracer.Sub(other, v)
}

// Mul returns v * other.
func (v *Value) Mul(other any) (*Value, error) {
	if v.tracer == nil {
		return nil, ErrNoTracer
	}
	return v.tracer.Mul(v, other)
}

// Div returns v / other.
func (v *Value) Div(other any) (*Value, error) {
	if v.tracer == nil {
		return nil, ErrNoTracer
	}
	return v.tracer.Div(v, other)
}

// RDiv returns other / v.
func (v *Value) RDiv(other any) (*Value, error) {
	if v.tracer == nil {
		return nil, ErrNoTracer
	}
	return v.tracer.Div(other, v)
}

// Neg returns -v.
func (v *Value) Neg() (*Value, error) {
	if v.tracer == nil {
		return nil, ErrNoTracer
	}
	return v.tracer.Neg(v)
}

// Pow returns v^c for a constant exponent c.
func (v *Value) Pow(c float64) (*Value, error) {
	if v.tracer == nil {
		return nil, ErrNoTracer
	}
	return v.tracer.Pow(v, c)
}
