package tensor

// Backend defines the numeric kernels the autodiff engine dispatches to.
// Backends handle the actual computation; they carry no graph bookkeeping
// and never modify their inputs.
//
// Binary kernels follow NumPy-style broadcasting and require both operands
// to share a data type.
//
// Implementations:
//   - CPU: Pure Go (internal/backend/cpu)
type Backend interface {
	// Name returns a human-readable backend name.
	Name() string

	// Element-wise binary operations
	Add(a, b *RawTensor) (*RawTensor, error)
	Sub(a, b *RawTensor) (*RawTensor, error)
	Mul(a, b *RawTensor) (*RawTensor, error)
	Div(a, b *RawTensor) (*RawTensor, error)

	// Element-wise unary operations
	Neg(x *RawTensor) (*RawTensor, error)
	Exp(x *RawTensor) (*RawTensor, error)
	Log(x *RawTensor) (*RawTensor, error)
	Sin(x *RawTensor) (*RawTensor, error)
	Cos(x *RawTensor) (*RawTensor, error)
	Tanh(x *RawTensor) (*RawTensor, error)
	Pow(x *RawTensor, c float64) (*RawTensor, error)       // x^c
	MulScalar(x *RawTensor, c float64) (*RawTensor, error) // c*x

	// SumTo reduces x by summation to the given (broadcast-compatible) shape.
	// Used to route gradients back to operands that were broadcast.
	SumTo(x *RawTensor, shape Shape) (*RawTensor, error)
}
