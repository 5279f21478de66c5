// Package cpu implements the pure-Go CPU kernels used by the autodiff engine.
package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/trace/internal/tensor"
)

// CPUBackend implements tensor.Backend on the CPU.
// All kernels allocate their result; inputs are never modified.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return binary("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y },
		floats.AddTo)
}

// Sub performs element-wise subtraction with NumPy-style broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return binary("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y },
		floats.SubTo)
}

// Mul performs element-wise multiplication with NumPy-style broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return binary("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y },
		floats.MulTo)
}

// Div performs element-wise division with NumPy-style broadcasting.
// Division by zero follows IEEE 754 (±Inf or NaN).
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return binary("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y },
		floats.DivTo)
}

// binary dispatches an element-wise binary kernel by dtype. dense64 handles
// same-shaped float64 operands in one call.
func binary(
	name string,
	a, b *tensor.RawTensor,
	f32 func(x, y float32) float32,
	f64 func(x, y float64) float64,
	dense64 func(dst, s, t []float64) []float64,
) (*tensor.RawTensor, error) {
	a, b, err := unifyDTypes(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	result, err := tensor.NewRaw(outShape, a.DType())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create result tensor: %w", name, err)
	}

	switch a.DType() {
	case tensor.Float32:
		if needsBroadcast {
			applyBroadcast(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, f32)
		} else {
			applyVectorized(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), f32)
		}
	default:
		if needsBroadcast {
			applyBroadcast(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, f64)
		} else {
			dense64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		}
	}

	return result, nil
}

// unifyDTypes reconciles operand data types. A 0-D operand adopts the dtype
// of the other operand, the way NumPy treats Python scalars; any other
// mismatch is an error.
func unifyDTypes(a, b *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	if a.DType() == b.DType() {
		return a, b, nil
	}
	switch {
	case b.Ndim() == 0:
		return a, castTo(b, a.DType()), nil
	case a.Ndim() == 0:
		return castTo(a, b.DType()), b, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s vs %s", tensor.ErrDTypeMismatch, a.DType(), b.DType())
	}
}

// castTo converts x to the given dtype, allocating a new tensor.
func castTo(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}
	out := tensor.ZerosLike(x.Shape(), dtype)
	vals := x.Float64s()
	switch dtype {
	case tensor.Float32:
		dst := out.AsFloat32()
		for i, v := range vals {
			dst[i] = float32(v)
		}
	default:
		copy(out.AsFloat64(), vals)
	}
	return out
}

// applyVectorized applies f element-wise over same-shaped operands.
func applyVectorized[T tensor.Float](dst, a, b []T, f func(x, y T) T) {
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}

// applyBroadcast applies f element-wise with broadcasting.
func applyBroadcast[T tensor.Float](dst, a, b []T, aShape, bShape, outShape tensor.Shape, f func(x, y T) T) {
	ai := newBroadcastIndex(aShape, outShape)
	bi := newBroadcastIndex(bShape, outShape)
	for i := range dst {
		dst[i] = f(a[ai.at(i)], b[bi.at(i)])
	}
}
