package cpu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/trace/internal/tensor"
)

// Neg computes element-wise negation: -x.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return unary("neg", x, func(v float64) float64 { return -v })
}

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return unary("exp", x, math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
// Non-positive inputs yield NaN or -Inf.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return unary("log", x, math.Log)
}

// Sin computes element-wise sine.
func (cpu *CPUBackend) Sin(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return unary("sin", x, math.Sin)
}

// Cos computes element-wise cosine.
func (cpu *CPUBackend) Cos(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return unary("cos", x, math.Cos)
}

// Tanh computes element-wise hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return unary("tanh", x, math.Tanh)
}

// Pow computes element-wise power with a fixed exponent: x^c.
func (cpu *CPUBackend) Pow(x *tensor.RawTensor, c float64) (*tensor.RawTensor, error) {
	if c == 2 {
		return unary("pow", x, func(v float64) float64 { return v * v })
	}
	return unary("pow", x, func(v float64) float64 { return math.Pow(v, c) })
}

// MulScalar multiplies every element by c.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, c float64) (*tensor.RawTensor, error) {
	if x.DType() == tensor.Float64 {
		result := tensor.ZerosLike(x.Shape(), tensor.Float64)
		floats.ScaleTo(result.AsFloat64(), c, x.AsFloat64())
		return result, nil
	}
	return unary("mul scalar", x, func(v float64) float64 { return v * c })
}

// unary applies f element-wise. Float32 data is widened to float64 for the
// computation and narrowed back on store.
func unary(name string, x *tensor.RawTensor, f func(float64) float64) (*tensor.RawTensor, error) {
	result, err := tensor.NewRaw(x.Shape(), x.DType())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(f(float64(v)))
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = f(v)
		}
	default:
		return nil, fmt.Errorf("%s: %w %s", name, tensor.ErrUnsupportedDType, x.DType())
	}

	return result, nil
}
