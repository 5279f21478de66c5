package autodiff

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/trace/internal/tensor"
)

// NumericalDiff estimates d(sum f(x))/dx by central differences:
//
//	(f(x+eps) - f(x-eps)) / 2eps
//
// perturbing one element of x at a time. f is evaluated with recording
// disabled. The result is a float64 tensor shaped like x.
//
// It serves as a finite-difference oracle for checking backward rules.
func NumericalDiff(f func(*Value) (*Value, error), x *Value, eps float64) (*tensor.RawTensor, error) {
	if x.data == nil {
		return nil, fmt.Errorf("numerical diff: %w", ErrNoPayload)
	}
	if x.tracer == nil {
		return nil, fmt.Errorf("numerical diff: %w", ErrNoTracer)
	}
	tr := x.tracer

	grad := make([]float64, x.data.NumElements())
	err := tr.WithoutRecording(func() error {
		for i := range grad {
			lo, err := evalPerturbed(f, x, i, -eps)
			if err != nil {
				return err
			}
			hi, err := evalPerturbed(f, x, i, eps)
			if err != nil {
				return err
			}
			grad[i] = (hi - lo) / (2 * eps)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("numerical diff: %w", err)
	}

	return tensor.FromSlice(grad, x.data.Shape())
}

// evalPerturbed evaluates sum(f(x')) where x' is x with element i shifted by delta.
func evalPerturbed(f func(*Value) (*Value, error), x *Value, i int, delta float64) (float64, error) {
	shifted := x.data.Clone()
	switch shifted.DType() {
	case tensor.Float32:
		shifted.AsFloat32()[i] += float32(delta)
	default:
		shifted.AsFloat64()[i] += delta
	}

	y, err := f(&Value{data: shifted, name: x.name, tracer: x.tracer})
	if err != nil {
		return 0, err
	}
	if y.data == nil {
		return 0, ErrNoPayload
	}

	return floats.Sum(y.data.Float64s()), nil
}
