package cpu

import (
	"math"
	"testing"

	"github.com/born-ml/trace/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a float64 tensor or fail the test.
func mustRaw(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return raw
}

// TestCPUBackend_New tests backend creation.
func TestCPUBackend_New(t *testing.T) {
	backend := New()
	require.NotNil(t, backend)
	assert.Equal(t, "CPU", backend.Name())
}

// TestCPUBackend_Binary tests element-wise arithmetic on same-shaped operands.
func TestCPUBackend_Binary(t *testing.T) {
	backend := New()
	a := mustRaw(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := mustRaw(t, []float64{4, 5, 6}, tensor.Shape{3})

	tests := []struct {
		name string
		fn   func(a, b *tensor.RawTensor) (*tensor.RawTensor, error)
		want []float64
	}{
		{"add", backend.Add, []float64{5, 7, 9}},
		{"sub", backend.Sub, []float64{-3, -3, -3}},
		{"mul", backend.Mul, []float64{4, 10, 18}},
		{"div", backend.Div, []float64{0.25, 0.4, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(a, b)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got.AsFloat64(), 1e-12)
			// Inputs must be untouched.
			assert.Equal(t, []float64{1, 2, 3}, a.AsFloat64())
		})
	}
}

// TestCPUBackend_Broadcast tests broadcasting a row and a scalar.
func TestCPUBackend_Broadcast(t *testing.T) {
	backend := New()
	m := mustRaw(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	row := mustRaw(t, []float64{10, 20, 30}, tensor.Shape{3})

	sum, err := backend.Add(m, row)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, sum.Shape())
	assert.Equal(t, []float64{11, 22, 33, 14, 25, 36}, sum.AsFloat64())

	scaled, err := backend.Mul(tensor.Scalar(2), m)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6, 8, 10, 12}, scaled.AsFloat64())
}

// TestCPUBackend_ShapeMismatch tests incompatible shapes are reported as errors.
func TestCPUBackend_ShapeMismatch(t *testing.T) {
	backend := New()
	a := mustRaw(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := mustRaw(t, []float64{1, 2}, tensor.Shape{2})

	_, err := backend.Add(a, b)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

// TestCPUBackend_DTypePromotion tests a 0-D float64 operand adopts float32.
func TestCPUBackend_DTypePromotion(t *testing.T) {
	backend := New()
	a, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	got, err := backend.Mul(a, tensor.Scalar(3))
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, got.DType())
	assert.Equal(t, []float32{3, 6}, got.AsFloat32())

	b := mustRaw(t, []float64{1, 2}, tensor.Shape{2})
	_, err = backend.Add(a, b)
	require.ErrorIs(t, err, tensor.ErrDTypeMismatch)
}

// TestCPUBackend_Unary tests neg, exp, pow and scalar multiplication.
func TestCPUBackend_Unary(t *testing.T) {
	backend := New()
	x := mustRaw(t, []float64{0, 1, 2}, tensor.Shape{3})

	neg, err := backend.Neg(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, -2}, neg.AsFloat64())

	exp, err := backend.Exp(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, math.E, math.E * math.E}, exp.AsFloat64(), 1e-12)

	cube, err := backend.Pow(x, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 8}, cube.AsFloat64())

	half, err := backend.MulScalar(x, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, half.AsFloat64())
}

// TestCPUBackend_SumTo tests reduction back to broadcast operand shapes.
func TestCPUBackend_SumTo(t *testing.T) {
	backend := New()
	x := mustRaw(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	tests := []struct {
		name  string
		shape tensor.Shape
		want  []float64
	}{
		{"scalar", tensor.Shape{}, []float64{21}},
		{"row", tensor.Shape{3}, []float64{5, 7, 9}},
		{"column", tensor.Shape{2, 1}, []float64{6, 15}},
		{"keep row", tensor.Shape{1, 3}, []float64{5, 7, 9}},
		{"identity", tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := backend.SumTo(x, tt.shape)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, got.Shape())
			assert.Equal(t, tt.want, got.AsFloat64())
		})
	}

	_, err := backend.SumTo(x, tensor.Shape{4})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}
