package ops

import (
	"math"
	"testing"

	"github.com/born-ml/trace/internal/backend/cpu"
	"github.com/born-ml/trace/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(t *testing.T, vals ...float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromSlice(vals, tensor.Shape{len(vals)})
	require.NoError(t, err)
	return raw
}

func TestUnaryOps(t *testing.T) {
	backend := cpu.New()
	x := vec(t, 0.5, 2.0)
	gy := vec(t, 1.0, 3.0)

	tests := []struct {
		op      Operation
		name    string
		forward func(float64) float64
		deriv   func(float64) float64
	}{
		{NewNegOp(), "neg", func(a float64) float64 { return -a }, func(float64) float64 { return -1 }},
		{NewSquareOp(), "square", func(a float64) float64 { return a * a }, func(a float64) float64 { return 2 * a }},
		{NewExpOp(), "exp", math.Exp, math.Exp},
		{NewLogOp(), "log", math.Log, func(a float64) float64 { return 1 / a }},
		{NewSinOp(), "sin", math.Sin, math.Cos},
		{NewCosOp(), "cos", math.Cos, func(a float64) float64 { return -math.Sin(a) }},
		{NewTanhOp(), "tanh", math.Tanh, func(a float64) float64 { th := math.Tanh(a); return 1 - th*th }},
		{NewPowOp(3), "pow", func(a float64) float64 { return a * a * a }, func(a float64) float64 { return 3 * a * a }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.op.Name())

			ys, err := tt.op.Forward(backend, x)
			require.NoError(t, err)
			require.Len(t, ys, 1)

			gxs, err := tt.op.Backward(backend, []*tensor.RawTensor{x}, []*tensor.RawTensor{gy})
			require.NoError(t, err)
			require.Len(t, gxs, 1)

			for i, a := range x.Float64s() {
				assert.InDelta(t, tt.forward(a), ys[0].At(i), 1e-12)
				assert.InDelta(t, gy.At(i)*tt.deriv(a), gxs[0].At(i), 1e-12)
			}
		})
	}
}

func TestBinaryOps(t *testing.T) {
	backend := cpu.New()
	a := vec(t, 3.0, -1.0)
	b := vec(t, 2.0, 4.0)
	gy := vec(t, 1.0, 0.5)

	tests := []struct {
		op      Operation
		name    string
		forward func(a, b float64) float64
		gradA   func(a, b float64) float64
		gradB   func(a, b float64) float64
	}{
		{
			NewAddOp(), "add",
			func(a, b float64) float64 { return a + b },
			func(_, _ float64) float64 { return 1 },
			func(_, _ float64) float64 { return 1 },
		},
		{
			NewSubOp(), "sub",
			func(a, b float64) float64 { return a - b },
			func(_, _ float64) float64 { return 1 },
			func(_, _ float64) float64 { return -1 },
		},
		{
			NewMulOp(), "mul",
			func(a, b float64) float64 { return a * b },
			func(_, b float64) float64 { return b },
			func(a, _ float64) float64 { return a },
		},
		{
			NewDivOp(), "div",
			func(a, b float64) float64 { return a / b },
			func(_, b float64) float64 { return 1 / b },
			func(a, b float64) float64 { return -a / (b * b) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.op.Name())

			ys, err := tt.op.Forward(backend, a, b)
			require.NoError(t, err)
			require.Len(t, ys, 1)

			gxs, err := tt.op.Backward(backend, []*tensor.RawTensor{a, b}, []*tensor.RawTensor{gy})
			require.NoError(t, err)
			require.Len(t, gxs, 2)

			for i := range 2 {
				av, bv, g := a.At(i), b.At(i), gy.At(i)
				assert.InDelta(t, tt.forward(av, bv), ys[0].At(i), 1e-12)
				assert.InDelta(t, g*tt.gradA(av, bv), gxs[0].At(i), 1e-12)
				assert.InDelta(t, g*tt.gradB(av, bv), gxs[1].At(i), 1e-12)
			}
		})
	}
}

func TestBinaryOps_BroadcastGradient(t *testing.T) {
	backend := cpu.New()
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	b := vec(t, 10, 20, 30)
	gy, err := tensor.Full(tensor.Shape{2, 3}, tensor.Float64, 1)
	require.NoError(t, err)

	gxs, err := NewMulOp().Backward(backend, []*tensor.RawTensor{a, b}, []*tensor.RawTensor{gy})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, gxs[0].Shape())
	assert.Equal(t, []float64{10, 20, 30, 10, 20, 30}, gxs[0].Float64s())
	assert.Equal(t, tensor.Shape{3}, gxs[1].Shape())
	assert.Equal(t, []float64{5, 7, 9}, gxs[1].Float64s())
}

func TestOps_Arity(t *testing.T) {
	backend := cpu.New()
	x := vec(t, 1)

	_, err := NewAddOp().Forward(backend, x)
	require.ErrorIs(t, err, ErrArity)

	_, err = NewSquareOp().Forward(backend, x, x)
	require.ErrorIs(t, err, ErrArity)

	_, err = NewDivOp().Backward(backend, []*tensor.RawTensor{x}, []*tensor.RawTensor{x})
	require.ErrorIs(t, err, ErrArity)
}

func TestOps_InputsUnchanged(t *testing.T) {
	backend := cpu.New()
	a := vec(t, 1, 2)
	b := vec(t, 3, 4)
	gy := vec(t, 1, 1)

	_, err := NewMulOp().Forward(backend, a, b)
	require.NoError(t, err)
	_, err = NewMulOp().Backward(backend, []*tensor.RawTensor{a, b}, []*tensor.RawTensor{gy})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, a.Float64s())
	assert.Equal(t, []float64{3, 4}, b.Float64s())
	assert.Equal(t, []float64{1, 1}, gy.Float64s())
}

func TestPowOp_Exponent(t *testing.T) {
	assert.Equal(t, 2.5, NewPowOp(2.5).Exponent())
}

type partialOp struct {
	BaseOp
}

func TestBaseOp_NotImplemented(t *testing.T) {
	backend := cpu.New()
	var op Operation = partialOp{}
	x := vec(t, 1)

	assert.Equal(t, "operation", op.Name())

	_, err := op.Forward(backend, x)
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = op.Backward(backend, []*tensor.RawTensor{x}, []*tensor.RawTensor{x})
	require.ErrorIs(t, err, ErrNotImplemented)
}
