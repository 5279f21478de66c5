package tensor

import (
	"errors"
	"testing"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if raw.NumElements() != 6 || raw.ByteSize() != 24 || raw.Ndim() != 2 {
		t.Errorf("unexpected layout: elements=%d bytes=%d ndim=%d",
			raw.NumElements(), raw.ByteSize(), raw.Ndim())
	}
	for _, v := range raw.AsFloat32() {
		if v != 0 {
			t.Fatal("NewRaw should zero memory")
		}
	}

	if _, err := NewRaw(Shape{0}, Float32); err == nil {
		t.Error("NewRaw should reject a zero dimension")
	}
	if _, err := NewRaw(Shape{1}, DataType(9)); !errors.Is(err, ErrUnsupportedDType) {
		t.Errorf("expected ErrUnsupportedDType, got %v", err)
	}
}

func TestFromSlice(t *testing.T) {
	raw, err := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if raw.DType() != Float64 {
		t.Errorf("dtype = %s, want float64", raw.DType())
	}
	if raw.At(3) != 4 {
		t.Errorf("At(3) = %f, want 4", raw.At(3))
	}

	f32, err := FromSlice([]float32{1.5}, Shape{})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if f32.DType() != Float32 || f32.Item() != 1.5 {
		t.Errorf("got %s %f, want float32 1.5", f32.DType(), f32.Item())
	}

	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestScalarAndFull(t *testing.T) {
	s := Scalar(2.5)
	if s.Ndim() != 0 || s.Item() != 2.5 {
		t.Errorf("Scalar(2.5) = %v", s)
	}

	ones := OnesLike(s)
	if ones.Item() != 1 {
		t.Errorf("OnesLike = %v, want 1", ones)
	}

	zeros := ZerosLike(Shape{3}, Float32)
	if zeros.DType() != Float32 || zeros.NumElements() != 3 {
		t.Errorf("ZerosLike = %s %v", zeros.DType(), zeros.Shape())
	}

	full, err := Full(Shape{2}, Float32, 7)
	if err != nil {
		t.Fatalf("Full failed: %v", err)
	}
	if got := full.AsFloat32(); got[0] != 7 || got[1] != 7 {
		t.Errorf("Full = %v, want [7 7]", got)
	}
}

func TestItemPanicsOnMultipleElements(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Item() should panic for a multi-element tensor")
		}
	}()
	raw, _ := FromSlice([]float64{1, 2}, Shape{2})
	raw.Item()
}

func TestCloneIsDeep(t *testing.T) {
	raw, _ := FromSlice([]float64{1, 2}, Shape{2})
	c := raw.Clone()
	c.AsFloat64()[0] = 9
	if raw.AsFloat64()[0] != 1 {
		t.Error("Clone() shares data with the original")
	}
}

func TestFloat64sCopies(t *testing.T) {
	raw, _ := FromSlice([]float32{1, 2}, Shape{2})
	vals := raw.Float64s()
	vals[0] = 5
	if raw.AsFloat32()[0] != 1 {
		t.Error("Float64s() must return a copy")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		data  []float64
		shape Shape
		want  string
	}{
		{[]float64{3}, Shape{}, "3"},
		{[]float64{1, 2, 3}, Shape{3}, "[1 2 3]"},
		{[]float64{1, 2, 3, 4}, Shape{2, 2}, "[[1 2] [3 4]]"},
	}

	for _, tt := range tests {
		raw, _ := FromSlice(tt.data, tt.shape)
		if got := raw.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAsRaw(t *testing.T) {
	existing := Scalar(1)

	tests := []struct {
		name  string
		in    any
		dtype DataType
		shape Shape
	}{
		{"float64", 2.0, Float64, Shape{}},
		{"float32", float32(2), Float32, Shape{}},
		{"int", 3, Float64, Shape{}},
		{"float64 slice", []float64{1, 2}, Float64, Shape{2}},
		{"float32 slice", []float32{1, 2, 3}, Float32, Shape{3}},
		{"raw", existing, Float64, Shape{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := AsRaw(tt.in)
			if err != nil {
				t.Fatalf("AsRaw failed: %v", err)
			}
			if raw.DType() != tt.dtype || !raw.Shape().Equal(tt.shape) {
				t.Errorf("got %s %v, want %s %v", raw.DType(), raw.Shape(), tt.dtype, tt.shape)
			}
		})
	}

	if raw, _ := AsRaw(existing); raw != existing {
		t.Error("AsRaw should return a *RawTensor unchanged")
	}

	for _, bad := range []any{"x", nil, []int{1}, (*RawTensor)(nil)} {
		if _, err := AsRaw(bad); !errors.Is(err, ErrUnsupportedPayload) {
			t.Errorf("AsRaw(%T) error = %v, want ErrUnsupportedPayload", bad, err)
		}
	}
}

func TestDataType(t *testing.T) {
	if Float32.Size() != 4 || Float64.Size() != 8 {
		t.Error("unexpected element sizes")
	}
	if Float32.String() != "float32" || DataType(7).String() != "unknown" {
		t.Error("unexpected names")
	}
	if DataType(7).Valid() {
		t.Error("DataType(7) should not be valid")
	}
}
