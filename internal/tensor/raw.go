package tensor

import (
	"fmt"
	"strings"
	"unsafe"
)

// RawTensor is the low-level payload representation: a flat row-major byte
// buffer with shape and runtime type information.
//
// Once a RawTensor is attached to a traced value it is treated as immutable.
// Kernels always allocate their results and never write into their inputs,
// so gradients and payloads may be shared between values freely.
type RawTensor struct {
	data   []byte   // Row-major element storage
	shape  Shape    // Tensor dimensions
	stride []int    // Memory strides (row-major)
	dtype  DataType // Runtime type information
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDType, int(dtype))
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// FromSlice creates a RawTensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Float](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, dataTypeOf[T]())
	if err != nil {
		return nil, err
	}

	switch raw.dtype {
	case Float32:
		dst := raw.AsFloat32()
		for i, v := range data {
			dst[i] = float32(v)
		}
	default:
		dst := raw.AsFloat64()
		for i, v := range data {
			dst[i] = float64(v)
		}
	}
	return raw, nil
}

// Scalar creates a 0-D float64 tensor holding v.
func Scalar(v float64) *RawTensor {
	raw, _ := NewRaw(Shape{}, Float64) //nolint:errcheck // scalar shape is always valid
	raw.AsFloat64()[0] = v
	return raw
}

// Full creates a tensor of the given shape and type with every element set to v.
func Full(shape Shape, dtype DataType, v float64) (*RawTensor, error) {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	switch dtype {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = float32(v)
		}
	default:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = v
		}
	}
	return raw, nil
}

// OnesLike returns a tensor of ones with the same shape and type as r.
func OnesLike(r *RawTensor) *RawTensor {
	ones, err := Full(r.shape, r.dtype, 1)
	if err != nil {
		panic(fmt.Sprintf("ones like: %v", err)) // r was validated on construction
	}
	return ones
}

// ZerosLike returns a zeroed tensor with the given shape and type.
func ZerosLike(shape Shape, dtype DataType) *RawTensor {
	zeros, err := NewRaw(shape, dtype)
	if err != nil {
		panic(fmt.Sprintf("zeros like: %v", err))
	}
	return zeros
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Ndim returns the number of dimensions.
func (r *RawTensor) Ndim() int {
	return len(r.shape)
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return len(r.data)
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Float64s returns a float64 copy of the elements regardless of dtype.
func (r *RawTensor) Float64s() []float64 {
	if r.dtype == Float64 {
		return append([]float64(nil), r.AsFloat64()...)
	}
	src := r.AsFloat32()
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}

// At returns element i of the flat buffer as float64.
func (r *RawTensor) At(i int) float64 {
	if r.dtype == Float32 {
		return float64(r.AsFloat32()[i])
	}
	return r.AsFloat64()[i]
}

// Item returns the value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (r *RawTensor) Item() float64 {
	if r.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", r.shape))
	}
	return r.At(0)
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		data:   append([]byte(nil), r.data...),
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
}

// String renders the elements in NumPy-like nested brackets.
func (r *RawTensor) String() string {
	var sb strings.Builder
	vals := r.Float64s()
	var render func(dim, offset int)
	render = func(dim, offset int) {
		if dim == len(r.shape) {
			fmt.Fprintf(&sb, "%g", vals[offset])
			return
		}
		sb.WriteByte('[')
		for i := 0; i < r.shape[dim]; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			render(dim+1, offset+i*r.stride[dim])
		}
		sb.WriteByte(']')
	}
	render(0, 0)
	return sb.String()
}

// AsRaw lifts a Go numeric value into a payload.
//
// Accepted inputs: *RawTensor (returned as is), float64, float32, int
// (0-D tensors), []float64 and []float32 (1-D tensors). Everything else
// yields an error wrapping ErrUnsupportedPayload.
func AsRaw(x any) (*RawTensor, error) {
	switch v := x.(type) {
	case *RawTensor:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *RawTensor", ErrUnsupportedPayload)
		}
		return v, nil
	case float64:
		return Scalar(v), nil
	case float32:
		return FromSlice([]float32{v}, Shape{})
	case int:
		return Scalar(float64(v)), nil
	case []float64:
		return FromSlice(v, Shape{len(v)})
	case []float32:
		return FromSlice(v, Shape{len(v)})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPayload, x)
	}
}
