// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/trace/internal/tensor"
)

// RawTensor is the payload representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType()
//   - Typed data access via AsFloat32(), AsFloat64(), Float64s()
//   - Deep copies via Clone()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32)
//	data := raw.AsFloat32() // zero-copy view
type RawTensor = tensor.RawTensor

// Shape represents the dimensions of a payload. An empty Shape is a scalar.
type Shape = tensor.Shape

// DataType identifies the element type of a payload.
type DataType = tensor.DataType

// Float is the constraint for payload element types.
type Float = tensor.Float

// Supported data types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// Payload errors.
var (
	ErrUnsupportedPayload = tensor.ErrUnsupportedPayload
	ErrUnsupportedDType   = tensor.ErrUnsupportedDType
	ErrShapeMismatch      = tensor.ErrShapeMismatch
	ErrDTypeMismatch      = tensor.ErrDTypeMismatch
)

// NewRaw creates a zeroed payload with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice creates a payload from a Go slice. The data is copied.
func FromSlice[T Float](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Scalar creates a 0-D float64 payload.
func Scalar(v float64) *RawTensor {
	return tensor.Scalar(v)
}

// Full creates a payload with every element set to v.
func Full(shape Shape, dtype DataType, v float64) (*RawTensor, error) {
	return tensor.Full(shape, dtype, v)
}

// AsRaw lifts a float64, float32, int, []float64 or []float32 into a payload.
// A *RawTensor is returned unchanged.
func AsRaw(x any) (*RawTensor, error) {
	return tensor.AsRaw(x)
}

// BroadcastShapes returns the broadcast shape of a and b.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
