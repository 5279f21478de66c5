// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the payload types traced by the autodiff engine.
//
// # Overview
//
// A payload is a dense, row-major numeric buffer:
//   - RawTensor: shape, data type and raw bytes
//   - Shape: dimensions, empty for scalars
//   - DataType: Float32 or Float64
//   - Backend: the kernel interface the tracer dispatches to
//
// Payloads are never modified after construction. Every kernel allocates
// its result, so a payload can be shared between Values and gradients.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/trace/tensor"
//	    "github.com/born-ml/trace/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
//	    y, _ := backend.Mul(x, tensor.Scalar(2))
//	    fmt.Println(y) // [2 4 6]
//	}
//
// # Broadcasting
//
// Binary kernels follow NumPy broadcasting rules. Backend.SumTo is the
// adjoint: it sums a broadcast result back to an operand's shape.
package tensor
