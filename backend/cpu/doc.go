// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for the autodiff kernels.
//
// # Overview
//
// This package implements:
//   - Element-wise add, sub, mul and div with NumPy-compatible broadcasting
//   - Neg, exp, log, sin, cos, tanh, constant power and scalar scaling
//   - SumTo, the reduction that undoes broadcasting in backward rules
//   - Float32 and Float64 support
//
// A 0-D operand adopts the data type of the other operand, so Go float64
// constants combine with float32 payloads.
package cpu
