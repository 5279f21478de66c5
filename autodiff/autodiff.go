// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides define-by-run reverse-mode automatic
// differentiation.
//
// A Tracer wraps a kernel backend and records every operation into a DAG
// of Values. Backward on any Value propagates gradients to all of its
// ancestors.
//
// Example:
//
//	import (
//	    "github.com/born-ml/trace/autodiff"
//	    "github.com/born-ml/trace/backend/cpu"
//	)
//
//	func main() {
//	    tr := autodiff.New(cpu.New())
//
//	    x, _ := tr.Wrap(2.0)
//	    a, _ := tr.Square(x)
//	    y, _ := tr.Exp(a)
//
//	    _ = y.Backward()
//	    fmt.Println(x.Grad()) // 4x·exp(x²)
//	}
//
// New operation kinds embed BaseOp and implement Forward and Backward;
// they are evaluated with Tracer.Call or Tracer.Apply.
package autodiff

import (
	"github.com/born-ml/trace/internal/autodiff"
	"github.com/born-ml/trace/internal/autodiff/ops"
	"github.com/born-ml/trace/internal/serialization"
	"github.com/born-ml/trace/tensor"
)

// Tracer records operations into a computation graph.
type Tracer = autodiff.Tracer

// Value is a node of the computation graph carrying a payload and a
// gradient accumulator.
type Value = autodiff.Value

// Node records one evaluated operation.
type Node = autodiff.Node

// Config holds the recording configuration.
type Config = autodiff.Config

// Option configures a Tracer.
type Option = autodiff.Option

// BackwardOption configures a backward pass.
type BackwardOption = autodiff.BackwardOption

// OpError reports a failure inside an operation's forward or backward rule.
type OpError = autodiff.OpError

// Operation is a differentiable primitive.
type Operation = ops.Operation

// BaseOp is the abstract base for operation kinds.
type BaseOp = ops.BaseOp

// Errors.
var (
	ErrUnsupportedPayload = autodiff.ErrUnsupportedPayload
	ErrNotImplemented     = autodiff.ErrNotImplemented
	ErrNoPayload          = autodiff.ErrNoPayload
	ErrPayloadAlreadySet  = autodiff.ErrPayloadAlreadySet
	ErrGradientCount      = autodiff.ErrGradientCount
	ErrGradientShape      = autodiff.ErrGradientShape
	ErrNoOutputs          = autodiff.ErrNoOutputs
	ErrMultipleOutputs    = autodiff.ErrMultipleOutputs
	ErrNoTracer           = autodiff.ErrNoTracer
)

// New creates a Tracer dispatching kernels to backend.
//
// Example:
//
//	tr := autodiff.New(cpu.New(), autodiff.WithLogger(slog.Default()))
func New(backend tensor.Backend, opts ...Option) *Tracer {
	return autodiff.New(backend, opts...)
}

// WithLogger sets the logger used for backward-pass debug records.
var WithLogger = autodiff.WithLogger

// WithConfig sets the base recording configuration.
var WithConfig = autodiff.WithConfig

// DefaultConfig returns the configuration new tracers start with.
func DefaultConfig() Config {
	return autodiff.DefaultConfig()
}

// RetainGrad keeps intermediate gradients after a backward pass.
func RetainGrad() BackwardOption {
	return autodiff.RetainGrad()
}

// NumericalDiff estimates d(sum f(x))/dx by central differences.
func NumericalDiff(f func(*Value) (*Value, error), x *Value, eps float64) (*tensor.RawTensor, error) {
	return autodiff.NumericalDiff(f, x, eps)
}

// Snapshot captures the name, payload and gradient of each value.
func Snapshot(values ...*Value) []serialization.Entry {
	return autodiff.Snapshot(values...)
}
