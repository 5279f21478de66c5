// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/trace/internal/tensor"

// Backend defines the kernels the autodiff tracer dispatches to.
//
// Implementations:
//   - backend/cpu: Pure Go, float32 and float64
//
// Every kernel returns a freshly allocated result and never writes into
// its operands.
type Backend = tensor.Backend
