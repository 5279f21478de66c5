package autodiff

import (
	"errors"
	"fmt"

	"github.com/born-ml/trace/internal/autodiff/ops"
	"github.com/born-ml/trace/internal/tensor"
)

// Common errors.
var (
	// ErrUnsupportedPayload is returned when a Value is constructed from data
	// that is neither a payload nor the "no data yet" nil sentinel.
	ErrUnsupportedPayload = tensor.ErrUnsupportedPayload

	// ErrNotImplemented is returned when an operation kind leaves Forward or
	// Backward un-overridden.
	ErrNotImplemented = ops.ErrNotImplemented

	ErrNoPayload         = errors.New("value has no payload")
	ErrPayloadAlreadySet = errors.New("value payload already set")
	ErrGradientCount     = errors.New("backward returned wrong number of gradients")
	ErrGradientShape     = errors.New("gradient shape does not match input")
	ErrNoOutputs         = errors.New("operation produced no outputs")
	ErrMultipleOutputs   = errors.New("operation produced more than one output")
	ErrNoTracer          = errors.New("value is not bound to a tracer")
)

// OpError reports a failure inside an operation's forward or backward rule.
type OpError struct {
	Op    string // Operation name
	Phase string // "forward" or "backward"
	Err   error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Phase, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}
