package tensor

import "errors"

// Common errors.
var (
	ErrUnsupportedPayload = errors.New("unsupported payload type")
	ErrUnsupportedDType   = errors.New("unsupported data type")
	ErrShapeMismatch      = errors.New("shape mismatch")
	ErrDTypeMismatch      = errors.New("data type mismatch")
)
