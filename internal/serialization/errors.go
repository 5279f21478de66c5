package serialization

import "errors"

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: snapshot may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrMalformed          = errors.New("malformed snapshot")
	ErrTruncated          = errors.New("snapshot truncated")
	ErrTooManyDims        = errors.New("tensor has too many dimensions")
)
