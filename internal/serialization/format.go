package serialization

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/born-ml/trace/internal/tensor"
)

// Format constants.
const (
	MagicBytes    = "BTRC"
	FormatVersion = 1
	ChecksumSize  = 32 // SHA-256
	MaxDims       = 32
)

// Entry message field numbers.
const (
	entryField     protowire.Number = 1 // top-level repeated Entry
	entryNameField protowire.Number = 1
	entryDataField protowire.Number = 2
	entryGradField protowire.Number = 3
)

// Tensor message field numbers.
const (
	tensorDTypeField protowire.Number = 1
	tensorShapeField protowire.Number = 2
	tensorRawField   protowire.Number = 3
)

// Entry is one named value in a snapshot.
type Entry struct {
	Name string
	Data *tensor.RawTensor // nil for a placeholder
	Grad *tensor.RawTensor // nil when unset
}
