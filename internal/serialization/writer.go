package serialization

import (
	"fmt"
	"io"
	"os"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/born-ml/trace/internal/tensor"
)

// Write encodes entries as a snapshot into w.
func Write(w io.Writer, entries []Entry) error {
	body := make([]byte, 0, 256)
	for _, e := range entries {
		body = protowire.AppendTag(body, entryField, protowire.BytesType)
		body = protowire.AppendBytes(body, marshalEntry(e))
	}
	sum := ComputeChecksum(body)

	out := make([]byte, 0, len(MagicBytes)+1+len(body)+ChecksumSize)
	out = append(out, MagicBytes...)
	out = append(out, FormatVersion)
	out = append(out, body...)
	out = append(out, sum[:]...)

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// WriteFile writes a snapshot to path, replacing any existing file.
func WriteFile(path string, entries []Entry) (err error) {
	//nolint:gosec // G304: path comes from the caller, which is expected for snapshot saving
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Write(f, entries)
}

func marshalEntry(e Entry) []byte {
	var b []byte
	b = protowire.AppendTag(b, entryNameField, protowire.BytesType)
	b = protowire.AppendString(b, e.Name)
	if e.Data != nil {
		b = protowire.AppendTag(b, entryDataField, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalTensor(e.Data))
	}
	if e.Grad != nil {
		b = protowire.AppendTag(b, entryGradField, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalTensor(e.Grad))
	}
	return b
}

func marshalTensor(raw *tensor.RawTensor) []byte {
	var b []byte
	b = protowire.AppendTag(b, tensorDTypeField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(raw.DType()))

	var shape []byte
	for _, dim := range raw.Shape() {
		shape = protowire.AppendVarint(shape, uint64(dim))
	}
	b = protowire.AppendTag(b, tensorShapeField, protowire.BytesType)
	b = protowire.AppendBytes(b, shape)

	b = protowire.AppendTag(b, tensorRawField, protowire.BytesType)
	b = protowire.AppendBytes(b, raw.Data())
	return b
}
