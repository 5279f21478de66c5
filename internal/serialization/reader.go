package serialization

import (
	"fmt"
	"io"
	"os"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/born-ml/trace/internal/tensor"
)

// Read decodes a snapshot from r, verifying magic, version and checksum.
func Read(r io.Reader) ([]Entry, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(buf)
}

// ReadFile reads a snapshot from path.
func ReadFile(path string) ([]Entry, error) {
	//nolint:gosec // G304: path comes from the caller, which is expected for snapshot loading
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(buf)
}

// Decode parses an in-memory snapshot.
func Decode(buf []byte) ([]Entry, error) {
	headerSize := len(MagicBytes) + 1
	if len(buf) < headerSize+ChecksumSize {
		return nil, ErrTruncated
	}
	if string(buf[:len(MagicBytes)]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	if version := buf[len(MagicBytes)]; version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	body := buf[headerSize : len(buf)-ChecksumSize]
	var stored [ChecksumSize]byte
	copy(stored[:], buf[len(buf)-ChecksumSize:])
	if err := ValidateChecksum(ComputeChecksum(body), stored); err != nil {
		return nil, err
	}

	var entries []Entry
	err := forEachField(body, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != entryField || typ != protowire.BytesType {
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
		msg, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		e, err := unmarshalEntry(msg)
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", len(entries), err)
		}
		entries = append(entries, e)
		return n, nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// forEachField walks the top-level fields of a protobuf message. visit
// consumes the field value and returns the number of bytes used, or a
// negative protowire error code.
func forEachField(b []byte, visit func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]
		m, err := visit(num, typ, b)
		if err != nil {
			return err
		}
		if m < 0 {
			return fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(m))
		}
		b = b[m:]
	}
	return nil
}

func unmarshalEntry(b []byte) (Entry, error) {
	var e Entry
	err := forEachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n, nil
		}
		var err error
		switch num {
		case entryNameField:
			e.Name = string(v)
		case entryDataField:
			e.Data, err = unmarshalTensor(v)
		case entryGradField:
			e.Grad, err = unmarshalTensor(v)
		}
		return n, err
	})
	return e, err
}

func unmarshalTensor(b []byte) (*tensor.RawTensor, error) {
	var (
		dtype tensor.DataType
		shape = tensor.Shape{}
		raw   []byte
	)
	err := forEachField(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == tensorDTypeField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			dtype = tensor.DataType(v)
			return n, nil
		case num == tensorShapeField && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			for len(packed) > 0 {
				dim, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return m, nil
				}
				if len(shape) == MaxDims {
					return 0, ErrTooManyDims
				}
				shape = append(shape, int(dim))
				packed = packed[m:]
			}
			return n, nil
		case num == tensorRawField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			raw = v
			return n, nil
		default:
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
	})
	if err != nil {
		return nil, err
	}

	if !dtype.Valid() {
		return nil, fmt.Errorf("%w: %w %d", ErrMalformed, tensor.ErrUnsupportedDType, int(dtype))
	}
	// Check the byte count before allocating so a corrupt shape cannot
	// request an arbitrarily large buffer.
	elems := 1
	for _, dim := range shape {
		if dim <= 0 || elems > len(raw)/dim {
			return nil, fmt.Errorf("%w: tensor shape %v does not match %d data bytes", ErrMalformed, shape, len(raw))
		}
		elems *= dim
	}
	if elems*dtype.Size() != len(raw) {
		return nil, fmt.Errorf("%w: tensor %v %s needs %d bytes, got %d",
			ErrMalformed, shape, dtype, elems*dtype.Size(), len(raw))
	}

	t, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	copy(t.Data(), raw)
	return t, nil
}
