// Package serialization persists named payloads and gradients as snapshots.
//
// A snapshot lets leaf values (and, optionally, their accumulated gradients)
// survive across processes, e.g. to resume gradient accumulation or to
// compare gradients between runs.
//
//	Format Structure:
//	  [4 bytes: Magic "BTRC"]
//	  [1 byte: Version]
//	  [Body: protobuf wire format, repeated Entry messages]
//	  [32 bytes: SHA-256 of Body]
//
//	Entry message:
//	  1: name (string)
//	  2: data (Tensor message, absent for placeholders)
//	  3: grad (Tensor message, absent when unset)
//
//	Tensor message:
//	  1: dtype (varint: 0 = float32, 1 = float64)
//	  2: shape (packed varint, empty for scalars)
//	  3: raw  (bytes, row-major little-endian elements)
//
// Example usage:
//
//	var buf bytes.Buffer
//	err := serialization.Write(&buf, []serialization.Entry{{Name: "x", Data: x}})
//	entries, err := serialization.Read(&buf)
package serialization
