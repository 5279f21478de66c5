// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization saves and loads named payloads and gradients.
//
// Example:
//
//	entries := autodiff.Snapshot(w, b)
//	if err := serialization.WriteFile("params.btrc", entries); err != nil {
//	    return err
//	}
//
//	entries, err := serialization.ReadFile("params.btrc")
//	values, err := tr.Restore(entries)
package serialization

import (
	"io"

	"github.com/born-ml/trace/internal/serialization"
)

// Entry is one named payload with its optional gradient.
type Entry = serialization.Entry

// Errors.
var (
	ErrChecksumMismatch   = serialization.ErrChecksumMismatch
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrMalformed          = serialization.ErrMalformed
	ErrTruncated          = serialization.ErrTruncated
)

// Write encodes entries into w.
func Write(w io.Writer, entries []Entry) error {
	return serialization.Write(w, entries)
}

// WriteFile writes entries to path.
func WriteFile(path string, entries []Entry) error {
	return serialization.WriteFile(path, entries)
}

// Read decodes entries from r, verifying the checksum.
func Read(r io.Reader) ([]Entry, error) {
	return serialization.Read(r)
}

// ReadFile reads entries from path.
func ReadFile(path string) ([]Entry, error) {
	return serialization.ReadFile(path)
}
