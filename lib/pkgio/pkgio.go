// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

// Package pkgio defines the byte source/sink boundary of the package
// model and its concrete adapters: in-memory buffers, filesystem
// paths, and arbitrary readers. The model itself never touches the
// filesystem; everything enters and leaves through these two
// single-method contracts.
package pkgio

import (
	"fmt"
	"io"
	"os"
)

// Source supplies the complete byte content of a package archive.
type Source interface {
	// ReadAll returns the full archive bytes. The returned slice is
	// owned by the caller.
	ReadAll() ([]byte, error)
}

// Sink accepts the complete byte content of a package archive.
type Sink interface {
	// WriteAll persists the full archive bytes, replacing any
	// previous content.
	WriteAll(data []byte) error
}

// BytesSource serves a package from an in-memory byte slice.
type BytesSource []byte

// ReadAll returns a copy of the buffered bytes.
func (s BytesSource) ReadAll() ([]byte, error) {
	data := make([]byte, len(s))
	copy(data, s)
	return data, nil
}

// BytesSink collects written archives in memory. Each WriteAll
// replaces the previous content; Bytes returns the latest.
type BytesSink struct {
	data []byte
}

// WriteAll stores a copy of data.
func (s *BytesSink) WriteAll(data []byte) error {
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

// Bytes returns the most recently written archive, or nil if nothing
// has been written.
func (s *BytesSink) Bytes() []byte { return s.data }

// FileSource reads a package archive from a filesystem path.
type FileSource string

// ReadAll reads the whole file.
func (s FileSource) ReadAll() ([]byte, error) {
	data, err := os.ReadFile(string(s))
	if err != nil {
		return nil, fmt.Errorf("reading package file: %w", err)
	}
	return data, nil
}

// FileSink writes a package archive to a filesystem path.
type FileSink string

// WriteAll replaces the file's content.
func (s FileSink) WriteAll(data []byte) error {
	if err := os.WriteFile(string(s), data, 0o644); err != nil {
		return fmt.Errorf("writing package file: %w", err)
	}
	return nil
}

// ReaderSource drains an arbitrary reader. The stream is consumed on
// the first ReadAll; a second call returns the already-drained bytes.
type ReaderSource struct {
	reader io.Reader
	data   []byte
	done   bool
}

// NewReaderSource wraps r as a Source.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{reader: r}
}

// ReadAll drains the underlying reader fully.
func (s *ReaderSource) ReadAll() ([]byte, error) {
	if s.done {
		data := make([]byte, len(s.data))
		copy(data, s.data)
		return data, nil
	}
	data, err := io.ReadAll(s.reader)
	if err != nil {
		return nil, fmt.Errorf("draining package stream: %w", err)
	}
	s.data = data
	s.done = true
	return s.ReadAll()
}
