// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package opc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/flate"

	"github.com/aasx-foundation/aasx/lib/contenttype"
	"github.com/aasx-foundation/aasx/lib/opcpath"
)

// Model is the in-memory state of a decoded package archive.
type Model struct {
	// Parts is the part registry.
	Parts *Registry

	// Rels is the relationship graph.
	Rels *Graph

	// OriginKey is the canonical path of the origin part, resolved
	// from the mandatory root origin relationship.
	OriginKey string
}

// Decode parses a zip archive into the package model.
//
// An unreadable archive or malformed embedded XML fails with
// ErrInvalidFormat. A readable archive whose relationship documents
// declare no root origin edge fails with ErrMissingOrigin; the two are
// distinct so callers can special-case a valid zip that is simply not
// a package.
func Decode(data []byte) (*Model, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: opening archive: %v", ErrInvalidFormat, err)
	}
	// Foreign OPC writers deflate their entries; our own are Store.
	reader.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	// Content types first: part registration below needs the tables.
	// Absence of the document is tolerated (empty tables, every part
	// falls through to the generic binary type).
	types := contenttype.Empty()
	for _, entry := range reader.File {
		if entry.Name != contenttype.DocumentPath {
			continue
		}
		raw, err := readEntry(entry)
		if err != nil {
			return nil, err
		}
		types, err = contenttype.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		break
	}

	// Relationship documents next, preserving document order within
	// each bucket and the ids as read.
	rels := NewGraph()
	originKey := ""
	originSeen := false
	for _, entry := range reader.File {
		if isDirectory(entry) || entry.Name == contenttype.DocumentPath {
			continue
		}
		key, err := entryKey(entry.Name)
		if err != nil {
			return nil, err
		}
		if !opcpath.IsRelsPath(key) {
			continue
		}
		sourceKey, ok := opcpath.SourceFromRelsPath(key)
		if !ok {
			continue
		}

		raw, err := readEntry(entry)
		if err != nil {
			return nil, err
		}
		entries, err := decodeRels(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %s: %v", ErrInvalidFormat, entry.Name, err)
		}

		for _, rel := range entries {
			edge := rels.AddWithID(rel.ID, sourceKey, rel.Target, rel.Type)
			if !originSeen && sourceKey == "" && rel.Type == RelTypeOrigin {
				target, err := edge.TargetPath()
				if err != nil {
					return nil, fmt.Errorf("%w: origin target %q: %v", ErrInvalidFormat, rel.Target, err)
				}
				originKey = target.Key()
				originSeen = true
			}
		}
	}
	if !originSeen {
		return nil, ErrMissingOrigin
	}

	// Everything that is neither the content-types document nor a
	// relationship document nor a directory marker is a part.
	parts := NewRegistry()
	for _, entry := range reader.File {
		if isDirectory(entry) || entry.Name == contenttype.DocumentPath {
			continue
		}
		path, err := opcpath.Parse("/" + entry.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: entry name %q: %v", ErrInvalidFormat, entry.Name, err)
		}
		if opcpath.IsRelsPath(path.Key()) {
			continue
		}

		raw, err := readEntry(entry)
		if err != nil {
			return nil, err
		}
		parts.Put(path, types.Resolve(path), raw)
	}

	return &Model{Parts: parts, Rels: rels, OriginKey: originKey}, nil
}

// Encode serializes the model to a zip archive.
//
// Every entry is written with the Store method (uncompressed) and in a
// fixed order: the content-types document, then relationship documents
// sorted by source, then parts sorted by path. The same model always
// produces identical bytes.
func Encode(parts *Registry, rels *Graph) ([]byte, error) {
	var buffer bytes.Buffer
	archive := zip.NewWriter(&buffer)

	infos := make([]contenttype.PartInfo, 0, parts.Len())
	for _, part := range parts.Parts() {
		infos = append(infos, contenttype.PartInfo{
			Path:        part.Path(),
			ContentType: part.ContentType(),
		})
	}
	typesDoc, err := contenttype.Build(infos).Encode()
	if err != nil {
		return nil, err
	}
	if err := writeEntry(archive, contenttype.DocumentPath, typesDoc); err != nil {
		return nil, err
	}

	for _, sourceKey := range rels.Sources() {
		bucket := rels.Bucket(sourceKey)
		if len(bucket) == 0 {
			continue
		}
		relsDoc, err := encodeRels(bucket)
		if err != nil {
			return nil, err
		}
		name := strings.TrimPrefix(opcpath.RelsPathFor(sourceKey), "/")
		if err := writeEntry(archive, name, relsDoc); err != nil {
			return nil, err
		}
	}

	for _, part := range parts.Parts() {
		name := strings.TrimPrefix(part.Path().Display(), "/")
		if err := writeEntry(archive, name, part.content); err != nil {
			return nil, err
		}
	}

	if err := archive.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	return buffer.Bytes(), nil
}

// entryKey canonicalizes a zip entry name to a lookup key.
func entryKey(name string) (string, error) {
	path, err := opcpath.Parse("/" + name)
	if err != nil {
		return "", fmt.Errorf("%w: entry name %q: %v", ErrInvalidFormat, name, err)
	}
	return path.Key(), nil
}

// isDirectory reports whether the entry is a directory marker.
func isDirectory(entry *zip.File) bool {
	return strings.HasSuffix(entry.Name, "/")
}

// readEntry decompresses a single archive entry.
func readEntry(entry *zip.File) ([]byte, error) {
	reader, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: opening entry %s: %v", ErrInvalidFormat, entry.Name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading entry %s: %v", ErrInvalidFormat, entry.Name, err)
	}
	return data, nil
}

// writeEntry adds one uncompressed entry to the archive.
func writeEntry(archive *zip.Writer, name string, data []byte) error {
	writer, err := archive.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Store,
	})
	if err != nil {
		return fmt.Errorf("creating archive entry %s: %w", name, err)
	}
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("writing archive entry %s: %w", name, err)
	}
	return nil
}
