// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package aasx

import (
	"github.com/aasx-foundation/aasx/lib/contract"
	"github.com/aasx-foundation/aasx/lib/opc"
	"github.com/aasx-foundation/aasx/lib/opcpath"
	"github.com/aasx-foundation/aasx/lib/pkgio"
)

// Options configures package construction.
type Options struct {
	// Sink, when set, receives the archive bytes on every Flush.
	Sink pkgio.Sink

	// Contracts overrides the contract-check resolution when non-nil.
	// When nil, checks follow the AASX_CONTRACTS toggle and the
	// enabled-unless-production default (see lib/contract).
	Contracts *bool
}

// Create returns a fresh read-write package. The origin part is
// auto-created at OriginPartPath together with its root origin
// relationship, so a fresh package is immediately valid.
func Create(opts Options) *Package {
	p := &Package{
		parts:  opc.NewRegistry(),
		rels:   opc.NewGraph(),
		origin: opcpath.MustParse(OriginPartPath),
		sink:   opts.Sink,
		checks: contract.Resolve(opts.Contracts),
	}
	p.parts.Put(p.origin, originContentType, nil)
	p.rels.Add("", p.origin, opc.RelTypeOrigin)
	return p
}

// OpenReadWrite loads a package from source for mutation. The origin
// part is discovered during parse; a well-formed archive without a
// root origin relationship fails with opc.ErrMissingOrigin.
func OpenReadWrite(source pkgio.Source, opts Options) (*Package, error) {
	data, err := source.ReadAll()
	if err != nil {
		return nil, err
	}
	return OpenReadWriteBytes(data, opts)
}

// OpenReadWriteBytes is OpenReadWrite over an in-memory archive.
func OpenReadWriteBytes(data []byte, opts Options) (*Package, error) {
	model, err := opc.Decode(data)
	if err != nil {
		return nil, err
	}

	origin, err := opcpath.Parse(model.OriginKey)
	if err != nil {
		return nil, err
	}
	return &Package{
		parts:  model.Parts,
		rels:   model.Rels,
		origin: origin,
		sink:   opts.Sink,
		checks: contract.Resolve(opts.Contracts),
	}, nil
}

// OpenRead loads a package from source for read-only access.
func OpenRead(source pkgio.Source, opts Options) (Reader, error) {
	data, err := source.ReadAll()
	if err != nil {
		return nil, err
	}
	return OpenReadBytes(data, opts)
}

// OpenReadBytes is OpenRead over an in-memory archive.
func OpenReadBytes(data []byte, opts Options) (Reader, error) {
	return OpenReadWriteBytes(data, Options{Contracts: opts.Contracts})
}

// CreateFile returns a fresh package that flushes to the file at
// path.
func CreateFile(path string, opts Options) *Package {
	opts.Sink = pkgio.FileSink(path)
	return Create(opts)
}

// OpenReadWriteFile loads the package file at path; Flush writes back
// to the same file.
func OpenReadWriteFile(path string, opts Options) (*Package, error) {
	opts.Sink = pkgio.FileSink(path)
	return OpenReadWrite(pkgio.FileSource(path), opts)
}

// OpenReadFile loads the package file at path for read-only access.
func OpenReadFile(path string, opts Options) (Reader, error) {
	return OpenRead(pkgio.FileSource(path), opts)
}
