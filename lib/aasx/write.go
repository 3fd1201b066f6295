// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package aasx

import (
	"fmt"
	"io"

	"github.com/aasx-foundation/aasx/lib/opc"
	"github.com/aasx-foundation/aasx/lib/opcpath"
)

// PutPart inserts a part or replaces the content type and payload of
// an existing part at the same canonical path. Returns the stored
// part.
func (p *Package) PutPart(uri, contentType string, data []byte) (*opc.Part, error) {
	if p.closed {
		return nil, ErrClosed
	}
	path, err := opcpath.Parse(uri)
	if err != nil {
		return nil, err
	}
	return p.parts.Put(path, contentType, data), nil
}

// PutPartFromReader drains the reader fully, then stores the bytes as
// PutPart would. The part is registered only after the whole stream
// has been read.
func (p *Package) PutPartFromReader(uri, contentType string, r io.Reader) (*opc.Part, error) {
	if p.closed {
		return nil, ErrClosed
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("draining part stream for %s: %w", uri, err)
	}
	return p.PutPart(uri, contentType, data)
}

// DeletePart removes the part and cascades strict relationship
// cleanup: the part's own relationship bucket is dropped and every
// edge targeting the part is removed from all other buckets. Deleting
// an absent part is a no-op.
func (p *Package) DeletePart(uri string) error {
	if p.closed {
		return ErrClosed
	}
	path, err := opcpath.Parse(uri)
	if err != nil {
		return err
	}
	if !p.parts.Delete(path) {
		return nil
	}
	p.rels.RemoveAllWithSourceOrTarget(path.Key())
	return nil
}

// MakeSpec marks the part at path as a spec by adding the
// origin-to-part spec edge. Idempotent: an already-spec part gains no
// duplicate edge. The part must exist.
func (p *Package) MakeSpec(path opcpath.PartPath) error {
	if p.closed {
		return ErrClosed
	}
	if _, ok := p.parts.Find(path); !ok {
		return fmt.Errorf("%w: %s", opc.ErrPartNotFound, path)
	}
	if p.IsSpec(path) {
		return nil
	}
	p.rels.Add(p.origin.Key(), path, opc.RelTypeSpec)
	return nil
}

// UnmakeSpec removes the origin-to-part spec edge and clears the
// part's own outgoing relationship bucket (its supplementary edges).
// The part must currently be a spec; violating that is a precondition
// failure.
func (p *Package) UnmakeSpec(path opcpath.PartPath) error {
	if p.closed {
		return ErrClosed
	}
	if err := p.checks.Require(p.IsSpec(path), "part %s is not a spec", path); err != nil {
		return err
	}
	p.rels.Remove(p.origin.Key(), path, opc.RelTypeSpec)
	p.rels.RemoveSource(path.Key())
	return nil
}

// RelateSupplementaryToSpec links the supplementary part to the spec
// part. The spec argument must already satisfy IsSpec (precondition
// failure otherwise); the supplementary part must exist. Idempotent.
func (p *Package) RelateSupplementaryToSpec(supplementary, spec opcpath.PartPath) error {
	if p.closed {
		return ErrClosed
	}
	if err := p.checks.Require(p.IsSpec(spec), "part %s is not a spec", spec); err != nil {
		return err
	}
	if _, ok := p.parts.Find(supplementary); !ok {
		return fmt.Errorf("%w: %s", opc.ErrPartNotFound, supplementary)
	}
	if p.rels.Has(spec.Key(), supplementary, opc.RelTypeSupplementary) {
		return nil
	}
	p.rels.Add(spec.Key(), supplementary, opc.RelTypeSupplementary)
	return nil
}

// UnrelateSupplementaryFromSpec removes the supplementary edge between
// the two parts. The spec argument must satisfy IsSpec (precondition
// failure otherwise). Removing an absent edge is a no-op.
func (p *Package) UnrelateSupplementaryFromSpec(supplementary, spec opcpath.PartPath) error {
	if p.closed {
		return ErrClosed
	}
	if err := p.checks.Require(p.IsSpec(spec), "part %s is not a spec", spec); err != nil {
		return err
	}
	p.rels.Remove(spec.Key(), supplementary, opc.RelTypeSupplementary)
	return nil
}

// SetThumbnail designates the part at path as the package thumbnail.
// Any existing thumbnail edges are removed first, so at most one ever
// exists. The part must exist.
func (p *Package) SetThumbnail(path opcpath.PartPath) error {
	if p.closed {
		return ErrClosed
	}
	if _, ok := p.parts.Find(path); !ok {
		return fmt.Errorf("%w: %s", opc.ErrPartNotFound, path)
	}
	p.rels.RemoveType("", opc.RelTypeThumbnail)
	p.rels.Add("", path, opc.RelTypeThumbnail)
	return nil
}

// UnsetThumbnail removes all root thumbnail edges. A package without a
// thumbnail is unchanged.
func (p *Package) UnsetThumbnail() error {
	if p.closed {
		return ErrClosed
	}
	p.rels.RemoveType("", opc.RelTypeThumbnail)
	return nil
}

// Flush encodes the current state to archive bytes, writes them to
// the configured sink if one is set, and returns them. Callable
// repeatedly; the package stays open.
func (p *Package) Flush() ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}

	data, err := opc.Encode(p.parts, p.rels)
	if err != nil {
		return nil, err
	}
	if p.sink != nil {
		if err := p.sink.WriteAll(data); err != nil {
			return nil, fmt.Errorf("flushing package: %w", err)
		}
	}
	return data, nil
}
