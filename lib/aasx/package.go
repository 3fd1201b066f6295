// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package aasx

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aasx-foundation/aasx/lib/contract"
	"github.com/aasx-foundation/aasx/lib/opc"
	"github.com/aasx-foundation/aasx/lib/opcpath"
	"github.com/aasx-foundation/aasx/lib/pkgio"
)

// ErrClosed reports an operation on a package after Close.
var ErrClosed = errors.New("package is closed")

// OriginPartPath is the canonical location of the auto-created origin
// part in a fresh package.
const OriginPartPath = "/aasx/aasx-origin"

// originContentType is the content type of the auto-created origin
// part. The origin carries no payload; it exists to anchor the root
// origin relationship.
const originContentType = "text/plain"

// SupplementaryRelationship pairs a spec part with one of its
// supplementary attachments.
type SupplementaryRelationship struct {
	Spec          *opc.Part
	Supplementary *opc.Part
}

// Reader is the read-only capability view of a package. Both read-only
// and read-write opens satisfy it; only *Package carries the write
// operations.
type Reader interface {
	// Specs returns the parts linked from the origin by spec-typed
	// edges, in the order the edges were recorded.
	Specs() ([]*opc.Part, error)

	// SpecsByContentType groups specs by exact content-type string.
	// Within a group, members are sorted by ascending canonical path.
	SpecsByContentType() (map[string][]*opc.Part, error)

	// IsSpec reports whether an origin-to-part spec edge exists for
	// the given path.
	IsSpec(path opcpath.PartPath) bool

	// SupplementariesFor returns the parts linked from spec by
	// supplementary-typed edges, in edge order. A recorded edge whose
	// target part is missing fails with opc.ErrIntegrity.
	SupplementariesFor(spec opcpath.PartPath) ([]*opc.Part, error)

	// SupplementaryRelationships returns every (spec, supplementary)
	// pair: specs in Specs order, supplementaries in edge order.
	SupplementaryRelationships() ([]SupplementaryRelationship, error)

	// FindPart returns the part at the given URI, or nil if absent.
	// Absence is not an error.
	FindPart(uri string) (*opc.Part, error)

	// Part is FindPart with a must-exist contract: absence fails with
	// opc.ErrPartNotFound.
	Part(uri string) (*opc.Part, error)

	// Thumbnail returns the part referenced by the root thumbnail
	// edge, or nil if none is set. A declared-but-missing thumbnail
	// part fails with opc.ErrIntegrity.
	Thumbnail() (*opc.Part, error)

	// Parts returns every part in the package sorted by canonical
	// path, including the origin and parts not reachable through any
	// relationship.
	Parts() ([]*opc.Part, error)

	// OriginPath returns the canonical path of the origin part.
	OriginPath() opcpath.PartPath

	// Close releases the package. No further calls are supported.
	Close() error
}

// Package is the read-write capability view. It implements Reader and
// adds the mutating operations.
type Package struct {
	parts  *opc.Registry
	rels   *opc.Graph
	origin opcpath.PartPath
	sink   pkgio.Sink
	checks contract.Checks
	closed bool
}

var _ Reader = (*Package)(nil)

// OriginPath returns the canonical path of the origin part.
func (p *Package) OriginPath() opcpath.PartPath { return p.origin }

// Specs implements Reader.
func (p *Package) Specs() ([]*opc.Part, error) {
	if p.closed {
		return nil, ErrClosed
	}

	edges := p.rels.ByType(p.origin.Key(), opc.RelTypeSpec)
	specs := make([]*opc.Part, 0, len(edges))
	for _, edge := range edges {
		part, err := p.dereference(edge)
		if err != nil {
			return nil, err
		}
		specs = append(specs, part)
	}
	return specs, nil
}

// SpecsByContentType implements Reader.
func (p *Package) SpecsByContentType() (map[string][]*opc.Part, error) {
	specs, err := p.Specs()
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]*opc.Part)
	for _, spec := range specs {
		groups[spec.ContentType()] = append(groups[spec.ContentType()], spec)
	}
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return group[i].Path().Key() < group[j].Path().Key()
		})
	}
	return groups, nil
}

// IsSpec implements Reader.
func (p *Package) IsSpec(path opcpath.PartPath) bool {
	if p.closed {
		return false
	}
	return p.rels.Has(p.origin.Key(), path, opc.RelTypeSpec)
}

// SupplementariesFor implements Reader.
func (p *Package) SupplementariesFor(spec opcpath.PartPath) ([]*opc.Part, error) {
	if p.closed {
		return nil, ErrClosed
	}

	edges := p.rels.ByType(spec.Key(), opc.RelTypeSupplementary)
	supplementaries := make([]*opc.Part, 0, len(edges))
	for _, edge := range edges {
		part, err := p.dereference(edge)
		if err != nil {
			return nil, err
		}
		supplementaries = append(supplementaries, part)
	}
	return supplementaries, nil
}

// SupplementaryRelationships implements Reader.
func (p *Package) SupplementaryRelationships() ([]SupplementaryRelationship, error) {
	specs, err := p.Specs()
	if err != nil {
		return nil, err
	}

	var pairs []SupplementaryRelationship
	for _, spec := range specs {
		supplementaries, err := p.SupplementariesFor(spec.Path())
		if err != nil {
			return nil, err
		}
		for _, supplementary := range supplementaries {
			pairs = append(pairs, SupplementaryRelationship{
				Spec:          spec,
				Supplementary: supplementary,
			})
		}
	}
	return pairs, nil
}

// FindPart implements Reader.
func (p *Package) FindPart(uri string) (*opc.Part, error) {
	if p.closed {
		return nil, ErrClosed
	}
	path, err := opcpath.Parse(uri)
	if err != nil {
		return nil, err
	}
	part, ok := p.parts.Find(path)
	if !ok {
		return nil, nil
	}
	return part, nil
}

// Part implements Reader.
func (p *Package) Part(uri string) (*opc.Part, error) {
	part, err := p.FindPart(uri)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, fmt.Errorf("%w: %s", opc.ErrPartNotFound, uri)
	}
	return part, nil
}

// Parts implements Reader.
func (p *Package) Parts() ([]*opc.Part, error) {
	if p.closed {
		return nil, ErrClosed
	}
	return p.parts.Parts(), nil
}

// Thumbnail implements Reader.
func (p *Package) Thumbnail() (*opc.Part, error) {
	if p.closed {
		return nil, ErrClosed
	}

	edges := p.rels.ByType("", opc.RelTypeThumbnail)
	if len(edges) == 0 {
		return nil, nil
	}
	return p.dereference(edges[0])
}

// Close implements Reader. The in-memory model is released; any
// further operation fails with ErrClosed.
func (p *Package) Close() error {
	p.closed = true
	p.parts = nil
	p.rels = nil
	p.sink = nil
	return nil
}

// dereference resolves an edge's target and looks it up in the
// registry. A dangling edge is an integrity violation: it indicates a
// corrupt or tampered archive, never a soft miss.
func (p *Package) dereference(edge opc.Relationship) (*opc.Part, error) {
	target, err := edge.TargetPath()
	if err != nil {
		return nil, fmt.Errorf("%w: relationship %s has unresolvable target %q",
			opc.ErrIntegrity, edge.ID, edge.Target)
	}
	part, ok := p.parts.Find(target)
	if !ok {
		return nil, fmt.Errorf("%w: relationship %s references missing part %s",
			opc.ErrIntegrity, edge.ID, target)
	}
	return part, nil
}
