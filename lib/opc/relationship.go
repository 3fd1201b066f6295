// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package opc

import (
	"fmt"
	"sort"

	"github.com/aasx-foundation/aasx/lib/opcpath"
)

// Fixed relationship type URIs.
const (
	// RelTypeOrigin marks the mandatory root relationship to the
	// package's origin part.
	RelTypeOrigin = "http://admin-shell.io/aasx/relationships/aasx-origin"

	// RelTypeSpec marks an origin-to-part edge designating a primary
	// spec document.
	RelTypeSpec = "http://admin-shell.io/aasx/relationships/aas-spec"

	// RelTypeSupplementary marks a spec-to-part edge designating an
	// attachment.
	RelTypeSupplementary = "http://admin-shell.io/aasx/relationships/aas-suppl"

	// RelTypeThumbnail marks the single root edge designating the
	// package's preview image.
	RelTypeThumbnail = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail"
)

// TargetModeInternal is the only target mode this model produces:
// every relationship points at a part inside the same package.
const TargetModeInternal = "Internal"

// Relationship is a typed edge from a source part (or the package
// root, represented by the empty source key) to a target part.
type Relationship struct {
	// ID is the relationship identifier, "R" followed by eight hex
	// digits. IDs read from an existing archive are preserved as-is.
	ID string

	// Type is one of the fixed relationship type URIs.
	Type string

	// SourceKey is the canonical path of the source part, or "" for
	// the package root.
	SourceKey string

	// Target is the target path as recorded: canonical absolute for
	// edges this model creates, possibly relative for edges read from
	// a foreign archive.
	Target string

	// TargetMode is fixed to Internal for this model.
	TargetMode string
}

// TargetPath resolves the recorded target against the source and
// returns its canonical form.
func (r Relationship) TargetPath() (opcpath.PartPath, error) {
	return opcpath.ResolveTarget(r.SourceKey, r.Target)
}

// targetKey returns the resolved canonical target key, or "" if the
// recorded target does not resolve.
func (r Relationship) targetKey() string {
	path, err := r.TargetPath()
	if err != nil {
		return ""
	}
	return path.Key()
}

// Graph owns, per canonical source path, the ordered list of typed
// relationship edges of a package.
type Graph struct {
	buckets map[string][]Relationship

	// nextID is the monotonic relationship-id counter, scoped to the
	// package instance. Seeded at 1 and never resynchronized from ids
	// observed during load: mutating a loaded package can mint an id
	// string that collides with a preserved one.
	nextID uint64
}

// NewGraph returns an empty graph with the id counter seeded at 1.
func NewGraph() *Graph {
	return &Graph{buckets: map[string][]Relationship{}, nextID: 1}
}

// Add allocates the next relationship id and appends an edge from
// sourceKey ("" for the package root) to target. The target is
// recorded in canonical absolute form.
func (g *Graph) Add(sourceKey string, target opcpath.PartPath, relType string) Relationship {
	id := fmt.Sprintf("R%08x", g.nextID)
	g.nextID++

	edge := Relationship{
		ID:         id,
		Type:       relType,
		SourceKey:  sourceKey,
		Target:     target.Key(),
		TargetMode: TargetModeInternal,
	}
	g.buckets[sourceKey] = append(g.buckets[sourceKey], edge)
	return edge
}

// AddWithID is the load-time variant of Add: it preserves an id read
// from an existing relationship document instead of allocating one,
// and records the target exactly as read (possibly relative).
func (g *Graph) AddWithID(id, sourceKey, target, relType string) Relationship {
	edge := Relationship{
		ID:         id,
		Type:       relType,
		SourceKey:  sourceKey,
		Target:     target,
		TargetMode: TargetModeInternal,
	}
	g.buckets[sourceKey] = append(g.buckets[sourceKey], edge)
	return edge
}

// Remove deletes every edge exactly matching the
// (source, target, type) triple. Targets are compared in resolved
// canonical form, so a relative recorded target still matches.
// Returns the number of edges removed.
func (g *Graph) Remove(sourceKey string, target opcpath.PartPath, relType string) int {
	bucket, ok := g.buckets[sourceKey]
	if !ok {
		return 0
	}

	kept := bucket[:0]
	removed := 0
	for _, edge := range bucket {
		if edge.Type == relType && edge.targetKey() == target.Key() {
			removed++
			continue
		}
		kept = append(kept, edge)
	}

	if len(kept) == 0 {
		delete(g.buckets, sourceKey)
	} else {
		g.buckets[sourceKey] = kept
	}
	return removed
}

// RemoveAllWithSourceOrTarget is the strict-cleanup primitive: it
// drops the entire bucket keyed by key and additionally scans every
// other bucket, removing any edge whose resolved target equals key.
// Invoked whenever a part is deleted, so no relationship ever survives
// referencing a deleted part.
func (g *Graph) RemoveAllWithSourceOrTarget(key string) {
	delete(g.buckets, key)

	for sourceKey, bucket := range g.buckets {
		kept := bucket[:0]
		for _, edge := range bucket {
			if edge.targetKey() == key {
				continue
			}
			kept = append(kept, edge)
		}
		if len(kept) == 0 {
			delete(g.buckets, sourceKey)
		} else {
			g.buckets[sourceKey] = kept
		}
	}
}

// RemoveSource drops the entire bucket keyed by key, leaving edges
// that target key in place. Used when a part keeps existing but loses
// its outgoing relationships.
func (g *Graph) RemoveSource(key string) {
	delete(g.buckets, key)
}

// RemoveType deletes every edge from sourceKey with the given type,
// regardless of target. Returns the number of edges removed.
func (g *Graph) RemoveType(sourceKey, relType string) int {
	bucket, ok := g.buckets[sourceKey]
	if !ok {
		return 0
	}

	kept := bucket[:0]
	removed := 0
	for _, edge := range bucket {
		if edge.Type == relType {
			removed++
			continue
		}
		kept = append(kept, edge)
	}

	if len(kept) == 0 {
		delete(g.buckets, sourceKey)
	} else {
		g.buckets[sourceKey] = kept
	}
	return removed
}

// Has reports whether an edge with the given triple exists.
func (g *Graph) Has(sourceKey string, target opcpath.PartPath, relType string) bool {
	for _, edge := range g.buckets[sourceKey] {
		if edge.Type == relType && edge.targetKey() == target.Key() {
			return true
		}
	}
	return false
}

// ByType returns the edges from sourceKey with the given type, in the
// order they were recorded.
func (g *Graph) ByType(sourceKey, relType string) []Relationship {
	var matches []Relationship
	for _, edge := range g.buckets[sourceKey] {
		if edge.Type == relType {
			matches = append(matches, edge)
		}
	}
	return matches
}

// Bucket returns the edges from sourceKey in recorded order.
func (g *Graph) Bucket(sourceKey string) []Relationship {
	bucket := g.buckets[sourceKey]
	edges := make([]Relationship, len(bucket))
	copy(edges, bucket)
	return edges
}

// Sources returns the keys of all non-empty buckets in ascending
// order (the root bucket "" sorts first).
func (g *Graph) Sources() []string {
	sources := make([]string, 0, len(g.buckets))
	for sourceKey := range g.buckets {
		sources = append(sources, sourceKey)
	}
	sort.Strings(sources)
	return sources
}
