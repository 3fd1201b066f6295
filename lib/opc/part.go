// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package opc

import (
	"sort"

	"github.com/aasx-foundation/aasx/lib/opcpath"
)

// Part is a named, typed byte payload inside a package. Parts are
// exclusively owned by their Registry: the payload slice handed out by
// Content is always a copy, never a shared alias of registry state.
type Part struct {
	path        opcpath.PartPath
	contentType string
	content     []byte
}

// Path returns the part's address.
func (p *Part) Path() opcpath.PartPath { return p.path }

// ContentType returns the part's content type.
func (p *Part) ContentType() string { return p.contentType }

// Content returns a copy of the part's payload.
func (p *Part) Content() []byte {
	content := make([]byte, len(p.content))
	copy(content, p.content)
	return content
}

// Size returns the payload length in bytes.
func (p *Part) Size() int { return len(p.content) }

// Registry owns the set of parts in a package, keyed by canonical
// path. Identity is case-insensitive: the registry never holds two
// parts differing only by case.
type Registry struct {
	parts map[string]*Part
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{parts: map[string]*Part{}}
}

// Put inserts a part or, when one already exists at the same canonical
// path, replaces its content type and payload in place. Relationships
// referencing the part stay valid across replacement since the key is
// unchanged (the original display form is kept too). The payload is
// copied; the caller keeps ownership of data. Always succeeds.
func (r *Registry) Put(path opcpath.PartPath, contentType string, data []byte) *Part {
	content := make([]byte, len(data))
	copy(content, data)

	if existing, ok := r.parts[path.Key()]; ok {
		existing.contentType = contentType
		existing.content = content
		return existing
	}

	part := &Part{path: path, contentType: contentType, content: content}
	r.parts[path.Key()] = part
	return part
}

// Delete removes the part at the given path. Reports whether a part
// was present. Relationship cleanup is the caller's responsibility and
// belongs to the same logical operation.
func (r *Registry) Delete(path opcpath.PartPath) bool {
	if _, ok := r.parts[path.Key()]; !ok {
		return false
	}
	delete(r.parts, path.Key())
	return true
}

// Find returns the part at the given path, or ok=false on a miss.
// A miss is not an error; callers decide whether it is fatal.
func (r *Registry) Find(path opcpath.PartPath) (*Part, bool) {
	part, ok := r.parts[path.Key()]
	return part, ok
}

// FindKey is Find for an already-canonical key.
func (r *Registry) FindKey(key string) (*Part, bool) {
	part, ok := r.parts[key]
	return part, ok
}

// Len returns the number of registered parts.
func (r *Registry) Len() int { return len(r.parts) }

// Parts returns all parts sorted by canonical path. The slice is
// freshly allocated; the parts themselves are the registry's.
func (r *Registry) Parts() []*Part {
	keys := make([]string, 0, len(r.parts))
	for key := range r.parts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]*Part, len(keys))
	for i, key := range keys {
		parts[i] = r.parts[key]
	}
	return parts
}
