// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package contenttype

import (
	"sort"

	"github.com/aasx-foundation/aasx/lib/opcpath"
)

// Well-known content types.
const (
	// Relationships is the content type of every relationship
	// document. It is always emitted as the default for the "rels"
	// extension.
	Relationships = "application/vnd.openxmlformats-package.relationships+xml"

	// Fallback is the generic binary content type assigned to a part
	// that matches neither an override nor an extension default.
	Fallback = "application/octet-stream"
)

// relsExtension is the extension of relationship documents.
const relsExtension = "rels"

// PartInfo is the slice of part state Build needs: where the part
// lives and what type it claims.
type PartInfo struct {
	Path        opcpath.PartPath
	ContentType string
}

// Document holds the default and override tables of a
// [Content_Types].xml document. The zero value is not useful; obtain
// one from Build, Decode, or Empty.
type Document struct {
	// defaults maps a lower-cased, dotless extension to its content
	// type.
	defaults map[string]string

	// overrides maps a canonical part path to its content type.
	overrides map[string]string
}

// Empty returns a document with empty tables. Used when an archive
// carries no [Content_Types].xml at all: every part then resolves to
// Fallback.
func Empty() *Document {
	return &Document{
		defaults:  map[string]string{},
		overrides: map[string]string{},
	}
}

// Build derives the content-types document from the given parts.
//
// Parts are visited in ascending canonical-path order. The first part
// seen with a given extension elects that extension's default; a later
// part with the same extension but a different content type becomes a
// per-path override instead of altering the default. Parts without an
// extension are always overrides.
func Build(parts []PartInfo) *Document {
	sorted := make([]PartInfo, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path.Key() < sorted[j].Path.Key()
	})

	doc := Empty()
	doc.defaults[relsExtension] = Relationships
	for _, part := range sorted {
		extension := part.Path.Ext()
		if extension == "" {
			doc.overrides[part.Path.Key()] = part.ContentType
			continue
		}
		elected, ok := doc.defaults[extension]
		switch {
		case !ok:
			doc.defaults[extension] = part.ContentType
		case elected != part.ContentType:
			doc.overrides[part.Path.Key()] = part.ContentType
		}
	}
	return doc
}

// Resolve returns the content type of the part at the given path:
// the exact-path override if one exists, else the default for the
// path's extension, else Fallback.
func (d *Document) Resolve(path opcpath.PartPath) string {
	if contentType, ok := d.overrides[path.Key()]; ok {
		return contentType
	}
	if contentType, ok := d.defaults[path.Ext()]; ok {
		return contentType
	}
	return Fallback
}

// sortedDefaults returns the default entries sorted by extension.
func (d *Document) sortedDefaults() []xmlDefault {
	extensions := make([]string, 0, len(d.defaults))
	for extension := range d.defaults {
		extensions = append(extensions, extension)
	}
	sort.Strings(extensions)

	entries := make([]xmlDefault, len(extensions))
	for i, extension := range extensions {
		entries[i] = xmlDefault{Extension: extension, ContentType: d.defaults[extension]}
	}
	return entries
}

// sortedOverrides returns the override entries sorted by part path.
func (d *Document) sortedOverrides() []xmlOverride {
	paths := make([]string, 0, len(d.overrides))
	for path := range d.overrides {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	entries := make([]xmlOverride, len(paths))
	for i, path := range paths {
		entries[i] = xmlOverride{PartName: path, ContentType: d.overrides[path]}
	}
	return entries
}
