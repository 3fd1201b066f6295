// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aasx-foundation/aasx/lib/contenttype"
)

// Manifest describes a package build for the pack subcommand: which
// files become parts, which parts are specs, which attachments hang
// off each spec, and the optional thumbnail.
type Manifest struct {
	// Output is the package file to write. The --out flag overrides it.
	Output string `yaml:"output"`

	// ContentTypes maps a file extension (without dot, lower case) to
	// the content type assigned to parts with that extension when the
	// entry does not name one explicitly.
	ContentTypes map[string]string `yaml:"content_types,omitempty"`

	// Specs lists the spec parts and their supplementary attachments.
	Specs []SpecEntry `yaml:"specs"`

	// Thumbnail, when set, names the package thumbnail.
	Thumbnail *FileEntry `yaml:"thumbnail,omitempty"`
}

// SpecEntry is one spec part plus its supplementary attachments.
type SpecEntry struct {
	FileEntry     `yaml:",inline"`
	Supplementary []FileEntry `yaml:"supplementary,omitempty"`
}

// FileEntry maps a source file to a part.
type FileEntry struct {
	// File is the source file on disk, relative to the manifest's
	// directory.
	File string `yaml:"file"`

	// Part is the part URI inside the package (e.g., "/aasx/spec.json").
	Part string `yaml:"part"`

	// ContentType, when set, overrides the manifest's extension table.
	ContentType string `yaml:"content_type,omitempty"`
}

// LoadManifest reads and validates a manifest file. File entries stay
// relative to the manifest's directory; ResolveFile maps them to disk
// paths.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &manifest, nil
}

// Validate checks that every entry names both a source file and a part
// URI, and that specs exist when supplementaries do.
func (m *Manifest) Validate() error {
	var errs []string

	if len(m.Specs) == 0 {
		errs = append(errs, "at least one spec entry is required")
	}
	for i, spec := range m.Specs {
		if problem := spec.FileEntry.validate(); problem != "" {
			errs = append(errs, fmt.Sprintf("specs[%d]: %s", i, problem))
		}
		for j, supplementary := range spec.Supplementary {
			if problem := supplementary.validate(); problem != "" {
				errs = append(errs, fmt.Sprintf("specs[%d].supplementary[%d]: %s", i, j, problem))
			}
		}
	}
	if m.Thumbnail != nil {
		if problem := m.Thumbnail.validate(); problem != "" {
			errs = append(errs, "thumbnail: "+problem)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func (e FileEntry) validate() string {
	switch {
	case e.File == "":
		return "file is required"
	case e.Part == "":
		return "part is required"
	default:
		return ""
	}
}

// ResolveContentType elects a content type for the entry: the entry's
// own content_type, then the manifest's extension table, then the
// octet-stream fallback.
func (m *Manifest) ResolveContentType(e FileEntry) string {
	if e.ContentType != "" {
		return e.ContentType
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(e.File), "."))
	if ct, ok := m.ContentTypes[ext]; ok {
		return ct
	}
	return contenttype.Fallback
}

// ResolveFile maps an entry's source file to a disk path relative to
// the manifest's directory.
func ResolveFile(manifestPath string, e FileEntry) string {
	if filepath.IsAbs(e.File) {
		return e.File
	}
	return filepath.Join(filepath.Dir(manifestPath), e.File)
}
