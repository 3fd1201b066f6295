// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package opcpath

import (
	"fmt"
	"net/url"
	"strings"
)

// PartPath is a validated part address inside a package.
//
// Identity is defined by the canonical key: the lower-cased,
// leading-slash-normalized, lexically cleaned form of the path. The
// original-case form is retained separately for display and is never
// used for comparisons: two paths differing only by case address the
// same part.
//
// PartPath is an immutable value type. The zero value is not valid;
// use IsZero to check.
type PartPath struct {
	key     string
	display string
}

// Parse validates and canonicalizes a part URI.
//
// The URI's path component is extracted (an opaque URI with no path
// component, such as "mailto:x", is rejected), prefixed with "/" if
// missing, and lexically normalized: "." segments are dropped, ".."
// segments pop the previous segment, and ".." at the root is simply
// dropped. The canonical key is the lower-cased result.
func Parse(uri string) (PartPath, error) {
	if uri == "" {
		return PartPath{}, fmt.Errorf("empty part URI")
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return PartPath{}, fmt.Errorf("parsing part URI %q: %w", uri, err)
	}
	if parsed.Path == "" {
		return PartPath{}, fmt.Errorf("part URI %q has no path component", uri)
	}

	display := normalize(parsed.Path)
	return PartPath{
		key:     strings.ToLower(display),
		display: display,
	}, nil
}

// MustParse is Parse for statically known paths. Panics on error.
func MustParse(uri string) PartPath {
	p, err := Parse(uri)
	if err != nil {
		panic("opcpath: " + err.Error())
	}
	return p
}

// normalize applies leading-slash and dot-segment normalization using
// a segment stack. Purely lexical; ".." at the root is dropped.
func normalize(p string) string {
	var stack []string
	for _, segment := range strings.Split(p, "/") {
		switch segment {
		case "", ".":
			// Collapse duplicate separators and self references.
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, segment)
		}
	}
	return "/" + strings.Join(stack, "/")
}

// Key returns the canonical lookup key (lower-cased, cleaned,
// leading-slash-normalized). Registry and graph identity is defined
// on this value.
func (p PartPath) Key() string { return p.key }

// Display returns the original-case form of the path.
func (p PartPath) Display() string { return p.display }

// String returns the display form.
func (p PartPath) String() string { return p.display }

// IsZero reports whether the PartPath is the zero value.
func (p PartPath) IsZero() bool { return p.key == "" }

// Ext returns the lower-cased file extension of the path without the
// leading dot, or "" if the final segment has no extension.
func (p PartPath) Ext() string {
	base := p.key[strings.LastIndexByte(p.key, '/')+1:]
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 {
		return ""
	}
	return base[dot+1:]
}
