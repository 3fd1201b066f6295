// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package opcpath

import (
	"fmt"
	"strings"
)

// Relationship-document functions work on canonical keys. The empty
// string is the package root: its relationship document lives at the
// fixed location "/_rels/.rels".

// relsDir is the reserved directory segment holding relationship
// documents.
const relsDir = "_rels"

// relsExt is the suffix of every relationship document.
const relsExt = ".rels"

// RelsPathFor returns the canonical path of the relationship document
// for the given source key ("" for the package root).
func RelsPathFor(sourceKey string) string {
	if sourceKey == "" {
		return "/" + relsDir + "/" + relsExt
	}
	slash := strings.LastIndexByte(sourceKey, '/')
	dir, base := sourceKey[:slash], sourceKey[slash+1:]
	return dir + "/" + relsDir + "/" + base + relsExt
}

// SourceFromRelsPath inverts RelsPathFor: given the canonical path of
// a relationship document found in an archive, it recovers the source
// key the document describes. The root document "/_rels/.rels" maps to
// the empty key. Returns ok=false if docKey is not a relationship
// document path.
func SourceFromRelsPath(docKey string) (sourceKey string, ok bool) {
	if !IsRelsPath(docKey) {
		return "", false
	}
	if docKey == "/"+relsDir+"/"+relsExt {
		return "", true
	}

	slash := strings.LastIndexByte(docKey, '/')
	dir, base := docKey[:slash], docKey[slash+1:]
	base = strings.TrimSuffix(base, relsExt)

	// dir ends in "/_rels"; the source lives in its parent.
	parent := strings.TrimSuffix(dir, "/"+relsDir)
	return parent + "/" + base, true
}

// IsRelsPath reports whether the canonical key names a relationship
// document: a file with the ".rels" suffix directly inside a "_rels"
// directory.
func IsRelsPath(key string) bool {
	if !strings.HasSuffix(key, relsExt) {
		return false
	}
	slash := strings.LastIndexByte(key, '/')
	if slash < 0 {
		return false
	}
	return strings.HasSuffix(key[:slash], "/"+relsDir)
}

// ResolveTarget resolves a relationship target against its source. An
// absolute target (leading "/") stands alone; a relative target is
// resolved against the parent directory of the source using the same
// lexical normalization as Parse. The root source resolves relative
// targets against "/".
func ResolveTarget(sourceKey, target string) (PartPath, error) {
	if target == "" {
		return PartPath{}, fmt.Errorf("empty relationship target")
	}
	if strings.HasPrefix(target, "/") {
		return Parse(target)
	}

	dir := "/"
	if sourceKey != "" {
		dir = sourceKey[:strings.LastIndexByte(sourceKey, '/')+1]
	}
	return Parse(dir + target)
}
