// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

// Package contenttype models the OPC [Content_Types].xml document: the
// extension-wide defaults and per-part overrides that assign every part
// in a package its content type.
//
// On write, Build derives the document from the current part set. On
// read, Resolve answers a part's content type from the parsed tables,
// falling back to the generic binary type when the document says
// nothing (including when the archive carries no document at all).
package contenttype
