// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

// Package opcpath implements part-path handling for OPC packages:
// canonical path resolution, the mapping between a part and its
// relationship document, and resolution of relative relationship
// targets.
//
// All operations are purely lexical. Nothing in this package touches a
// real filesystem; a part path is an address inside an archive, not a
// location on disk.
package opcpath
