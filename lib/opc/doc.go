// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

// Package opc implements the core OPC package model: the part
// registry, the typed relationship graph with its strict-cleanup
// policy, and the container codec that serializes the model to and
// from a zip byte stream.
//
// The model is a miniature addressable file system embedded in a
// single archive: parts are named byte payloads keyed by canonical
// path, and relationship documents link them into a typed graph. The
// codec writes uncompressed (Store) entries in a fixed order so the
// same model always produces identical archive bytes.
//
// Higher-level semantics (what a spec part's payload encodes, which
// relationship types exist between which parts) live in lib/aasx;
// this package only enforces the container format.
package opc
