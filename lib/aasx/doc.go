// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

// Package aasx is the public facade over the OPC package model. It
// exposes AASX semantics (spec parts linked from the mandatory origin,
// supplementary attachments linked from specs, and the single package
// thumbnail) as operations on two capability views: the Reader
// interface for read-only access and *Package for read-write access.
//
// A package is created fresh with Create (which provisions the origin
// part and its root relationship) or loaded with the Open functions.
// Mutations happen in memory; Flush serializes the current state to
// archive bytes and, when a sink is configured, persists them. A
// package instance is not safe for concurrent use; callers serialize
// their own access.
package aasx
