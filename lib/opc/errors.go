// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package opc

import "errors"

// Sentinel errors of the package model. Callers match with errors.Is;
// wrapped variants carry context about the failing entry or path.
var (
	// ErrInvalidFormat reports an unreadable archive or malformed
	// embedded XML. Terminal; the archive cannot be loaded.
	ErrInvalidFormat = errors.New("invalid package format")

	// ErrMissingOrigin reports a well-formed archive that lacks the
	// mandatory root origin relationship. Reported distinctly from
	// ErrInvalidFormat so callers can special-case a valid zip that
	// simply is not a package.
	ErrMissingOrigin = errors.New("package has no origin relationship")

	// ErrPartNotFound reports a lookup miss on a must-exist query.
	ErrPartNotFound = errors.New("part not found")

	// ErrIntegrity reports a relationship whose target part is absent
	// from the registry, discovered during traversal. Signals a
	// corrupt or tampered archive.
	ErrIntegrity = errors.New("package integrity violation")
)
