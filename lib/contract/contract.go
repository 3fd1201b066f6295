// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

// Package contract implements the precondition/postcondition check
// pair used at public API boundaries. A failed check produces an error
// carrying a fixed "precondition violation" or "postcondition
// violation" prefix plus a caller message; when checks are disabled
// the pair is inert and every check passes.
//
// Whether checks are active is resolved once, when the Checks value is
// constructed, from an explicit override, the AASX_CONTRACTS
// environment toggle, or a default of enabled-outside-production.
// Nothing reads ambient state at check time: callers thread the Checks
// value through explicitly.
package contract

import (
	"errors"
	"fmt"
	"os"
)

// Environment variables consulted by Resolve.
const (
	// EnvToggle enables ("1", "true") or disables ("0", "false")
	// contract checks.
	EnvToggle = "AASX_CONTRACTS"

	// EnvEnvironment names the deployment environment. Checks default
	// to enabled unless it is "production".
	EnvEnvironment = "AASX_ENV"
)

// Sentinel errors for the two violation kinds. Wrapped failures match
// via errors.Is.
var (
	ErrPrecondition  = errors.New("precondition violation")
	ErrPostcondition = errors.New("postcondition violation")
)

// Checks evaluates contract conditions. The zero value has checks
// disabled; construct with New or Resolve.
type Checks struct {
	enabled bool
}

// New returns a Checks value with the given explicit state.
func New(enabled bool) Checks {
	return Checks{enabled: enabled}
}

// Resolve determines the check state from the environment: the
// override wins when non-nil, then the AASX_CONTRACTS toggle, then
// enabled-unless-production per AASX_ENV.
func Resolve(override *bool) Checks {
	if override != nil {
		return Checks{enabled: *override}
	}
	switch os.Getenv(EnvToggle) {
	case "1", "true":
		return Checks{enabled: true}
	case "0", "false":
		return Checks{enabled: false}
	}
	return Checks{enabled: os.Getenv(EnvEnvironment) != "production"}
}

// Enabled reports whether checks are active.
func (c Checks) Enabled() bool { return c.enabled }

// Require returns a precondition-violation error when condition is
// false and checks are enabled, nil otherwise.
func (c Checks) Require(condition bool, format string, args ...any) error {
	if !c.enabled || condition {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

// Ensure returns a postcondition-violation error when condition is
// false and checks are enabled, nil otherwise.
func (c Checks) Ensure(condition bool, format string, args ...any) error {
	if !c.enabled || condition {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrPostcondition, fmt.Sprintf(format, args...))
}
