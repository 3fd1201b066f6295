// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package contract

import (
	"errors"
	"strings"
	"testing"
)

func TestRequire(t *testing.T) {
	checks := New(true)

	if err := checks.Require(true, "never fires"); err != nil {
		t.Errorf("passing condition produced error: %v", err)
	}

	err := checks.Require(false, "part %s is not a spec", "/aasx/a.xml")
	if !errors.Is(err, ErrPrecondition) {
		t.Fatalf("err = %v, want ErrPrecondition", err)
	}
	if !strings.HasPrefix(err.Error(), "precondition violation: ") {
		t.Errorf("error lacks fixed prefix: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "/aasx/a.xml") {
		t.Errorf("error lacks formatted message: %q", err.Error())
	}
}

func TestEnsure(t *testing.T) {
	err := New(true).Ensure(false, "graph still references %s", "/p")
	if !errors.Is(err, ErrPostcondition) {
		t.Fatalf("err = %v, want ErrPostcondition", err)
	}
	if !strings.HasPrefix(err.Error(), "postcondition violation: ") {
		t.Errorf("error lacks fixed prefix: %q", err.Error())
	}
}

func TestDisabledChecksAreInert(t *testing.T) {
	checks := New(false)
	if err := checks.Require(false, "should not fire"); err != nil {
		t.Errorf("disabled Require produced error: %v", err)
	}
	if err := checks.Ensure(false, "should not fire"); err != nil {
		t.Errorf("disabled Ensure produced error: %v", err)
	}
}

func TestResolveOverrideWins(t *testing.T) {
	t.Setenv(EnvToggle, "false")
	enabled := true
	if !Resolve(&enabled).Enabled() {
		t.Error("explicit override lost to environment toggle")
	}
}

func TestResolveEnvironmentToggle(t *testing.T) {
	t.Setenv(EnvToggle, "1")
	t.Setenv(EnvEnvironment, "production")
	if !Resolve(nil).Enabled() {
		t.Error("toggle lost to production default")
	}

	t.Setenv(EnvToggle, "0")
	t.Setenv(EnvEnvironment, "development")
	if Resolve(nil).Enabled() {
		t.Error("disabling toggle ignored")
	}
}

func TestResolveDefaultsOffInProduction(t *testing.T) {
	t.Setenv(EnvToggle, "")
	t.Setenv(EnvEnvironment, "production")
	if Resolve(nil).Enabled() {
		t.Error("checks enabled in production by default")
	}

	t.Setenv(EnvEnvironment, "")
	if !Resolve(nil).Enabled() {
		t.Error("checks disabled outside production by default")
	}
}
