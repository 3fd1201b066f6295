// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "aasx",
		Subcommands: []*Command{
			{
				Name: "inspect",
				Run: func(args []string) error {
					called = "inspect"
					return nil
				},
			},
			{
				Name: "pack",
				Run: func(args []string) error {
					called = "pack"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"pack"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "pack" {
		t.Errorf("dispatched to %q, want %q", called, "pack")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var outPath string
	var received []string

	cmd := &Command{
		Name: "extract",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("extract", pflag.ContinueOnError)
			flags.StringVar(&outPath, "out", "", "")
			return flags
		},
		Run: func(args []string) error {
			received = args
			return nil
		},
	}

	if err := cmd.Execute([]string{"machine.aasx", "--out", "dump/"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if outPath != "dump/" {
		t.Errorf("out = %q, want dump/", outPath)
	}
	if len(received) != 1 || received[0] != "machine.aasx" {
		t.Errorf("args = %v, want [machine.aasx]", received)
	}
}

func TestCommand_Execute_UnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "aasx",
		Subcommands: []*Command{
			{Name: "inspect", Run: func(args []string) error { return nil }},
			{Name: "digest", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"insp"})
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "inspect"`) {
		t.Errorf("missing suggestion in %q", err.Error())
	}

	err = root.Execute([]string{"digset"})
	if err == nil || !strings.Contains(err.Error(), `did you mean "digest"`) {
		t.Errorf("expected typo suggestion, got %v", err)
	}

	err = root.Execute([]string{"zzzzzz"})
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("expected plain unknown-command error, got %v", err)
	}
}

func TestCommand_PrintHelp_ListsSubcommandsAndExamples(t *testing.T) {
	root := &Command{
		Name:    "aasx",
		Summary: "Work with AASX packages",
		Subcommands: []*Command{
			{Name: "inspect", Summary: "Show package structure"},
		},
		Examples: []Example{
			{Description: "Inspect a package", Command: "aasx inspect machine.aasx"},
		},
	}

	var out bytes.Buffer
	root.PrintHelp(&out)
	help := out.String()

	for _, want := range []string{"inspect", "Show package structure", "aasx inspect machine.aasx", "Commands:"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q:\n%s", want, help)
		}
	}
}

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"pack", "pack", 0},
		{"digset", "digest", 2},
		{"insp", "inspect", 3},
	}
	for _, c := range cases {
		if got := editDistance(c.a, c.b); got != c.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
