// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/aasx-foundation/aasx/cmd/aasx/cli"
	"github.com/aasx-foundation/aasx/lib/aasx"
)

// createCommand writes a fresh, empty package file. The result
// contains only the auto-created origin part and is immediately
// loadable by every other subcommand.
func createCommand() *cli.Command {
	return &cli.Command{
		Name:    "create",
		Summary: "Create a fresh, empty package file",
		Usage:   "aasx create <file>",
		Examples: []cli.Example{
			{Description: "Create an empty package", Command: "aasx create machine.aasx"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one package file argument")
			}
			pkg := aasx.CreateFile(args[0], aasx.Options{})
			defer pkg.Close()
			if _, err := pkg.Flush(); err != nil {
				return err
			}
			fmt.Printf("created %s\n", args[0])
			return nil
		},
	}
}
