// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aasx-foundation/aasx/cmd/aasx/cli"
	"github.com/aasx-foundation/aasx/lib/aasx"
	"github.com/aasx-foundation/aasx/lib/parthash"
)

// digestCommand prints the keyed BLAKE3 digest of every part, one line
// per part, for change detection across package revisions.
func digestCommand() *cli.Command {
	return &cli.Command{
		Name:    "digest",
		Summary: "Print BLAKE3 digests for every part in a package",
		Usage:   "aasx digest <file>",
		Examples: []cli.Example{
			{Description: "Digest all parts", Command: "aasx digest machine.aasx"},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one package file argument")
			}
			return digest(args[0])
		},
	}
}

func digest(path string) error {
	reader, err := aasx.OpenReadFile(path, aasx.Options{})
	if err != nil {
		return err
	}
	defer reader.Close()

	parts, err := reader.Parts()
	if err != nil {
		return err
	}
	table := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	for _, part := range parts {
		sum := parthash.Sum(part.Content())
		fmt.Fprintf(table, "%s\t%s\n", parthash.Format(sum), part.Path())
	}
	return table.Flush()
}
