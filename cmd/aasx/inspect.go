// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/aasx-foundation/aasx/cmd/aasx/cli"
	"github.com/aasx-foundation/aasx/lib/aasx"
	"github.com/aasx-foundation/aasx/lib/parthash"
)

// inspectCommand lists a package's structure: origin, specs with
// their supplementaries, thumbnail, and the full part inventory.
func inspectCommand() *cli.Command {
	var withDigests bool

	return &cli.Command{
		Name:    "inspect",
		Summary: "Show the structure of a package file",
		Usage:   "aasx inspect <file> [flags]",
		Examples: []cli.Example{
			{Description: "Inspect a package", Command: "aasx inspect machine.aasx"},
			{Description: "Include part digests", Command: "aasx inspect --digests machine.aasx"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
			flags.BoolVar(&withDigests, "digests", false, "include BLAKE3 part digests")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one package file argument")
			}
			return inspect(args[0], withDigests)
		},
	}
}

func inspect(path string, withDigests bool) error {
	reader, err := aasx.OpenReadFile(path, aasx.Options{})
	if err != nil {
		return err
	}
	defer reader.Close()

	fmt.Printf("origin: %s\n", reader.OriginPath())

	specs, err := reader.Specs()
	if err != nil {
		return err
	}
	fmt.Printf("\nspecs (%d):\n", len(specs))
	for _, spec := range specs {
		fmt.Printf("  %s (%s)\n", spec.Path(), spec.ContentType())
		supplementaries, err := reader.SupplementariesFor(spec.Path())
		if err != nil {
			return err
		}
		for _, supplementary := range supplementaries {
			fmt.Printf("    suppl: %s (%s)\n", supplementary.Path(), supplementary.ContentType())
		}
	}

	thumbnail, err := reader.Thumbnail()
	if err != nil {
		return err
	}
	if thumbnail != nil {
		fmt.Printf("\nthumbnail: %s (%s)\n", thumbnail.Path(), thumbnail.ContentType())
	} else {
		fmt.Printf("\nthumbnail: none\n")
	}

	parts, err := reader.Parts()
	if err != nil {
		return err
	}
	fmt.Printf("\nparts (%d):\n", len(parts))
	table := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	for _, part := range parts {
		if withDigests {
			digest := parthash.Sum(part.Content())
			fmt.Fprintf(table, "  %s\t%s\t%d bytes\t%s\n",
				part.Path(), part.ContentType(), part.Size(), parthash.Format(digest))
			continue
		}
		fmt.Fprintf(table, "  %s\t%s\t%d bytes\n", part.Path(), part.ContentType(), part.Size())
	}
	return table.Flush()
}
