// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/aasx-foundation/aasx/cmd/aasx/cli"
	"github.com/aasx-foundation/aasx/lib/aasx"
	"github.com/aasx-foundation/aasx/lib/opcpath"
)

// packCommand builds a complete package from a YAML manifest: specs,
// their supplementary attachments, and an optional thumbnail, all
// sourced from files on disk.
func packCommand() *cli.Command {
	var outPath string

	return &cli.Command{
		Name:    "pack",
		Summary: "Build a package file from a YAML manifest",
		Usage:   "aasx pack <manifest.yaml> [flags]",
		Description: "pack reads a YAML manifest describing spec parts, their\n" +
			"supplementary attachments, and an optional thumbnail, and builds\n" +
			"the package file in one pass. Source files are resolved relative\n" +
			"to the manifest's directory.",
		Examples: []cli.Example{
			{Description: "Build from a manifest", Command: "aasx pack build.yaml"},
			{Description: "Override the output file", Command: "aasx pack build.yaml --out machine.aasx"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("pack", pflag.ContinueOnError)
			flags.StringVar(&outPath, "out", "", "output package file (overrides the manifest's output)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one manifest file argument")
			}
			return pack(args[0], outPath)
		},
	}
}

func pack(manifestPath, outPath string) error {
	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = manifest.Output
	}
	if outPath == "" {
		return fmt.Errorf("no output file: set output in the manifest or pass --out")
	}

	pkg := aasx.CreateFile(outPath, aasx.Options{})
	defer pkg.Close()

	for _, spec := range manifest.Specs {
		specPath, err := putEntry(pkg, manifest, manifestPath, spec.FileEntry)
		if err != nil {
			return err
		}
		if err := pkg.MakeSpec(specPath); err != nil {
			return err
		}
		for _, supplementary := range spec.Supplementary {
			supplPath, err := putEntry(pkg, manifest, manifestPath, supplementary)
			if err != nil {
				return err
			}
			if err := pkg.RelateSupplementaryToSpec(supplPath, specPath); err != nil {
				return err
			}
		}
	}

	if manifest.Thumbnail != nil {
		thumbPath, err := putEntry(pkg, manifest, manifestPath, *manifest.Thumbnail)
		if err != nil {
			return err
		}
		if err := pkg.SetThumbnail(thumbPath); err != nil {
			return err
		}
	}

	if _, err := pkg.Flush(); err != nil {
		return err
	}
	fmt.Printf("packed %s\n", outPath)
	return nil
}

// putEntry reads the entry's source file and stores it as a part,
// returning the part's canonical path.
func putEntry(pkg *aasx.Package, manifest *Manifest, manifestPath string, entry FileEntry) (opcpath.PartPath, error) {
	data, err := os.ReadFile(ResolveFile(manifestPath, entry))
	if err != nil {
		return opcpath.PartPath{}, fmt.Errorf("reading %s: %w", entry.File, err)
	}
	part, err := pkg.PutPart(entry.Part, manifest.ResolveContentType(entry), data)
	if err != nil {
		return opcpath.PartPath{}, err
	}
	return part.Path(), nil
}
