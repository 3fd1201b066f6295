// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/aasx-foundation/aasx/cmd/aasx/cli"
	"github.com/aasx-foundation/aasx/lib/aasx"
	"github.com/aasx-foundation/aasx/lib/opc"
)

// extractCommand copies part payloads out of a package: a single part
// to stdout or a file, or every part into a directory tree mirroring
// the part paths.
func extractCommand() *cli.Command {
	var (
		partURI string
		outPath string
	)

	return &cli.Command{
		Name:    "extract",
		Summary: "Extract part payloads from a package file",
		Usage:   "aasx extract <file> [flags]",
		Examples: []cli.Example{
			{Description: "Print one part to stdout", Command: "aasx extract machine.aasx --part /aasx/data/spec.json"},
			{Description: "Extract every part into a directory", Command: "aasx extract machine.aasx --out dump/"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("extract", pflag.ContinueOnError)
			flags.StringVar(&partURI, "part", "", "part URI to extract (all parts if unset)")
			flags.StringVar(&outPath, "out", "", "output file (single part) or directory (all parts)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one package file argument")
			}
			return extract(args[0], partURI, outPath)
		},
	}
}

func extract(path, partURI, outPath string) error {
	reader, err := aasx.OpenReadFile(path, aasx.Options{})
	if err != nil {
		return err
	}
	defer reader.Close()

	if partURI != "" {
		part, err := reader.Part(partURI)
		if err != nil {
			return err
		}
		if outPath == "" {
			_, err := os.Stdout.Write(part.Content())
			return err
		}
		return os.WriteFile(outPath, part.Content(), 0o644)
	}

	if outPath == "" {
		return fmt.Errorf("--out directory is required when extracting all parts")
	}
	parts, err := reader.Parts()
	if err != nil {
		return err
	}
	for _, part := range parts {
		if err := extractPart(outPath, part); err != nil {
			return err
		}
	}
	fmt.Printf("extracted %d parts to %s\n", len(parts), outPath)
	return nil
}

// extractPart writes one part under dir, mirroring the part path as a
// relative file path.
func extractPart(dir string, part *opc.Part) error {
	relative := strings.TrimPrefix(part.Path().Display(), "/")
	destination := filepath.Join(dir, filepath.FromSlash(relative))
	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return err
	}
	return os.WriteFile(destination, part.Content(), 0o644)
}
