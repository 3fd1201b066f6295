// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/aasx-foundation/aasx/cmd/aasx/cli"
	"github.com/aasx-foundation/aasx/lib/version"
)

// root assembles the aasx command tree.
func root() *cli.Command {
	return &cli.Command{
		Name:    "aasx",
		Summary: "Work with AASX/OPC package files",
		Description: "aasx creates, inspects, and builds AASX packages: zip containers\n" +
			"whose parts are linked by a typed relationship graph (specs,\n" +
			"supplementary attachments, and a thumbnail).",
		Subcommands: []*cli.Command{
			createCommand(),
			inspectCommand(),
			extractCommand(),
			packCommand(),
			digestCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Println("aasx " + version.Info())
					return nil
				},
			},
		},
	}
}
