// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

// aasx is the command-line tool for AASX/OPC packages: creating,
// inspecting, extracting from, and building package files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return root().Execute(os.Args[1:])
}
