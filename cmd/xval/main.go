// Copyright (c) 2026 XVal Team
// XVal - Xbox 360 X value decoder
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for xval.
//
// Usage:
//
//	go run ./cmd/xval decode <serial> <xvalue>
//	./xval serial <serial>
//
// See --help for all commands and flags.
package main

import (
	"os"

	"github.com/cooltrainer/xval/ui/cli"
)

func main() {
	// Cobra has already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
