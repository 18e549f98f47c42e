// SPDX-License-Identifier: MIT

// Command blockmat demonstrates single-block matrices: it allocates a matrix,
// fills it, prints it, scales its flat view and verifies the index round trip.
// The plan command prints the byte layout for a given shape and element type.
//
// Usage:
//
//	blockmat demo --rows 3 --cols 2 --type int32 --factor 2
//	blockmat plan --rows 1000 --cols 1000 --type float64 --json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
