// SPDX-License-Identifier: MIT

// Command lvrank ranks the vertices of a directed edge-list graph with
// PageRank.
//
// Usage:
//
//	lvrank [flags] <edge-list-file>
//	lvrank generate --shape random -n 100 -p 0.05 -o graph.txt.gz
//
// Ranks go to stdout; structured JSON logs go to stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
