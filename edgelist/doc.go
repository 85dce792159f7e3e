// SPDX-License-Identifier: MIT

// Package edgelist loads and writes a directed core.Graph as edge-list text.
//
// Format:
//
//	# comment
//	1	2
//	2 3
//
// One directed edge per line, source first, fields separated by any run of
// spaces or tabs. Blank lines and lines whose first non-space character is
// '#' or '%' are ignored. Vertex IDs are signed 64-bit decimal integers.
// Duplicate edges collapse (the graph is set-valued) and self-loops are kept.
//
// Loading is all-or-nothing: the first malformed line aborts with a
// *ParseError and no graph is returned. Load transparently decompresses
// files whose name ends in ".gz". Write emits the same format in ascending
// edge order.
package edgelist
