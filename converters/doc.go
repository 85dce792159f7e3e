// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between core.Graph and
// gonum.org/v1/gonum/graph.
//
// Use them to feed a gonum-built graph into the ranker, or to hand a loaded
// edge list to gonum's analysis packages (topology, paths, network scores).
package converters
