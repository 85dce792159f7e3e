// SPDX-License-Identifier: MIT

// Package core defines the directed graph that feeds the ranking pipeline.
//
// A Graph is a set of int64 vertex identifiers plus a set of directed edges
// between them. Edges are set-valued: adding the same (from, to) pair twice
// is a no-op, so out-degree counts distinct successors. Self-loops are
// permitted by default and count toward out-degree like any other edge.
//
// Concurrency:
//
//	All exported methods are safe for concurrent use. A single sync.RWMutex
//	guards the vertex catalog and the adjacency sets together, so readers see
//	a consistent topology (every edge endpoint is a registered vertex).
//
// Determinism:
//
//	Vertices(), Successors() and Edges() return results sorted by ascending
//	vertex ID. Consumers that build index mappings from Vertices() therefore
//	produce identical layouts on every run.
//
// Errors:
//
//	ErrVertexNotFound - query on a vertex that was never added.
//	ErrLoopNotAllowed - self-loop on a graph built WithoutLoops().
package core
