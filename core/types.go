// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex/Edge value types, Graph storage, options and sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// VertexID identifies a vertex. Edge-list inputs use arbitrary non-negative
// or negative 64-bit integers; no contiguity is assumed.
type VertexID int64

// Edge is a directed connection From → To.
type Edge struct {
	From VertexID
	To   VertexID
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithoutLoops rejects self-loops on AddEdge with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// Graph is a thread-safe directed graph with set-valued adjacency.
//
// succ[u] holds the distinct successors of u; every vertex has a (possibly
// empty) entry, so len(succ) == number of vertices.
type Graph struct {
	mu sync.RWMutex // guards succ and edgeCount

	allowLoops bool // default true

	succ      map[VertexID]map[VertexID]struct{} // from → set(to)
	edgeCount int                                // Σ len(succ[u])
}

// NewGraph creates an empty Graph. Self-loops are allowed unless
// WithoutLoops is passed.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowLoops: true,
		succ:       make(map[VertexID]map[VertexID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether AddEdge accepts self-loops.
func (g *Graph) Looped() bool { return g.allowLoops }
