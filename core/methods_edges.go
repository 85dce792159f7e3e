// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries.
//
// Policy:
//   - Edges are set-valued; AddEdge on an existing pair is a no-op.
//   - Endpoints are auto-registered, so every edge endpoint is a vertex.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the directed edge from → to, registering both endpoints.
//
// Errors:
//   - ErrLoopNotAllowed if from == to and the graph was built WithoutLoops().
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexID) error {
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out := g.ensureVertex(from)
	g.ensureVertex(to)
	if _, dup := out[to]; dup {
		return nil // set semantics
	}
	out[to] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the edge from → to exists.
// Unknown endpoints yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.succ[from][to]

	return ok
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Successors returns the distinct targets of id in ascending order.
//
// Errors:
//   - ErrVertexNotFound if id is not registered.
//
// Complexity: O(d log d), d = OutDegree(id).
func (g *Graph) Successors(id VertexID) ([]VertexID, error) {
	g.mu.RLock()
	out, ok := g.succ[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	ids := make([]VertexID, 0, len(out))
	for v := range out {
		ids = append(ids, v)
	}
	g.mu.RUnlock()

	sortIDs(ids)

	return ids, nil
}

// Edges returns every edge ordered by (From, To) ascending.
// Complexity: O(V log V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	res := make([]Edge, 0, g.edgeCount)
	for u, out := range g.succ {
		for v := range out {
			res = append(res, Edge{From: u, To: v})
		}
	}
	g.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		if res[i].From != res[j].From {
			return res[i].From < res[j].From
		}
		return res[i].To < res[j].To
	})

	return res
}
