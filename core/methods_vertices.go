// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.

package core

import "sort"

// AddVertex registers id if missing (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id VertexID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)
}

// ensureVertex registers id; caller holds the write lock.
func (g *Graph) ensureVertex(id VertexID) map[VertexID]struct{} {
	out, ok := g.succ[id]
	if !ok {
		out = make(map[VertexID]struct{})
		g.succ[id] = out
	}

	return out
}

// HasVertex reports whether id is registered.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.succ[id]

	return ok
}

// Vertices returns every vertex ID in ascending order.
// The returned slice is owned by the caller.
// Complexity: O(V log V).
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	ids := make([]VertexID, 0, len(g.succ))
	for id := range g.succ {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sortIDs(ids)

	return ids
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.succ)
}

// OutDegree returns the number of distinct successors of id.
// A self-loop counts once.
//
// Errors:
//   - ErrVertexNotFound if id is not registered.
//
// Complexity: O(1).
func (g *Graph) OutDegree(id VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out, ok := g.succ[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(out), nil
}

// sortIDs sorts ids ascending in place.
func sortIDs(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
