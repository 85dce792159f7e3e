// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a graph.

package core

// Clone returns a deep copy of the Graph: configuration, vertices and edges.
// Mutating the clone never affects the source.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		succ:       make(map[VertexID]map[VertexID]struct{}, len(g.succ)),
		edgeCount:  g.edgeCount,
	}
	var (
		u, v VertexID
		out  map[VertexID]struct{}
		cp   map[VertexID]struct{}
	)
	for u, out = range g.succ {
		cp = make(map[VertexID]struct{}, len(out))
		for v = range out {
			cp[v] = struct{}{}
		}
		clone.succ[u] = cp
	}

	return clone
}
