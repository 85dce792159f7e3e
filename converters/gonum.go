// SPDX-License-Identifier: MIT

package converters

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvrank/core"
)

// FromGonum copies every node and directed edge of g into a new core.Graph.
// Node IDs are carried over unchanged; isolated nodes are kept.
// Complexity: O(V + E).
func FromGonum(g graph.Directed) *core.Graph {
	out := core.NewGraph()

	nodes := g.Nodes()
	var (
		uid int64
		to  graph.Nodes
	)
	for nodes.Next() {
		uid = nodes.Node().ID()
		out.AddVertex(core.VertexID(uid))
		to = g.From(uid)
		for to.Next() {
			// loops are allowed on a default core.Graph, so AddEdge cannot fail
			_ = out.AddEdge(core.VertexID(uid), core.VertexID(to.Node().ID()))
		}
	}

	return out
}

// ToGonum exports g as a *simple.DirectedGraph.
//
// Self-loops are skipped: simple.DirectedGraph rejects them. The returned
// count reports how many were dropped so callers can tell the graphs apart.
// Complexity: O(V log V + E log E).
func ToGonum(g *core.Graph) (*simple.DirectedGraph, int) {
	out := simple.NewDirectedGraph()
	for _, id := range g.Vertices() {
		out.AddNode(simple.Node(id))
	}

	var loops int
	for _, e := range g.Edges() {
		if e.From == e.To {
			loops++
			continue
		}
		out.SetEdge(out.NewEdge(simple.Node(e.From), simple.Node(e.To)))
	}

	return out, loops
}
