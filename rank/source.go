// SPDX-License-Identifier: MIT

package rank

import "github.com/katalvlaran/lvrank/core"

// Source is the graph contract consumed by Build. *core.Graph satisfies it.
//
// Vertices must list each ID once, in a stable order; OutDegree must count
// distinct successors; HasEdge must agree with OutDegree.
type Source interface {
	Vertices() []core.VertexID
	OutDegree(v core.VertexID) (int, error)
	HasEdge(from, to core.VertexID) bool
}

var _ Source = (*core.Graph)(nil)

// isNilSource catches a nil interface and a typed-nil *core.Graph.
func isNilSource(g Source) bool {
	if g == nil {
		return true
	}
	if cg, ok := g.(*core.Graph); ok && cg == nil {
		return true
	}

	return false
}
