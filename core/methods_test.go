// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/core"
)

// TestGraph_AddVertex covers idempotent registration and membership.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.False(t, g.HasVertex(7))

	g.AddVertex(7)
	g.AddVertex(7) // no-op
	require.True(t, g.HasVertex(7))
	require.Equal(t, 1, g.VertexCount())

	deg, err := g.OutDegree(7)
	require.NoError(t, err)
	require.Zero(t, deg) // isolated vertex is dangling
}

// TestGraph_AddEdgeRegistersEndpoints checks that every endpoint becomes a vertex.
func TestGraph_AddEdgeRegistersEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))

	require.True(t, g.HasVertex(1))
	require.True(t, g.HasVertex(2))
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(2, 1)) // directed
	require.False(t, g.HasEdge(9, 1)) // unknown endpoint
}

// TestGraph_SetSemantics: duplicate edges collapse and do not inflate out-degree.
func TestGraph_SetSemantics(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))

	deg, err := g.OutDegree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	assert.Equal(t, 2, g.EdgeCount())
}

// TestGraph_SelfLoops counts loops toward out-degree and honors WithoutLoops.
func TestGraph_SelfLoops(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(4, 4))
	require.NoError(t, g.AddEdge(4, 5))
	deg, err := g.OutDegree(4)
	require.NoError(t, err)
	require.Equal(t, 2, deg)
	require.True(t, g.HasEdge(4, 4))
	require.True(t, g.Looped())

	strict := core.NewGraph(core.WithoutLoops())
	require.False(t, strict.Looped())
	require.ErrorIs(t, strict.AddEdge(4, 4), core.ErrLoopNotAllowed)
	require.False(t, strict.HasVertex(4)) // rejected before registration
}

// TestGraph_OutDegreeUnknown returns ErrVertexNotFound.
func TestGraph_OutDegreeUnknown(t *testing.T) {
	g := core.NewGraph()
	_, err := g.OutDegree(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.Successors(42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_DeterministicOrder anchors the ascending-ID enumeration contract.
func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]core.VertexID{{30, 10}, {-5, 30}, {10, 20}, {30, -5}, {30, 20}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	g.AddVertex(0)

	require.Equal(t, []core.VertexID{-5, 0, 10, 20, 30}, g.Vertices())

	succ, err := g.Successors(30)
	require.NoError(t, err)
	require.Equal(t, []core.VertexID{-5, 10, 20}, succ)

	require.Equal(t, []core.Edge{
		{From: -5, To: 30},
		{From: 10, To: 20},
		{From: 30, To: -5},
		{From: 30, To: 10},
		{From: 30, To: 20},
	}, g.Edges())
}

// TestGraph_CloneIndependence ensures a deep copy.
func TestGraph_CloneIndependence(t *testing.T) {
	g := core.NewGraph(core.WithoutLoops())
	require.NoError(t, g.AddEdge(1, 2))

	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 3))
	require.ErrorIs(t, c.AddEdge(3, 3), core.ErrLoopNotAllowed) // options carried

	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())
	require.False(t, g.HasEdge(2, 3))
	require.Equal(t, 3, c.VertexCount())
	require.Equal(t, 2, c.EdgeCount())
}
