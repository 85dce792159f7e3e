// SPDX-License-Identifier: MIT
// Package rank_test contains fixtures shared by the rank tests.

package rank_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/rank"
)

// eps is the convergence threshold used by scenario tests.
const eps = 1e-10

// sumTol bounds floating-point drift on probability sums.
const sumTol = 1e-9

// MustGraph builds a core.Graph from (from, to) pairs.
func MustGraph(tb testing.TB, edges ...[2]core.VertexID) *core.Graph {
	tb.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(tb, g.AddEdge(e[0], e[1]))
	}

	return g
}

// RandomGraph builds a graph on n vertices where each ordered pair,
// self-loops included, is an edge with probability p. Isolated and dangling
// vertices are kept.
func RandomGraph(n int, p float64, seed int64) *core.Graph {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithSelfLoops()},
		builder.RandomSparse(n, p))
	if err != nil {
		panic(err) // n ≥ 1 and p ∈ [0,1] at every call site
	}

	return g
}

// BuiltModel returns a model after Build on g.
func BuiltModel(tb testing.TB, g rank.Source, opts ...rank.Option) *rank.Model {
	tb.Helper()
	md := rank.NewModel(opts...)
	require.NoError(tb, md.Build(g))

	return md
}

// ColumnSums returns the column sums of the model's current matrix.
func ColumnSums(tb testing.TB, md *rank.Model) []float64 {
	tb.Helper()
	m, err := md.Transition()
	require.NoError(tb, err)

	return m.ColumnSums()
}

// BufferLogger returns a debug-level JSON logger writing into buf.
func BufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// fakeSource is a hand-written Source for inconsistent-graph cases.
type fakeSource struct {
	ids    []core.VertexID
	deg    map[core.VertexID]int
	degErr error
	edges  map[[2]core.VertexID]bool
}

func (f fakeSource) Vertices() []core.VertexID { return f.ids }

func (f fakeSource) OutDegree(v core.VertexID) (int, error) {
	if f.degErr != nil {
		return 0, f.degErr
	}
	return f.deg[v], nil
}

func (f fakeSource) HasEdge(u, v core.VertexID) bool { return f.edges[[2]core.VertexID{u, v}] }

// recorder captures SolveStats.
type recorder struct{ got []rank.SolveStats }

func (r *recorder) ObserveSolve(s rank.SolveStats) { r.got = append(r.got, s) }
