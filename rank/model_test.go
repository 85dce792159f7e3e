// SPDX-License-Identifier: MIT
// Package rank_test verifies the TransitionModel lifecycle.

package rank_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/matrix"
	"github.com/katalvlaran/lvrank/rank"
)

// TestBuild_TransitionEntries checks M[r][c] = 1/outdeg(c) for c → r.
func TestBuild_TransitionEntries(t *testing.T) {
	// 1→2, 1→3, 2→3, 3 dangling.
	g := MustGraph(t, [2]core.VertexID{1, 2}, [2]core.VertexID{1, 3}, [2]core.VertexID{2, 3})
	md := BuiltModel(t, g)

	require.Equal(t, rank.TransitionBuilt, md.State())
	require.Equal(t, 3, md.Size())
	require.Equal(t, []core.VertexID{1, 2, 3}, md.Index())
	require.Equal(t, 1, md.Dangling())

	m, err := md.Transition()
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0]\n[0.5, 0, 0]\n[0.5, 1, 0]\n", m.String())
}

// TestBuild_SelfLoop treats a loop as an ordinary successor.
func TestBuild_SelfLoop(t *testing.T) {
	g := MustGraph(t, [2]core.VertexID{1, 1}, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 1})
	md := BuiltModel(t, g)
	m, err := md.Transition()
	require.NoError(t, err)
	require.Equal(t, "[0.5, 1]\n[0.5, 0]\n", m.String())
	require.Zero(t, md.Dangling())
}

// TestBuild_Errors maps every bad source to its sentinel.
func TestBuild_Errors(t *testing.T) {
	var typedNil *core.Graph
	degFail := errors.New("boom")

	tests := []struct {
		name string
		g    rank.Source
		want error
	}{
		{"nil interface", nil, rank.ErrNilGraph},
		{"typed nil graph", typedNil, rank.ErrNilGraph},
		{"empty graph", core.NewGraph(), rank.ErrEmptyGraph},
		{"duplicate vertex", fakeSource{ids: []core.VertexID{1, 2, 1}}, rank.ErrDuplicateVertex},
		{"degree error", fakeSource{ids: []core.VertexID{1}, degErr: degFail}, rank.ErrUnknownVertex},
		{"edge leaves vertex set", fakeSource{
			ids:   []core.VertexID{1, 2},
			deg:   map[core.VertexID]int{1: 2},
			edges: map[[2]core.VertexID]bool{{1, 2}: true},
		}, rank.ErrUnknownVertex},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			md := rank.NewModel()
			require.ErrorIs(t, md.Build(tc.g), tc.want)
			require.Equal(t, rank.Unbuilt, md.State()) // no partial state
		})
	}
}

// TestCorrectDangling restores column-stochasticity.
func TestCorrectDangling(t *testing.T) {
	g := MustGraph(t, [2]core.VertexID{1, 2})
	md := BuiltModel(t, g)
	require.InDeltaSlice(t, []float64{1, 0}, ColumnSums(t, md), sumTol)

	require.NoError(t, md.CorrectDangling())
	require.Equal(t, rank.DanglingCorrected, md.State())

	m, err := md.Transition()
	require.NoError(t, err)
	require.Equal(t, "[0, 0.5]\n[1, 0.5]\n", m.String())
}

// TestMixDamping keeps columns stochastic and rejects bad factors.
func TestMixDamping(t *testing.T) {
	g := MustGraph(t, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 1}, [2]core.VertexID{2, 3}, [2]core.VertexID{3, 1})
	md := BuiltModel(t, g)
	require.NoError(t, md.MixDamping(0.15))
	require.Equal(t, rank.DampingMixed, md.State())
	require.InDeltaSlice(t, []float64{1, 1, 1}, ColumnSums(t, md), sumTol)

	m, err := md.Transition()
	require.NoError(t, err)
	v, err := m.At(1, 0) // 1 → 2 with outdeg(1)=1
	require.NoError(t, err)
	require.InDelta(t, 0.85+0.05, v, sumTol)
	v, err = m.At(0, 0) // no loop: jump share only
	require.NoError(t, err)
	require.InDelta(t, 0.05, v, sumTol)

	for _, d := range []float64{-0.01, 1.01, math.NaN()} {
		md := BuiltModel(t, g)
		require.ErrorIs(t, md.MixDamping(d), rank.ErrBadDamping, "d=%v", d)
		require.Equal(t, rank.TransitionBuilt, md.State())
	}
}

// TestLifecycleOrdering enforces Build → [Dangling] → [Damping] → Solve.
func TestLifecycleOrdering(t *testing.T) {
	g := MustGraph(t, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 1})

	t.Run("before build", func(t *testing.T) {
		md := rank.NewModel()
		require.ErrorIs(t, md.CorrectDangling(), rank.ErrBadStage)
		require.ErrorIs(t, md.MixDamping(0.15), rank.ErrBadStage)
		_, err := md.Solve(eps, 10)
		require.ErrorIs(t, err, rank.ErrBadStage)
		_, err = md.Transition()
		require.ErrorIs(t, err, rank.ErrBadStage)
		require.Nil(t, md.Result())
	})

	t.Run("build twice", func(t *testing.T) {
		md := BuiltModel(t, g)
		require.ErrorIs(t, md.Build(g), rank.ErrBadStage)
	})

	t.Run("dangling after damping", func(t *testing.T) {
		md := BuiltModel(t, g)
		require.NoError(t, md.MixDamping(0.15))
		require.ErrorIs(t, md.CorrectDangling(), rank.ErrBadStage)
		require.ErrorIs(t, md.MixDamping(0.15), rank.ErrBadStage)
	})

	t.Run("everything after solve", func(t *testing.T) {
		md := BuiltModel(t, g)
		res, err := md.Solve(eps, 10)
		require.NoError(t, err)
		require.Same(t, res, md.Result())
		require.Equal(t, rank.Solved, md.State())

		require.ErrorIs(t, md.Build(g), rank.ErrSolved)
		require.ErrorIs(t, md.CorrectDangling(), rank.ErrSolved)
		require.ErrorIs(t, md.MixDamping(0.15), rank.ErrSolved)
		_, err = md.Solve(eps, 10)
		require.ErrorIs(t, err, rank.ErrSolved)
	})
}

// TestSolve_BadBudget surfaces matrix validation errors.
func TestSolve_BadBudget(t *testing.T) {
	g := MustGraph(t, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 1})

	md := BuiltModel(t, g)
	_, err := md.Solve(eps, 0)
	require.ErrorIs(t, err, matrix.ErrBadIterations)
	require.Equal(t, rank.TransitionBuilt, md.State()) // still solvable

	_, err = md.Solve(math.Inf(1), 10)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestTransition_IsACopy protects the model's matrix from callers.
func TestTransition_IsACopy(t *testing.T) {
	md := BuiltModel(t, MustGraph(t, [2]core.VertexID{1, 2}, [2]core.VertexID{2, 1}))
	m, err := md.Transition()
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 42))

	again, err := md.Transition()
	require.NoError(t, err)
	v, err := again.At(0, 0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestStateString pins the log labels.
func TestStateString(t *testing.T) {
	assert.Equal(t, "unbuilt", rank.Unbuilt.String())
	assert.Equal(t, "transition-built", rank.TransitionBuilt.String())
	assert.Equal(t, "dangling-corrected", rank.DanglingCorrected.String())
	assert.Equal(t, "damping-mixed", rank.DampingMixed.String())
	assert.Equal(t, "solved", rank.Solved.String())
	assert.Equal(t, "state(9)", rank.State(9).String())
}
