// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: TransitionModel lifecycle: Build → CorrectDangling → MixDamping → Solve.

package rank

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/matrix"
)

// State is the lifecycle position of a Model.
type State uint8

// Lifecycle states, in their only legal order.
const (
	Unbuilt State = iota
	TransitionBuilt
	DanglingCorrected
	DampingMixed
	Solved
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unbuilt:
		return "unbuilt"
	case TransitionBuilt:
		return "transition-built"
	case DanglingCorrected:
		return "dangling-corrected"
	case DampingMixed:
		return "damping-mixed"
	case Solved:
		return "solved"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

const (
	opBuild    = "Build"
	opDangling = "CorrectDangling"
	opDamping  = "MixDamping"
	opSolve    = "Solve"
)

// Model is a single-use PageRank solver. It owns its transition matrix and
// rank vector exclusively; a Model is not safe for concurrent use.
type Model struct {
	opts  options
	state State

	index  []core.VertexID // matrix position → vertex
	pos    map[core.VertexID]int
	outdeg []int // cached once per vertex at Build
	edges  int

	dangling  int  // vertices with out-degree 0
	corrected bool // CorrectDangling ran

	m      *matrix.Dense
	result *Result
}

// NewModel returns an Unbuilt model.
func NewModel(opts ...Option) *Model {
	return &Model{opts: gatherOptions(opts...)}
}

// State returns the current lifecycle state.
func (md *Model) State() State { return md.state }

// Size returns the number of vertices, 0 before Build.
func (md *Model) Size() int { return len(md.index) }

// Index returns a copy of the position → vertex mapping.
func (md *Model) Index() []core.VertexID {
	out := make([]core.VertexID, len(md.index))
	copy(out, md.index)

	return out
}

// Dangling returns the number of vertices with out-degree 0.
func (md *Model) Dangling() int { return md.dangling }

// require returns nil iff the model sits in one of allowed.
func (md *Model) require(op string, allowed ...State) error {
	if md.state == Solved {
		return rankErrorf(op, ErrSolved)
	}
	for _, s := range allowed {
		if md.state == s {
			return nil
		}
	}

	return rankErrorf(op, fmt.Errorf("in state %s: %w", md.state, ErrBadStage))
}

// Build enumerates g into the index mapping and fills the transition matrix:
// M[r][c] = 1/outdeg(c) iff c → r, 0 otherwise.
//
// Implementation:
//   - Stage 1: Validate state and source; map Vertices() to positions 0..n-1.
//   - Stage 2: Cache OutDegree once per vertex.
//   - Stage 3: For every source column, probe HasEdge against every target row.
//     The number of hits must equal the cached out-degree; a surplus degree
//     means an edge leaves the vertex set.
//
// Errors:
//   - ErrNilGraph, ErrEmptyGraph, ErrDuplicateVertex, ErrUnknownVertex,
//     ErrBadStage/ErrSolved.
//
// Complexity:
//   - Time O(n²) HasEdge probes, Space O(n²).
func (md *Model) Build(g Source) error {
	if err := md.require(opBuild, Unbuilt); err != nil {
		return err
	}
	if isNilSource(g) {
		return rankErrorf(opBuild, ErrNilGraph)
	}

	// Stage 1: index mapping.
	ids := g.Vertices()
	n := len(ids)
	if n == 0 {
		return rankErrorf(opBuild, ErrEmptyGraph)
	}
	pos := make(map[core.VertexID]int, n)
	var i int
	var id core.VertexID
	for i, id = range ids {
		if _, dup := pos[id]; dup {
			return rankErrorf(opBuild, fmt.Errorf("vertex %d: %w", id, ErrDuplicateVertex))
		}
		pos[id] = i
	}

	// Stage 2: cached out-degrees.
	outdeg := make([]int, n)
	var err error
	for i, id = range ids {
		if outdeg[i], err = g.OutDegree(id); err != nil {
			return rankErrorf(opBuild, fmt.Errorf("OutDegree(%d): %v: %w", id, err, ErrUnknownVertex))
		}
	}

	// Stage 3: fill columns.
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return rankErrorf(opBuild, err)
	}
	var (
		r, c, hits, edges, dangling int
		w                           float64
		src                         core.VertexID
	)
	for c, src = range ids {
		if outdeg[c] == 0 {
			dangling++
			continue
		}
		w = 1 / float64(outdeg[c])
		hits = 0
		for r = 0; r < n; r++ {
			if !g.HasEdge(src, ids[r]) {
				continue
			}
			if err = m.Set(r, c, w); err != nil {
				return rankErrorf(opBuild, err)
			}
			hits++
		}
		if hits != outdeg[c] {
			return rankErrorf(opBuild, fmt.Errorf("vertex %d: out-degree %d but %d successors in vertex set: %w",
				src, outdeg[c], hits, ErrUnknownVertex))
		}
		edges += hits
	}

	md.index, md.pos, md.outdeg = ids, pos, outdeg
	md.edges, md.dangling = edges, dangling
	md.m = m
	md.state = TransitionBuilt

	md.opts.log.Debug("transition built",
		"operation", opBuild,
		"vertices", n,
		"edges", edges,
		"dangling", dangling,
	)

	return nil
}

// CorrectDangling overwrites every all-zero column with 1/n, so a surfer on
// a sink jumps uniformly. Legal only right after Build.
//
// Complexity: Time O(n²), Space O(1).
func (md *Model) CorrectDangling() error {
	if err := md.require(opDangling, TransitionBuilt); err != nil {
		return err
	}

	n := len(md.index)
	fill := 1 / float64(n)
	var (
		c, fixed int
		zero     bool
		err      error
	)
	for c = 0; c < n; c++ {
		if zero, err = md.m.IsZeroColumn(c); err != nil {
			return rankErrorf(opDangling, err)
		}
		if !zero {
			continue
		}
		if err = md.m.FillColumn(c, fill); err != nil {
			return rankErrorf(opDangling, err)
		}
		fixed++
	}

	md.corrected = true
	md.state = DanglingCorrected
	md.opts.log.Debug("dangling columns corrected", "operation", opDangling, "columns", fixed)

	return nil
}

// MixDamping replaces M with (1-d)·M + d·J/n. d is the random-jump
// probability; 1-d is the probability of following a link.
//
// Errors:
//   - ErrBadDamping if d is NaN or outside [0,1].
//   - ErrBadStage/ErrSolved if called before Build, twice, or after Solve.
//
// Complexity: Time O(n²), Space O(n²) for the jump matrix.
func (md *Model) MixDamping(d float64) error {
	if err := md.require(opDamping, TransitionBuilt, DanglingCorrected); err != nil {
		return err
	}
	if math.IsNaN(d) || d < 0 || d > 1 {
		return rankErrorf(opDamping, fmt.Errorf("d=%v: %w", d, ErrBadDamping))
	}

	n := len(md.index)
	jump, err := matrix.NewFilled(n, n, d/float64(n))
	if err != nil {
		return rankErrorf(opDamping, err)
	}
	if err = md.m.ScaleInPlace(1 - d); err != nil {
		return rankErrorf(opDamping, err)
	}
	if err = md.m.AddInPlace(jump); err != nil {
		return rankErrorf(opDamping, err)
	}

	md.state = DampingMixed
	md.opts.log.Debug("damping mixed", "operation", opDamping, "damping", d)

	return nil
}

// Solve runs the power method from the uniform vector and freezes the result.
//
// A single-vertex graph short-circuits to [1.0]: the only distribution on
// one vertex, whatever the correction settings did to its 1×1 matrix.
//
// Non-convergence is not an error: the returned Result has Converged=false
// and a warning is logged.
//
// Errors:
//   - ErrBadStage before Build, ErrSolved after a previous Solve.
//   - matrix.ErrBadIterations / matrix.ErrNaNInf for an invalid budget.
func (md *Model) Solve(epsilon float64, maxIterations int) (*Result, error) {
	if err := md.require(opSolve, TransitionBuilt, DanglingCorrected, DampingMixed); err != nil {
		return nil, err
	}
	if err := matrix.ValidateIterationParams(epsilon, maxIterations); err != nil {
		return nil, rankErrorf(opSolve, err)
	}

	log := md.opts.log.With("operation", opSolve)
	n := len(md.index)
	if md.dangling > 0 && !md.corrected {
		log.Warn("dangling correction disabled; probability mass will leak",
			"dangling", md.dangling,
			"vertices", n,
		)
	}

	start := md.opts.now()
	var pr matrix.PowerResult
	if n == 1 {
		pr = matrix.PowerResult{Vector: []float64{1}, Converged: true}
	} else {
		var err error
		pr, err = matrix.PowerIterate(md.m, uniform(n), epsilon, maxIterations,
			matrix.WithObserver(func(iter int, delta float64) {
				log.Debug("iteration", "iter", iter, "delta", delta)
			}))
		if err != nil {
			return nil, rankErrorf(opSolve, err)
		}
	}
	elapsed := md.opts.now().Sub(start)

	md.result = &Result{
		Scores:        pr.Vector,
		Vertices:      md.Index(),
		Iterations:    pr.Iterations,
		Delta:         pr.Delta,
		Converged:     pr.Converged,
		Epsilon:       epsilon,
		MaxIterations: maxIterations,
		pos:           md.pos,
	}
	md.state = Solved

	if pr.Converged {
		log.Info("solve converged", "vertices", n, "iterations", pr.Iterations, "delta", pr.Delta)
	} else {
		log.Warn("solve did not converge",
			"vertices", n,
			"iterations", pr.Iterations,
			"delta", pr.Delta,
			"epsilon", epsilon,
		)
	}
	if md.opts.rec != nil {
		md.opts.rec.ObserveSolve(SolveStats{
			Vertices:   n,
			Edges:      md.edges,
			Dangling:   md.dangling,
			Iterations: pr.Iterations,
			Delta:      pr.Delta,
			Converged:  pr.Converged,
			Duration:   elapsed,
		})
	}

	return md.result, nil
}

// Result returns the frozen result, or nil before Solve.
func (md *Model) Result() *Result { return md.result }

// Transition returns a copy of the current transition matrix.
// Errors: ErrBadStage before Build.
func (md *Model) Transition() (*matrix.Dense, error) {
	if md.m == nil {
		return nil, rankErrorf("Transition", fmt.Errorf("in state %s: %w", md.state, ErrBadStage))
	}

	return md.m.Clone().(*matrix.Dense), nil
}

// uniform returns a fresh length-n vector filled with 1/n.
func uniform(n int) []float64 {
	v := make([]float64, n)
	w := 1 / float64(n)
	for i := range v {
		v[i] = w
	}

	return v
}
