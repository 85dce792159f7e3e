// SPDX-License-Identifier: MIT

// Package rank computes PageRank scores for a directed graph by dense power
// iteration over a column-stochastic transition matrix.
//
// A Model walks a fixed lifecycle:
//
//	Unbuilt → TransitionBuilt → [DanglingCorrected] → [DampingMixed] → Solved
//
//	Build           fills M[r][c] = 1/outdeg(c) for every edge c → r.
//	CorrectDangling replaces every all-zero column with 1/n.
//	MixDamping      replaces M with (1-d)·M + d·J/n, J the all-ones matrix.
//	Solve           iterates v ← M·v from the uniform vector.
//
// Optional stages may be skipped but never reordered; calls made out of
// order return ErrBadStage and every mutator returns ErrSolved once the model
// is solved. Run drives the whole sequence from a Config whose Stages bitmask
// selects the optional steps.
//
// Dangling vertices (out-degree 0) leave a zero column when correction is
// disabled. Each iteration then leaks probability mass and the final vector
// no longer sums to 1. This is an explicit opt-out: the model logs a warning
// and carries on.
//
// Non-convergence is informational. Solve returns the last computed vector
// with Result.Converged == false and Result.Err() reporting
// ErrNonConvergence.
//
// Vertex indices follow the order of Source.Vertices(). core.Graph returns
// ascending IDs, so results are reproducible across runs.
package rank
