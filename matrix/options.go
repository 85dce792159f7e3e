// SPDX-License-Identifier: MIT

// Package matrix: numeric policy for Dense construction.
// This file defines:
//   - documented defaults (constants),
//   - Option constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and Apply.
	DefaultValidateNaNInf = true

	// DefaultStochasticTol is the column-sum tolerance used by IsColumnStochastic.
	DefaultStochasticTol = 1e-9
)

const panicTolInvalid = "matrix: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved numeric policy. Fields are unexported; callers
// compose it through Option setters.
type Options struct {
	validateNaNInf bool    // reject NaN/±Inf in Set/Apply
	tol            float64 // stochastic column-sum tolerance
}

// WithValidateNaNInf enables finite-only writes (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-only writes. Use only for controlled
// scratch buffers.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTolerance sets the absolute tolerance used by IsColumnStochastic.
// Panics when tol is negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// gatherOptions applies user-provided setters on top of defaults.
// Setters are applied in order; last-writer-wins.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		tol:            DefaultStochasticTol,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
