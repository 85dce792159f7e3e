// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownShape indicates a shape name ParseShape does not recognize.
var ErrUnknownShape = errors.New("builder: unknown shape")

// ErrConstructFailed indicates BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
