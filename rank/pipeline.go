// SPDX-License-Identifier: MIT
//
// File: pipeline.go
// Role: Ordered stage list driven by Config.

package rank

import (
	"fmt"
	"strings"
)

// Stage is one pipeline step; Stages combine as a bitmask.
type Stage uint8

// Pipeline stages. Run applies them in this order only.
const (
	StageBuild Stage = 1 << iota
	StageDangling
	StageDamping
	StageSolve
)

// AllStages enables every step.
const AllStages = StageBuild | StageDangling | StageDamping | StageSolve

// pipeline fixes the execution order independent of how a mask was composed.
var pipeline = [...]Stage{StageBuild, StageDangling, StageDamping, StageSolve}

// Has reports whether every bit of s2 is set in s.
func (s Stage) Has(s2 Stage) bool { return s&s2 == s2 }

// String lists the enabled stages in execution order, e.g. "build|solve".
func (s Stage) String() string {
	var parts []string
	for _, st := range pipeline {
		if !s.Has(st) {
			continue
		}
		switch st {
		case StageBuild:
			parts = append(parts, "build")
		case StageDangling:
			parts = append(parts, "dangling")
		case StageDamping:
			parts = append(parts, "damping")
		case StageSolve:
			parts = append(parts, "solve")
		}
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// Config is the explicit parameter set for one solve.
type Config struct {
	Stages        Stage
	Damping       float64
	Epsilon       float64
	MaxIterations int
}

// Default parameters.
const (
	DefaultEpsilon       = 0.0001
	DefaultMaxIterations = 1000
	DefaultDamping       = 0.15
)

// DefaultConfig enables every stage with the default parameters.
func DefaultConfig() Config {
	return Config{
		Stages:        AllStages,
		Damping:       DefaultDamping,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
	}
}

// Run executes the enabled stages of cfg on this model.
// StageBuild and StageSolve are mandatory; a mask missing either returns
// ErrBadStage before any work is done.
func (md *Model) Run(g Source, cfg Config) (*Result, error) {
	if !cfg.Stages.Has(StageBuild | StageSolve) {
		return nil, rankErrorf("Run", fmt.Errorf("stages %s lack build or solve: %w", cfg.Stages, ErrBadStage))
	}
	md.opts.log.Debug("pipeline start", "operation", "Run", "stages", cfg.Stages.String())

	var err error
	for _, st := range pipeline {
		if !cfg.Stages.Has(st) {
			continue
		}
		switch st {
		case StageBuild:
			err = md.Build(g)
		case StageDangling:
			err = md.CorrectDangling()
		case StageDamping:
			err = md.MixDamping(cfg.Damping)
		case StageSolve:
			return md.Solve(cfg.Epsilon, cfg.MaxIterations)
		}
		if err != nil {
			return nil, err
		}
	}

	return nil, rankErrorf("Run", ErrBadStage) // unreachable: StageSolve checked above
}

// Run builds a fresh Model with opts and executes cfg on g.
func Run(g Source, cfg Config, opts ...Option) (*Result, error) {
	return NewModel(opts...).Run(g, cfg)
}
