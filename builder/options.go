// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Option constructors validate and panic on meaningless input; constructors
// themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvrank/core"
)

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn  func(int) core.VertexID // index → vertex ID
	rng   *rand.Rand              // nil means no randomness
	loops bool                    // RandomSparse may draw i→i
}

// identityID maps index i to VertexID(i).
func identityID(i int) core.VertexID { return core.VertexID(i) }

// newBuilderConfig applies opts in order over deterministic defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: identityID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the index → vertex ID mapping. Panics on nil.
func WithIDScheme(fn func(int) core.VertexID) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithFirstID numbers vertices base, base+1, ... instead of 0, 1, ...
func WithFirstID(base core.VertexID) BuilderOption {
	return func(c *builderConfig) {
		c.idFn = func(i int) core.VertexID { return base + core.VertexID(i) }
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a freshly seeded RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSelfLoops lets RandomSparse trial the diagonal pairs i→i. The target
// graph must accept loops (see core.Graph.Looped).
func WithSelfLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}
