// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// api.go - the BuildGraph orchestrator, the Constructor type and shape names.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...).
//   - Factories live in impl_*.go; each emits vertices and edges in a
//     documented ascending order.
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvrank/core"
)

// Constructor applies a deterministic mutation to g using cfg.
// Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is wrapped as "BuildGraph: %w" and
// returned; the partially built graph is discarded.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Shape names a single-constructor topology for command-line use.
type Shape string

// Supported shapes.
const (
	ShapeCycle    Shape = "cycle"
	ShapePath     Shape = "path"
	ShapeStar     Shape = "star"
	ShapeComplete Shape = "complete"
	ShapeRandom   Shape = "random"
)

// Shapes lists the shapes in documentation order.
var Shapes = []Shape{ShapeCycle, ShapePath, ShapeStar, ShapeComplete, ShapeRandom}

// ParseShape resolves a case-insensitive shape name.
func ParseShape(s string) (Shape, error) {
	sh := Shape(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Shapes {
		if sh == known {
			return sh, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Constructor returns the factory for sh on n vertices. p is used by
// ShapeRandom only.
func (sh Shape) Constructor(n int, p float64) (Constructor, error) {
	switch sh {
	case ShapeCycle:
		return Cycle(n), nil
	case ShapePath:
		return Path(n), nil
	case ShapeStar:
		return Star(n), nil
	case ShapeComplete:
		return Complete(n), nil
	case ShapeRandom:
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, string(sh))
	}
}

// addVertices registers indices 0..n-1 through cfg.idFn.
func addVertices(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}

// addEdge inserts idFn(i)→idFn(j) with method context on failure.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
	}

	return nil
}
