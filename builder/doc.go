// SPDX-License-Identifier: MIT

// Package builder generates deterministic directed topologies on
// core.Graph. It backs the "lvrank generate" command and the rank fixtures.
//
// A Constructor mutates a graph using the resolved builder configuration;
// BuildGraph creates the graph and applies constructors in order:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.Cycle(5),
//		builder.RandomSparse(5, 0.3),
//	)
//
// Vertex IDs come from an ID scheme (index → core.VertexID). The default
// scheme is the identity, so vertex i is VertexID(i). Constructors that share
// indices also share vertices, which makes composition predictable.
//
// Determinism: identical options, seed and constructor order produce an
// identical graph.
//
// Constructors never panic; they return the sentinels in errors.go wrapped
// with the constructor name. Option constructors panic on nil arguments.
package builder
