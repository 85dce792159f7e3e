// Package lvrank ranks the vertices of a directed graph with PageRank,
// solved by dense power iteration.
//
// 🚀 What is lvrank?
//
//	A small, deterministic ranking toolkit that brings together:
//		• Ingestion: whitespace/tab separated edge lists, plain or gzip
//		• Core graph: thread-safe, directed, set-valued, int64 vertex IDs
//		• Dense linear algebra: MatVec, in-place scale/add, power iteration
//		• Random-surfer model: dangling correction, damping, staged solve
//		• Reporting: "3 = 12.3456%" listings or YAML, Prometheus metrics
//
// ✨ Why choose lvrank?
//
//   - Reproducible - vertices are indexed in ascending ID order
//   - Explicit - every stage is opt-in/opt-out and ordering is enforced
//   - Honest - non-convergence and probability leaks are reported, not hidden
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       - Graph type & thread-safe primitives
//	edgelist/   - edge-list reader and writer (Read, Load, Write)
//	builder/    - deterministic synthetic topologies
//	matrix/     - Dense matrix, MatVec, PowerIterate
//	rank/       - transition model, stage pipeline, ranked results
//	report/     - text & YAML renderers
//	metrics/    - Prometheus collectors
//	config/     - viper-backed settings
//	converters/ - gonum/graph adapters
//	cmd/lvrank/ - command-line entry point
//
// Quick example:
//
//	    1 ──► 2
//	    ▲     │
//	    └──── 3
//
// is the 3-cycle 1→2→3→1; every vertex scores exactly 1/3.
//
//	go install github.com/katalvlaran/lvrank/cmd/lvrank@latest
package lvrank
