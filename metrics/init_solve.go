// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSolveMetrics() {
	r.SolvesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvrank_solves_total",
			Help: "Total number of power-iteration solves",
		},
		[]string{"converged"}, // true, false
	)

	r.SolveIterations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvrank_solve_iterations",
			Help:    "Power iterations performed per solve",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1 .. 2048
		},
	)

	r.SolveDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lvrank_solve_duration_seconds",
			Help:    "Wall time of the solve stage in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	r.SolveLastDelta = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lvrank_solve_last_delta",
			Help: "Euclidean distance between the last two iterates of the latest solve",
		},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lvrank_graph_vertices",
			Help: "Vertices in the most recently solved graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lvrank_graph_edges",
			Help: "Distinct edges in the most recently solved graph",
		},
	)

	r.DanglingVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "lvrank_graph_dangling_vertices",
			Help: "Vertices without outgoing edges in the most recently solved graph",
		},
	)
}
