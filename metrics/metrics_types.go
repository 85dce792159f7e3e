// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for ranking solves.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all solver metrics on a private Prometheus registry.
type Registry struct {
	SolvesTotal      *prometheus.CounterVec
	SolveIterations  prometheus.Histogram
	SolveDuration    prometheus.Histogram
	SolveLastDelta   prometheus.Gauge
	GraphVertices    prometheus.Gauge
	GraphEdges       prometheus.Gauge
	DanglingVertices prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initSolveMetrics()
	r.initGraphMetrics()

	return r
}

// Gatherer returns the underlying registry for exposition.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
