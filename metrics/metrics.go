// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvrank/rank"
)

var _ rank.Recorder = (*Registry)(nil)

// ObserveSolve records one finished solve.
func (r *Registry) ObserveSolve(s rank.SolveStats) {
	r.SolvesTotal.WithLabelValues(strconv.FormatBool(s.Converged)).Inc()
	r.SolveIterations.Observe(float64(s.Iterations))
	r.SolveDuration.Observe(s.Duration.Seconds())
	r.SolveLastDelta.Set(s.Delta)
	r.GraphVertices.Set(float64(s.Vertices))
	r.GraphEdges.Set(float64(s.Edges))
	r.DanglingVertices.Set(float64(s.Dangling))
}

// WriteTextfile writes every metric in the text exposition format to path,
// atomically, for the node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
