// SPDX-License-Identifier: MIT

package rank

import (
	"io"
	"log/slog"
	"time"
)

// SolveStats summarizes one finished solve for a Recorder.
type SolveStats struct {
	Vertices   int
	Edges      int
	Dangling   int
	Iterations int
	Delta      float64
	Converged  bool
	Duration   time.Duration
}

// Recorder receives solve summaries; metrics.Registry implements it.
type Recorder interface {
	ObserveSolve(SolveStats)
}

// Option configures a Model.
type Option func(*options)

type options struct {
	log *slog.Logger
	rec Recorder
	now func() time.Time
}

// WithLogger routes model diagnostics to l. A nil l keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithRecorder reports every Solve to r.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.rec = r }
}

// withClock overrides time.Now; tests use it to pin durations.
func withClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = o.log.With("component", "rank")

	return o
}
