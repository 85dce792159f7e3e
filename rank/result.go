// SPDX-License-Identifier: MIT

package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvrank/core"
)

// Order selects the ordering of Result.Ranked.
type Order uint8

const (
	// ByRank sorts by descending score; equal scores fall back to ascending ID.
	ByRank Order = iota
	// ByVertex sorts by ascending vertex ID.
	ByVertex
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case ByRank:
		return "rank"
	case ByVertex:
		return "vertex"
	default:
		return fmt.Sprintf("order(%d)", uint8(o))
	}
}

// ParseOrder maps "rank" or "vertex" (case-insensitive) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rank":
		return ByRank, nil
	case "vertex":
		return ByVertex, nil
	default:
		return ByRank, fmt.Errorf("rank: unknown order %q", s)
	}
}

// Ranked is one (vertex, score) pair.
type Ranked struct {
	Vertex core.VertexID
	Score  float64
}

// Result is the frozen outcome of Solve.
//
// Scores[i] is the score of Vertices[i]. Scores sum to 1 when dangling
// correction ran; with correction disabled and sinks present the sum is
// below 1 by the leaked mass.
type Result struct {
	Scores   []float64
	Vertices []core.VertexID

	Iterations int
	Delta      float64
	Converged  bool

	Epsilon       float64
	MaxIterations int

	pos map[core.VertexID]int
}

// Err returns nil when converged and an ErrNonConvergence-wrapping error otherwise.
func (r *Result) Err() error {
	if r.Converged {
		return nil
	}

	return fmt.Errorf("delta %g > epsilon %g after %d iterations: %w",
		r.Delta, r.Epsilon, r.Iterations, ErrNonConvergence)
}

// Score returns the score of id and whether id was ranked.
func (r *Result) Score(id core.VertexID) (float64, bool) {
	i, ok := r.pos[id]
	if !ok {
		return 0, false
	}

	return r.Scores[i], true
}

// Sum returns Σ Scores.
func (r *Result) Sum() float64 {
	var s float64
	for _, v := range r.Scores {
		s += v
	}

	return s
}

// Ranked returns every (vertex, score) pair in the requested order.
// The slice is freshly allocated on each call.
// Complexity: O(n log n).
func (r *Result) Ranked(order Order) []Ranked {
	out := make([]Ranked, len(r.Scores))
	for i, s := range r.Scores {
		out[i] = Ranked{Vertex: r.Vertices[i], Score: s}
	}

	switch order {
	case ByVertex:
		sort.Slice(out, func(i, j int) bool { return out[i].Vertex < out[j].Vertex })
	default:
		sort.Slice(out, func(i, j int) bool {
			if out[i].Score != out[j].Score {
				return out[i].Score > out[j].Score
			}
			return out[i].Vertex < out[j].Vertex
		})
	}

	return out
}
