// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/katalvlaran/lvrank/rank"
)

// Format selects the rendering.
type Format string

// Supported formats.
const (
	Text Format = "text"
	YAML Format = "yaml"
)

// RankHeader precedes a rank-sorted text listing.
const RankHeader = "Results sorted in decreasing order of rank or importance"

var (
	// ErrUnknownFormat indicates a Format other than Text or YAML.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrNilResult indicates Write was handed a nil result.
	ErrNilResult = errors.New("report: nil result")
)

// ParseFormat maps "text" or "yaml" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case Text, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Reporter renders results. The zero value writes rank-sorted text without
// a header.
type Reporter struct {
	Format Format
	Order  rank.Order
	Header bool // text only; printed for ByRank
}

// Write renders res to w.
func (rp Reporter) Write(w io.Writer, res *rank.Result) error {
	if res == nil {
		return ErrNilResult
	}

	switch rp.Format {
	case Text, "":
		return rp.writeText(w, res)
	case YAML:
		return rp.writeYAML(w, res)
	default:
		return fmt.Errorf("%q: %w", rp.Format, ErrUnknownFormat)
	}
}

// Percent formats a probability as a 4-decimal percentage, e.g. "12.3456".
func Percent(score float64) string {
	return fmt.Sprintf("%.4f", 100*score)
}

func (rp Reporter) writeText(w io.Writer, res *rank.Result) error {
	var b strings.Builder
	if rp.Header && rp.Order == rank.ByRank {
		b.WriteString(RankHeader)
		b.WriteByte('\n')
	}
	for _, r := range res.Ranked(rp.Order) {
		fmt.Fprintf(&b, "%d = %s%%\n", r.Vertex, Percent(r.Score))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write text: %w", err)
	}

	return nil
}

// yamlDoc is the YAML document layout.
type yamlDoc struct {
	Order      string     `yaml:"order"`
	Converged  bool       `yaml:"converged"`
	Iterations int        `yaml:"iterations"`
	Delta      float64    `yaml:"delta"`
	Ranks      []yamlRank `yaml:"ranks"`
}

type yamlRank struct {
	Vertex  int64   `yaml:"vertex"`
	Score   float64 `yaml:"score"`
	Percent string  `yaml:"percent"`
}

func (rp Reporter) writeYAML(w io.Writer, res *rank.Result) error {
	ranked := res.Ranked(rp.Order)
	doc := yamlDoc{
		Order:      rp.Order.String(),
		Converged:  res.Converged,
		Iterations: res.Iterations,
		Delta:      res.Delta,
		Ranks:      make([]yamlRank, len(ranked)),
	}
	for i, r := range ranked {
		doc.Ranks[i] = yamlRank{Vertex: int64(r.Vertex), Score: r.Score, Percent: Percent(r.Score)}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: write yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: write yaml: %w", err)
	}

	return nil
}

// WriteMatrix prints m row by row with four decimals per cell, for
// inspecting a transition matrix.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	var (
		b    strings.Builder
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("report: %w", err)
			}
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.4f", v)
		}
		b.WriteByte('\n')
	}
	if _, err = io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write matrix: %w", err)
	}

	return nil
}
