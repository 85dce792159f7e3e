// SPDX-License-Identifier: MIT

package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvrank/builder"
	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/edgelist"
)

// generateOpts holds the flags of the generate subcommand.
type generateOpts struct {
	shape   string
	n       int
	p       float64
	seed    int64
	firstID int64
	output  string
}

// newGenerateCmd builds "lvrank generate", which writes a synthetic edge list.
func newGenerateCmd(stdout io.Writer) *cobra.Command {
	var o generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic edge list (cycle, path, star, complete, random)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(o, stdout)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.shape, "shape", string(builder.ShapeRandom), "topology: cycle, path, star, complete, random")
	f.IntVarP(&o.n, "vertices", "n", 10, "number of vertices")
	f.Float64VarP(&o.p, "probability", "p", 0.1, "edge probability for the random shape")
	f.Int64Var(&o.seed, "seed", 1, "RNG seed for the random shape")
	f.Int64Var(&o.firstID, "first-id", 1, "ID of the first vertex")
	f.StringVarP(&o.output, "output", "o", "", "write to this file instead of stdout (.gz compresses)")

	return cmd
}

// generate builds the requested graph and writes it as an edge list.
func generate(o generateOpts, stdout io.Writer) error {
	sh, err := builder.ParseShape(o.shape)
	if err != nil {
		return err
	}
	ctor, err := sh.Constructor(o.n, o.p)
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(o.seed),
		builder.WithFirstID(core.VertexID(o.firstID)),
	}, ctor)
	if err != nil {
		return err
	}

	if o.output == "" {
		return edgelist.Write(stdout, g)
	}

	f, err := os.Create(o.output)
	if err != nil {
		return fmt.Errorf("lvrank: generate: %w", err)
	}
	defer f.Close()

	if !strings.HasSuffix(o.output, ".gz") {
		if err = edgelist.Write(f, g); err != nil {
			return err
		}
		return f.Close()
	}

	zw := gzip.NewWriter(f)
	if err = edgelist.Write(zw, g); err != nil {
		return err
	}
	if err = zw.Close(); err != nil {
		return fmt.Errorf("lvrank: generate: %w", err)
	}

	return f.Close()
}
