// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvrank/core"
)

// Write emits g as tab-separated "from\tto" lines in ascending edge order.
//
// Isolated vertices have no edge line; Write lists them in leading
// "# isolated: <id>" comments, which Read skips.
func Write(w io.Writer, g *core.Graph) error {
	edges := g.Edges()
	touched := make(map[core.VertexID]struct{}, 2*len(edges))
	for _, e := range edges {
		touched[e.From] = struct{}{}
		touched[e.To] = struct{}{}
	}

	bw := bufio.NewWriter(w)
	var buf []byte
	for _, v := range g.Vertices() {
		if _, ok := touched[v]; ok {
			continue
		}
		buf = append(buf[:0], "# isolated: "...)
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}

	for _, e := range edges {
		buf = strconv.AppendInt(buf[:0], int64(e.From), 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(e.To), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}
