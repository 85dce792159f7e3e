// SPDX-License-Identifier: MIT

package edgelist

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvrank/core"
)

// maxLineBytes bounds a single line; edge lines are tiny, but comment
// banners in exported datasets can be long.
const maxLineBytes = 1 << 20

// Read parses r into a new graph.
//
// Errors:
//   - *ParseError wrapping ErrMalformedLine or ErrBadVertexID.
//   - scanner I/O errors, wrapped.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		lineNo   int
		line     string
		fields   []string
		from, to int64
		err      error
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}

		fields = strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ParseError{Line: lineNo, Text: line, Err: ErrMalformedLine}
		}
		if from, err = parseID(fields[0]); err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		if to, err = parseID(fields[1]); err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		if err = g.AddEdge(core.VertexID(from), core.VertexID(to)); err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read after line %d: %w", lineNo, err)
	}

	return g, nil
}

// parseID converts one field, keeping strconv's detail in the message.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadVertexID, err)
	}

	return id, nil
}

// Load opens path and parses it with Read. Paths ending in ".gz" are
// decompressed on the fly.
func Load(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("edgelist: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	g, err := Read(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %s: %w", path, err)
	}

	return g, nil
}
