// SPDX-License-Identifier: MIT

package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlviz/core"
)

// Matrix reads an adjacency-matrix description into a fresh graph.
//
// The first non-blank line is the header naming every vertex; each
// following line is "Label w1 .. wn" in header order. A zero cell is
// the absence of an arc, any other value its weight. Row count, row
// order and cell counts are validated before the cells are applied on
// that row; the first violation aborts with an ErrShape or ErrFormat
// wrapped error and nothing is returned.
// Complexity: O(n²) for n header labels.
func Matrix(text string, opts ...Option) (*core.Graph, error) {
	type numbered struct {
		line string
		n    int
	}
	var rows []numbered
	for i, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			rows = append(rows, numbered{line: line, n: i + 1})
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrFormat)
	}

	header := strings.Fields(rows[0].line)
	g := core.NewGraph(gatherOptions(opts)...)
	seen := make(map[string]struct{}, len(header))
	for _, label := range header {
		if _, dup := seen[label]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate label %q", ErrFormat, rows[0].n, label)
		}
		seen[label] = struct{}{}
		if err := g.AddVertex(label); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, rows[0].n, err)
		}
	}

	body := rows[1:]
	if len(body) != len(header) {
		return nil, fmt.Errorf("%w: %d labels but %d rows", ErrShape, len(header), len(body))
	}
	for r, row := range body {
		fields := strings.Fields(row.line)
		if len(fields) != len(header)+1 {
			return nil, fmt.Errorf("%w: line %d: want %d cells, got %d",
				ErrShape, row.n, len(header), len(fields)-1)
		}
		if fields[0] != header[r] {
			return nil, fmt.Errorf("%w: line %d: row label %q, want %q",
				ErrFormat, row.n, fields[0], header[r])
		}
		for c, cell := range fields[1:] {
			w, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrFormat, row.n, cell)
			}
			if w == 0 {
				continue
			}
			if err = g.AddEdge(header[r], header[c], w); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, row.n, err)
			}
		}
	}
	return g, nil
}
