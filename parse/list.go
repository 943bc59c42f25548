// SPDX-License-Identifier: MIT

package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlviz/core"
)

// List reads an adjacency-list description into a fresh graph.
//
// Line grammar, blank lines skipped:
//
//	Id: n1, n2(w), n3
//
// Vertices appear in the model in line order, neighbors in listed
// order. The first malformed line aborts with an ErrFormat wrapped
// error naming its 1-based number; nothing is returned then.
// Complexity: O(lines + neighbors).
func List(text string, opts ...Option) (*core.Graph, error) {
	g := core.NewGraph(gatherOptions(opts)...)
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		n := i + 1

		id, rest, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("%w: line %d: missing ':'", ErrFormat, n)
		}
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("%w: line %d: empty vertex id", ErrFormat, n)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, n, err)
		}

		rest = strings.TrimSpace(rest)
		if rest == "" {
			// Isolated vertex line: "Id:" with no neighbors.
			continue
		}
		for _, tok := range strings.Split(rest, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				return nil, fmt.Errorf("%w: line %d: empty neighbor entry", ErrFormat, n)
			}
			nbr, w, err := splitNeighbor(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, n, err)
			}
			if err = g.AddEdge(id, nbr, w); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, n, err)
			}
		}
	}
	return g, nil
}

// splitNeighbor parses one neighbor token, "B" or "B(3)". The weight
// defaults to core.DefaultWeight when no suffix is present.
func splitNeighbor(tok string) (string, int64, error) {
	open := strings.IndexByte(tok, '(')
	if open < 0 {
		if strings.ContainsRune(tok, ')') {
			return "", 0, fmt.Errorf("stray ')' in %q", tok)
		}
		return tok, core.DefaultWeight, nil
	}
	if !strings.HasSuffix(tok, ")") {
		return "", 0, fmt.Errorf("unclosed weight suffix in %q", tok)
	}
	id := strings.TrimSpace(tok[:open])
	if id == "" {
		return "", 0, fmt.Errorf("weight without neighbor in %q", tok)
	}
	w, err := strconv.ParseInt(strings.TrimSpace(tok[open+1:len(tok)-1]), 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad weight in %q", tok)
	}
	return id, w, nil
}
