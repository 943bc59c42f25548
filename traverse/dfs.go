package traverse

import "github.com/katalvlaran/lvlviz/step"

// dfsFrame is one pending entry on the explicit depth-first stack.
type dfsFrame struct {
	id     string
	parent string
}

// DFS runs a stepwise depth-first traversal from start.
//
// The recursion is laid out on an explicit stack that preserves the
// recursive visit order: neighbors push in reverse insertion order, so
// the first neighbor is entered first. The visited check happens at
// entry (pop) time and the traversal order records entry order. The
// run's token is checked at every pop — the same cancellation
// granularity a recursive version would get from a check at call entry
// and before each recursion.
//
// Each entered vertex is one published, paced step; the arc it was
// entered through lights up with it.
//
// Returns step.ErrCanceled if the run's token cancels mid-flight.
// Complexity: O(V+E) steps, O(V) stack space.
func DFS(b *Board, start string, opts ...Option) (*Result, error) {
	r, err := newRunner(b, start, opts)
	if err != nil {
		return nil, err
	}

	parent := make(map[string]string, b.VertexCount())
	stack := []dfsFrame{{id: start}}

	for len(stack) > 0 {
		if r.tok.Canceled() {
			return nil, step.ErrCanceled
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Entry check: a vertex reached along several arcs enters once.
		if b.IsVisited(f.id) {
			continue
		}

		b.SetCurrent(f.id)
		b.MarkVisited(f.id)
		b.AppendOrder(f.id)
		if f.parent != "" {
			parent[f.id] = f.parent
			b.HighlightEdge(f.parent, f.id)
		}
		if err = r.publishStep(); err != nil {
			return nil, err
		}
		r.settleEdges()

		// Reverse push keeps the first-listed neighbor on top.
		nbrs := b.Neighbors(f.id)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !b.IsVisited(nbrs[i]) {
				stack = append(stack, dfsFrame{id: nbrs[i], parent: f.id})
			}
		}
	}

	r.finish()
	return r.result(parent, false), nil
}
