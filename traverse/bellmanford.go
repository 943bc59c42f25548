package traverse

import (
	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/step"
)

// BellmanFord runs a stepwise shortest-path traversal from start that
// tolerates negative arc weights.
//
// Up to V-1 relaxation rounds sweep the vertices in insertion order,
// probing every outgoing arc of each vertex whose distance is already
// finite. A round that relaxes nothing ends the run early — the
// distances have converged and no negative cycle is reachable. If all
// V-1 rounds complete with the last one still relaxing, one detection
// sweep follows: any arc that could still improve proves a reachable
// negative cycle, reported through Result.NegativeCycle as a normal
// outcome rather than an error.
//
// The traversal order records each vertex the first time the run
// examines it with a finite distance, so every reached vertex appears
// exactly once. Step shape: the source seeding is
// one published step, then every arc probe is one published, paced step
// whether or not it relaxes.
//
// Returns step.ErrCanceled if the run's token cancels mid-flight.
// Complexity: O(V·E) steps, O(V) auxiliary space.
func BellmanFord(b *Board, start string, opts ...Option) (*Result, error) {
	r, err := newRunner(b, start, opts)
	if err != nil {
		return nil, err
	}

	parent := make(map[string]string, b.VertexCount())

	b.SetDist(start, 0)
	b.MarkInQueue(start)
	if err = r.publishStep(); err != nil {
		return nil, err
	}

	vertexOrder := b.VertexOrder()
	converged := false
	for round := 1; round < len(vertexOrder); round++ {
		if r.tok.Canceled() {
			return nil, step.ErrCanceled
		}
		relaxed := false
		for _, u := range vertexOrder {
			du := b.DistOf(u)
			if du == core.Unreached {
				continue
			}
			b.SetCurrent(u)
			b.MarkVisited(u)
			b.AppendOrder(u)
			for _, v := range b.Neighbors(u) {
				b.HighlightEdge(u, v)
				if cand := du + b.WeightOf(u, v); cand < b.DistOf(v) {
					b.SetDist(v, cand)
					b.MarkInQueue(v)
					parent[v] = u
					relaxed = true
				}
				if err = r.publishStep(); err != nil {
					return nil, err
				}
				r.settleEdges()
			}
		}
		if !relaxed {
			converged = true
			break
		}
	}

	cyclic := false
	if !converged {
		// One more sweep: any remaining improvement proves a cycle.
	detect:
		for _, u := range vertexOrder {
			if r.tok.Canceled() {
				return nil, step.ErrCanceled
			}
			du := b.DistOf(u)
			if du == core.Unreached {
				continue
			}
			b.SetCurrent(u)
			b.MarkVisited(u)
			b.AppendOrder(u)
			for _, v := range b.Neighbors(u) {
				b.HighlightEdge(u, v)
				improves := du+b.WeightOf(u, v) < b.DistOf(v)
				if err = r.publishStep(); err != nil {
					return nil, err
				}
				r.settleEdges()
				if improves {
					cyclic = true
					break detect
				}
			}
		}
	}

	r.finish()
	res := r.result(parent, true)
	res.NegativeCycle = cyclic
	return res, nil
}
