package traverse

import (
	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/step"
)

// Dijkstra runs a stepwise shortest-path traversal from start.
//
// Weights must be nonnegative: the whole arc list is scanned up front
// and ErrNegativeWeight refuses the run before any step executes.
//
// Each iteration selects the unvisited vertex with the smallest finite
// distance by scanning vertices in insertion order — on ties the first
// encountered wins, which keeps replays stable without a heap's
// arbitrary ordering. The traversal order is the selection order. When
// no finite unvisited vertex remains the run ends early; unreachable
// vertices keep core.Unreached.
//
// Step shape: the selection is one published, paced step (the arc from
// its parent lights up); every outgoing arc probe is another, relaxing
// the neighbor when it improves.
//
// Returns step.ErrCanceled if the run's token cancels mid-flight.
// Complexity: O(V²+E) steps, O(V) auxiliary space.
func Dijkstra(b *Board, start string, opts ...Option) (*Result, error) {
	r, err := newRunner(b, start, opts)
	if err != nil {
		return nil, err
	}
	for _, e := range b.Edges() {
		if e.Weight < 0 {
			return nil, ErrNegativeWeight
		}
	}

	parent := make(map[string]string, b.VertexCount())

	// Seeding the source distance is the run's first published step.
	b.SetDist(start, 0)
	b.MarkInQueue(start)
	if err = r.publishStep(); err != nil {
		return nil, err
	}

	vertexOrder := b.VertexOrder()
	for {
		if r.tok.Canceled() {
			return nil, step.ErrCanceled
		}

		// Linear scan in insertion order: first minimum wins ties.
		cur := ""
		best := core.Unreached
		for _, id := range vertexOrder {
			if b.IsVisited(id) {
				continue
			}
			if d := b.DistOf(id); d < best {
				best = d
				cur = id
			}
		}
		if cur == "" {
			// Nothing finite left: the reachable component is settled.
			break
		}

		b.SetCurrent(cur)
		b.MarkVisited(cur)
		b.AppendOrder(cur)
		if p, ok := parent[cur]; ok {
			b.HighlightEdge(p, cur)
		}
		if err = r.publishStep(); err != nil {
			return nil, err
		}
		r.settleEdges()

		for _, nbr := range b.Neighbors(cur) {
			b.HighlightEdge(cur, nbr)
			if !b.IsVisited(nbr) {
				cand := best + b.WeightOf(cur, nbr)
				// cand < best only on int64 overflow; skip such arcs.
				if cand >= best && cand < b.DistOf(nbr) {
					b.SetDist(nbr, cand)
					b.MarkInQueue(nbr)
					parent[nbr] = cur
				}
			}
			if err = r.publishStep(); err != nil {
				return nil, err
			}
			r.settleEdges()
		}
	}

	r.finish()
	return r.result(parent, true), nil
}
