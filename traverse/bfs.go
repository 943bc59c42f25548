package traverse

import "github.com/katalvlaran/lvlviz/step"

// BFS runs a stepwise breadth-first traversal from start.
//
// Vertices are marked visited at dequeue time and the traversal order is
// the dequeue order. Discovery never enqueues twice: a vertex already
// queued or visited is probed (its arc lights up as a published step)
// but not re-queued. Neighbors are examined in their insertion order.
//
// Step shape per dequeued vertex: the visit itself is one published,
// paced step; each outgoing arc probe is another, settled by a publish
// that drops the highlight.
//
// Returns step.ErrCanceled if the run's token cancels mid-flight.
// Complexity: O(V+E) steps, O(V) auxiliary space.
func BFS(b *Board, start string, opts ...Option) (*Result, error) {
	r, err := newRunner(b, start, opts)
	if err != nil {
		return nil, err
	}

	parent := make(map[string]string, b.VertexCount())

	// Seeding the queue is the run's first published step.
	queue := []string{start}
	b.MarkInQueue(start)
	if err = r.publishStep(); err != nil {
		return nil, err
	}

	for len(queue) > 0 {
		if r.tok.Canceled() {
			return nil, step.ErrCanceled
		}
		id := queue[0]
		queue = queue[1:]

		// Visit step: settle the vertex the moment it leaves the queue.
		b.SetCurrent(id)
		b.MarkVisited(id)
		b.AppendOrder(id)
		if p, ok := parent[id]; ok {
			b.HighlightEdge(p, id)
		}
		if err = r.publishStep(); err != nil {
			return nil, err
		}
		r.settleEdges()

		for _, nbr := range b.Neighbors(id) {
			b.HighlightEdge(id, nbr)
			if !b.IsVisited(nbr) && !b.IsInQueue(nbr) {
				b.MarkInQueue(nbr)
				parent[nbr] = id
				queue = append(queue, nbr)
			}
			if err = r.publishStep(); err != nil {
				return nil, err
			}
			r.settleEdges()
		}
	}

	r.finish()
	return r.result(parent, false), nil
}
