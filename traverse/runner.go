package traverse

import (
	"github.com/katalvlaran/lvlviz/step"
)

// runner bundles the board with the run's pacing and cancellation.
type runner struct {
	b     *Board
	pacer *step.Pacer
	tok   *step.Token
}

// newRunner validates the board and start vertex, folds the options and
// assembles the run. Every precondition fails here, before any step.
func newRunner(b *Board, start string, opts []Option) (*runner, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	if b.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if !b.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	pacer, err := step.NewPacer(o.Speed, step.WithTimerConstructor(o.Timer))
	if err != nil {
		return nil, err
	}
	return &runner{b: b, pacer: pacer, tok: o.Token}, nil
}

// pause issues the configured delay, resolving early on cancellation.
func (r *runner) pause() error {
	return r.pacer.Wait(r.tok)
}

// publishStep publishes the board and waits: the tail of every step that
// marked or mutated something.
func (r *runner) publishStep() error {
	r.b.Publish()
	return r.pause()
}

// settleEdges closes an edge step: highlights drop and the board is
// published without a wait.
func (r *runner) settleEdges() {
	r.b.ClearHighlights()
	r.b.Publish()
}

// finish publishes the terminal frame: every transient mark drops while
// visited flags, distances and the traversal order remain visible.
func (r *runner) finish() {
	r.b.ClearTransient()
	r.b.Publish()
}

// result assembles the common Result fields from the board.
func (r *runner) result(parent map[string]string, withDist bool) *Result {
	res := &Result{
		Order:  r.b.Order(),
		Parent: parent,
	}
	if withDist {
		res.Dist = make(map[string]int64, r.b.VertexCount())
		for _, id := range r.b.VertexOrder() {
			res.Dist[id] = r.b.DistOf(id)
		}
	}
	return res
}
