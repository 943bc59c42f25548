package traverse

import (
	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/step"
)

// edgeKey addresses one directed arc on the board.
type edgeKey struct {
	from, to string
}

// Board owns the render state of one traversal run: node flags, arc
// highlights and the traversal order, all derived from an immutable view
// of the input graph taken at construction time.
//
// A Board belongs to a single run at a time; engines mutate it only from
// the run's goroutine. Later mutation of the source graph does not leak
// into a board already built from it.
type Board struct {
	directed bool

	nodes []core.Node
	idx   map[string]int

	edges []core.Edge
	eidx  map[edgeKey]int

	adj    map[string][]string
	weight map[edgeKey]int64

	order []string
	sink  step.GraphSink
}

// BoardOption adjusts board construction.
type BoardOption func(*Board)

// WithPositions copies layout coordinates onto the board's nodes.
// Unknown IDs are ignored.
func WithPositions(pos map[string]core.Position) BoardOption {
	return func(b *Board) {
		for id, p := range pos {
			if i, ok := b.idx[id]; ok {
				b.nodes[i].X = p.X
				b.nodes[i].Y = p.Y
			}
		}
	}
}

// NewBoard snapshots g into a fresh board publishing to sink.
// A nil sink publishes nowhere. Returns ErrGraphNil for a nil graph.
func NewBoard(g *core.Graph, sink step.GraphSink, opts ...BoardOption) (*Board, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if sink == nil {
		sink = step.NopSink{}
	}

	ids := g.Vertices()
	b := &Board{
		directed: g.Directed(),
		nodes:    make([]core.Node, len(ids)),
		idx:      make(map[string]int, len(ids)),
		adj:      make(map[string][]string, len(ids)),
		weight:   make(map[edgeKey]int64),
		sink:     sink,
	}
	for i, id := range ids {
		b.nodes[i] = core.Node{ID: id, Dist: core.Unreached}
		b.idx[id] = i
		b.adj[id] = g.Neighbors(id)
	}
	b.edges = g.Edges()
	b.eidx = make(map[edgeKey]int, len(b.edges))
	for i, e := range b.edges {
		k := edgeKey{from: e.From, to: e.To}
		b.eidx[k] = i
		b.weight[k] = e.Weight
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// VertexCount returns the number of vertices on the board.
func (b *Board) VertexCount() int { return len(b.nodes) }

// VertexOrder returns vertex IDs in insertion order, as a fresh slice.
func (b *Board) VertexOrder() []string {
	out := make([]string, len(b.nodes))
	for i, n := range b.nodes {
		out[i] = n.ID
	}
	return out
}

// HasVertex reports whether id exists on the board.
func (b *Board) HasVertex(id string) bool {
	_, ok := b.idx[id]
	return ok
}

// Neighbors returns id's neighbors in insertion order. The returned
// slice is the board's own copy; engines iterate it without re-copying.
func (b *Board) Neighbors(id string) []string { return b.adj[id] }

// WeightOf returns the weight of the arc from→to.
func (b *Board) WeightOf(from, to string) int64 {
	return b.weight[edgeKey{from: from, to: to}]
}

// Edges returns the board's arc list. Callers must not mutate it.
func (b *Board) Edges() []core.Edge { return b.edges }

// SetCurrent moves the current marker to id, clearing any previous one.
func (b *Board) SetCurrent(id string) {
	for i := range b.nodes {
		b.nodes[i].Current = false
	}
	if i, ok := b.idx[id]; ok {
		b.nodes[i].Current = true
	}
}

// ClearCurrent drops the current marker.
func (b *Board) ClearCurrent() {
	for i := range b.nodes {
		b.nodes[i].Current = false
	}
}

// MarkVisited flags id as fully processed and drops its queued flag.
func (b *Board) MarkVisited(id string) {
	if i, ok := b.idx[id]; ok {
		b.nodes[i].Visited = true
		b.nodes[i].InQueue = false
	}
}

// IsVisited reports whether id is settled.
func (b *Board) IsVisited(id string) bool {
	i, ok := b.idx[id]
	return ok && b.nodes[i].Visited
}

// MarkInQueue flags id as discovered and awaiting processing.
func (b *Board) MarkInQueue(id string) {
	if i, ok := b.idx[id]; ok {
		b.nodes[i].InQueue = true
	}
}

// IsInQueue reports whether id awaits processing.
func (b *Board) IsInQueue(id string) bool {
	i, ok := b.idx[id]
	return ok && b.nodes[i].InQueue
}

// SetDist updates id's distance label.
func (b *Board) SetDist(id string, d int64) {
	if i, ok := b.idx[id]; ok {
		b.nodes[i].Dist = d
	}
}

// DistOf returns id's current distance label, core.Unreached when the
// vertex is unknown or not yet relaxed.
func (b *Board) DistOf(id string) int64 {
	if i, ok := b.idx[id]; ok {
		return b.nodes[i].Dist
	}
	return core.Unreached
}

// HighlightEdge lights the arc from→to; on undirected boards the mirror
// arc lights with it, so the rendered edge glows as one.
func (b *Board) HighlightEdge(from, to string) {
	if i, ok := b.eidx[edgeKey{from: from, to: to}]; ok {
		b.edges[i].Highlighted = true
	}
	if !b.directed {
		if i, ok := b.eidx[edgeKey{from: to, to: from}]; ok {
			b.edges[i].Highlighted = true
		}
	}
}

// ClearHighlights drops every arc highlight.
func (b *Board) ClearHighlights() {
	for i := range b.edges {
		b.edges[i].Highlighted = false
	}
}

// ClearTransient resets every per-run transient flag: current marker,
// queued flags and arc highlights. Visited flags, distances and the
// traversal order stay, so an idle board still shows the completed run.
func (b *Board) ClearTransient() {
	for i := range b.nodes {
		b.nodes[i].Current = false
		b.nodes[i].InQueue = false
	}
	b.ClearHighlights()
}

// AppendOrder records id as settled, once.
func (b *Board) AppendOrder(id string) {
	for _, v := range b.order {
		if v == id {
			return
		}
	}
	b.order = append(b.order, id)
}

// Order returns the traversal order accumulated so far, as a copy.
func (b *Board) Order() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Snapshot returns a frozen copy of the board.
func (b *Board) Snapshot() core.GraphSnapshot {
	return core.CopyGraphState(b.nodes, b.edges, b.order)
}

// Publish pushes a frozen copy of the board to the sink.
func (b *Board) Publish() {
	b.sink.PublishGraph(core.CopyGraphState(b.nodes, b.edges, b.order))
}
