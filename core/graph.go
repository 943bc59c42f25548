// Package core: Graph mutation and query methods.
//
// All operations preserve the two insertion orders declared in types.go.
// Mutators take the write lock, queries the read lock; query results are
// copies, so callers may retain them across further mutation.

package core

// AddVertex inserts a vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty.
// Adding an existing vertex is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
	return nil
}

// addVertexLocked registers id in order/index/adjacency. Caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.index[id]; exists {
		return
	}
	g.index[id] = struct{}{}
	g.order = append(g.order, id)
	g.adj[id] = nil
	g.weight[id] = make(map[string]int64)
}

// AddEdge creates (or re-weights) the arc from→to.
//
// Both endpoints are added implicitly when missing. On an unweighted graph
// the weight argument must be 0 or 1 and DefaultWeight is stored. Adding an
// arc that already exists updates its weight in place without disturbing
// the neighbor order. Undirected graphs mirror the arc both ways.
//
// Returns ErrEmptyVertexID, ErrBadWeight or ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	// 1) Validate endpoints.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// 2) Self-loops have no place on a rendered canvas.
	if from == to {
		return ErrLoopNotAllowed
	}
	// 3) Weight constraint: unweighted graphs accept only the neutral 0/1.
	if !g.weighted {
		if weight != 0 && weight != DefaultWeight {
			return ErrBadWeight
		}
		weight = DefaultWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 4) Endpoints exist from here on.
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 5) Store the arc; mirror for undirected graphs.
	g.setArcLocked(from, to, weight)
	if !g.directed {
		g.setArcLocked(to, from, weight)
	}
	return nil
}

// setArcLocked writes one directed arc, appending to the neighbor order
// only on first sight. Caller holds mu.
func (g *Graph) setArcLocked(from, to string, weight int64) {
	if _, seen := g.weight[from][to]; !seen {
		g.adj[from] = append(g.adj[from], to)
	}
	g.weight[from][to] = weight
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.index[id]
	return exists
}

// HasEdge reports whether the arc from→to exists.
// On undirected graphs the check is symmetric.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.weight[from][to]
	return exists
}

// Weight returns the weight of the arc from→to and whether it exists,
// mirroring map access. Missing endpoints report (0, false).
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.weight[from][to]
	return w, ok
}

// Vertices returns all vertex IDs in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Neighbors returns the IDs adjacent to id, in the order their arcs were
// first added. The slice is a copy. Unknown vertices yield nil.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs := g.adj[id]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)
	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}

// EdgeCount returns the number of stored arcs. Undirected graphs count
// each edge twice, once per direction.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}
	return n
}

// Edges materializes every arc in deterministic order: vertices in
// insertion order, each vertex's arcs in neighbor order. All flags clear.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, 8)
	for _, from := range g.order {
		for _, to := range g.adj[from] {
			out = append(out, Edge{From: from, To: to, Weight: g.weight[from][to]})
		}
	}
	return out
}

// Clone returns a deep copy sharing no state with the receiver.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed: g.directed,
		weighted: g.weighted,
		order:    make([]string, len(g.order)),
		index:    make(map[string]struct{}, len(g.index)),
		adj:      make(map[string][]string, len(g.adj)),
		weight:   make(map[string]map[string]int64, len(g.weight)),
	}
	copy(c.order, g.order)
	for id := range g.index {
		c.index[id] = struct{}{}
	}
	for id, nbrs := range g.adj {
		if nbrs == nil {
			c.adj[id] = nil
			continue
		}
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		c.adj[id] = cp
	}
	for from, row := range g.weight {
		cr := make(map[string]int64, len(row))
		for to, w := range row {
			cr[to] = w
		}
		c.weight[from] = cr
	}
	return c
}
