// Package core: immutable render snapshots.
//
// A snapshot is a deep copy taken at publish time. Renderers and tests may
// retain snapshots indefinitely; no later engine step can reach into one.

package core

// ArraySnapshot is a frozen copy of a sorting board's element row.
type ArraySnapshot []Element

// CopyElements deep-copies an element row into a fresh snapshot.
func CopyElements(els []Element) ArraySnapshot {
	out := make(ArraySnapshot, len(els))
	copy(out, els)
	return out
}

// Values extracts the raw values of the snapshot, in order.
func (s ArraySnapshot) Values() []int {
	out := make([]int, len(s))
	for i, el := range s {
		out[i] = el.Value
	}
	return out
}

// GraphSnapshot is a frozen copy of a traversal board: node states, arc
// states and the traversal order accumulated so far.
type GraphSnapshot struct {
	// Nodes in vertex insertion order.
	Nodes []Node

	// Edges in deterministic arc order (see Graph.Edges).
	Edges []Edge

	// Order lists vertex IDs in the order the traversal settled them.
	Order []string
}

// CopyGraphState deep-copies board state into a fresh snapshot.
func CopyGraphState(nodes []Node, edges []Edge, order []string) GraphSnapshot {
	s := GraphSnapshot{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(edges)),
		Order: make([]string, len(order)),
	}
	copy(s.Nodes, nodes)
	copy(s.Edges, edges)
	copy(s.Order, order)
	return s
}
