// Package core defines the renderable model shared by every engine:
// array Elements, graph Nodes and Edges, and the insertion-ordered Graph.
//
// The Graph preserves two orders that every engine depends on:
// vertex order (the order AddVertex first saw each ID) and, per vertex,
// neighbor order (the order AddEdge first saw each neighbor). Traversals
// iterate exclusively in these orders, which is what makes re-running the
// same input produce the same step sequence every time.
//
// This file declares the render element types, sentinel errors, Graph
// options, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight - weight other than 0 or 1 on an unweighted graph.
//	ErrLoopNotAllowed - self-loop edges are not representable.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core model operations.
var (
	// ErrEmptyVertexID indicates an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a weight other than 0 or 1 on an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop edge was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Unreached is the distance value of a vertex no weighted traversal has
// relaxed yet. Chosen so that any real distance compares smaller.
const Unreached = int64(math.MaxInt64)

// DefaultWeight is stored for every edge of an unweighted graph, so that
// weighted and unweighted models flow through the same relaxation code.
const DefaultWeight = int64(1)

// Element is one cell of a sortable array as a renderer sees it.
//
// Compared and Swapped are transient: they are set for the duration of a
// single published step and cleared before the step ends. Sorted is
// monotonic within a run; once set it stays set until the next run resets
// the board.
type Element struct {
	// Value is the sortable payload.
	Value int

	// Compared marks the element as one side of the comparison in flight.
	Compared bool

	// Swapped marks the element as mutated during the current step.
	Swapped bool

	// Sorted marks the element as settled in its final position.
	Sorted bool
}

// NewElements wraps raw values into render elements with all flags clear.
func NewElements(values []int) []Element {
	els := make([]Element, len(values))
	for i, v := range values {
		els[i] = Element{Value: v}
	}
	return els
}

// Node is one graph vertex as a renderer sees it.
//
// X and Y are layout hints owned by whatever draws the graph; no engine
// reads or writes them. Current and InQueue are transient step flags,
// Visited is monotonic within a run. Dist stays Unreached until a weighted
// traversal relaxes the vertex (BFS and DFS leave it Unreached).
type Node struct {
	// ID is the unique vertex identifier.
	ID string

	// X, Y position the vertex on a canvas. Layout only.
	X, Y float64

	// Current marks the vertex the engine is processing right now.
	Current bool

	// InQueue marks the vertex as discovered and awaiting processing.
	InQueue bool

	// Visited marks the vertex as fully processed.
	Visited bool

	// Dist is the best known distance from the run's start vertex.
	Dist int64
}

// Edge is one directed arc as a renderer sees it. Undirected graph edges
// appear as two mirrored arcs.
//
// Highlighted is transient: set while the engine examines the arc, cleared
// before the step ends.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the arc. Always DefaultWeight on unweighted graphs.
	Weight int64

	// Highlighted marks the arc under examination in the current step.
	Highlighted bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets edge directedness for the whole graph
// (true = one-way arcs, false = mirrored arcs).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows arbitrary int64 edge weights, negatives included.
// Without it every edge stores DefaultWeight.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the insertion-ordered adjacency model every engine consumes.
//
// order holds vertex IDs in first-seen order; adj holds, per vertex,
// neighbor IDs in first-seen order; weight holds the arc weights. A single
// RWMutex guards all three: the model is built once and then read by a run,
// so contention is not a concern.
type Graph struct {
	mu sync.RWMutex

	directed bool
	weighted bool

	order  []string
	index  map[string]struct{}
	adj    map[string][]string
	weight map[string]map[string]int64
}

// NewGraph constructs an empty Graph. Default: undirected, unweighted.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index:  make(map[string]struct{}),
		adj:    make(map[string][]string),
		weight: make(map[string]map[string]int64),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether edges are one-way arcs.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edges carry caller-supplied weights.
func (g *Graph) Weighted() bool { return g.weighted }
