// Package core provides the renderable model consumed by every stepwise
// engine: array Elements with compare/swap/sorted flags, graph Nodes and
// Edges with visit/queue/highlight flags, and an insertion-ordered Graph.
//
// # Determinism contract
//
// Visualization replays must be reproducible: the same input model must
// yield the same step sequence on every run. The Graph therefore freezes
// two orders at build time and never re-sorts them:
//
//   - Vertex order: the order AddVertex (or an implicit AddEdge endpoint)
//     first saw each ID. Vertices() and Edges() iterate in it.
//   - Neighbor order: per vertex, the order AddEdge first saw each
//     neighbor. Neighbors() iterates in it.
//
// No exported query ranges over a Go map.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    One-way arcs vs. mirrored arcs. Undirected graphs store each edge
//	    twice, once per direction, so traversals need no special casing.
//
//	– WithWeighted()
//	    Permits arbitrary int64 weights, negatives included. Without it
//	    every arc stores DefaultWeight and AddEdge rejects weights other
//	    than 0 or 1 with ErrBadWeight.
//
// Core Methods:
//
//	AddVertex(id string) error              // O(1), idempotent
//	AddEdge(from,to string, w int64) error  // O(1), re-add updates weight
//	HasVertex(id string) bool               // O(1)
//	HasEdge(from,to string) bool            // O(1)
//	Weight(from,to string) (int64, bool)    // O(1)
//	Vertices() []string                     // O(V), insertion order
//	Neighbors(id string) []string           // O(deg), insertion order
//	Edges() []Edge                          // O(V+E), deterministic order
//	VertexCount() int                       // O(1)
//	EdgeCount() int                         // O(V)
//	Clone() *Graph                          // O(V+E) deep copy
//
// Snapshots:
//
// ArraySnapshot and GraphSnapshot are deep copies produced at publish
// time. Renderers retain them freely; engines never mutate a snapshot
// after publishing it.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex
//	ErrBadWeight      – weight other than 0/1 on unweighted graph
//	ErrLoopNotAllowed – self-loop edge
package core
