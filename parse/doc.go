// SPDX-License-Identifier: MIT

// Package parse ingests textual graph descriptions into core.Graph
// models. Two formats are supported:
//
// Adjacency list, one vertex per line:
//
//	A: B, C(4)
//	B: A, D
//	D:
//
// The part before the colon names the vertex; the comma-separated rest
// names its neighbors, each with an optional (weight) suffix that
// defaults to 1. A line with nothing after the colon declares an
// isolated vertex. Blank lines are skipped.
//
// Adjacency matrix, header row then one row per vertex:
//
//	  A B C
//	A 0 2 0
//	B 2 0 1
//	C 0 1 0
//
// The header fixes the vertex set and its order; rows must follow that
// order and carry exactly one cell per header label. A zero cell means
// no arc, any other value is the arc weight. On undirected graphs a
// cell and its mirror both write the same arc pair, so the later value
// wins; symmetric input round-trips exactly.
//
// Both readers build a fresh graph and follow an all-or-nothing
// contract: the first malformed line aborts the parse with an
// ErrFormat or ErrShape wrapped error carrying the 1-based line
// number, and no graph is returned. Vertex and neighbor order in the
// resulting model is exactly the text order, so stepwise runs over
// parsed graphs replay deterministically.
package parse
