// Package traverse provides stepwise graph traversals over a render
// board: breadth-first and depth-first search plus Dijkstra and
// Bellman-Ford shortest paths, each executed one logical step at a
// time so an observer can watch the frontier move.
//
// # Board
//
// A Board wraps a core.Graph at construction time into render state:
// one core.Node per vertex (Current, InQueue, Visited, Dist) and one
// core.Edge per arc (Highlighted), both kept in the graph's insertion
// order. The adjacency is copied once up front, so the source graph
// may be reused or mutated after the board exists without disturbing a
// run. WithPositions places nodes for the renderer; engines never
// touch coordinates.
//
// After every mutation the board publishes an immutable snapshot to
// its step.GraphSink, then the runner waits out the configured delay
// on its step.Pacer. Cancelling the run's step.Token releases the
// wait immediately and the engine returns step.ErrCanceled after at
// most one further published step.
//
// # Engines
//
//	BFS(b, start, opts...)         // layer order, unweighted
//	DFS(b, start, opts...)         // preorder, explicit stack
//	Dijkstra(b, start, opts...)    // nonnegative weights only
//	BellmanFord(b, start, opts...) // negative weights, cycle detection
//
// All four validate the same preconditions before the first step:
// ErrNilBoard, ErrEmptyGraph, ErrStartVertexNotFound. Dijkstra adds
// an upfront ErrNegativeWeight scan. Recursion is restructured as
// explicit work stacks, so deep graphs cannot exhaust goroutine
// stacks and every expansion is a cancellation point.
//
// # Result
//
// Every engine returns a Result: the visit Order, the Parent tree and,
// for the weighted engines, the Dist map. PathTo reconstructs the
// start-to-target path from the parent links. BellmanFord reports a
// reachable negative cycle through Result.NegativeCycle — a normal,
// distinct outcome, not an error.
//
// Determinism: neighbor expansion follows insertion order, Dijkstra
// breaks distance ties by insertion order, so two runs over the same
// graph publish identical snapshot sequences.
//
// # Complexity
//
//	BFS, DFS       O(V+E) steps
//	Dijkstra       O(V²+E) steps
//	BellmanFord    O(V·E) steps
package traverse
