// Package lvlviz is your stepwise playground for watching algorithms
// run — sorting and graph traversals executed one paced, cancelable,
// renderable step at a time.
//
// 🚀 What is lvlviz?
//
//	An engine that turns classic algorithms into frame streams:
//		• Sorting: bubble, selection, insertion, merge, quick
//		• Traversals: BFS, DFS, Dijkstra, Bellman-Ford
//		• Pacing: 10 speed levels, 1000ms down to 100ms per step
//		• Cancellation: one token per run, every pause abortable at once
//		• Snapshots: deep-copied frames renderers may keep forever
//
// ✨ Why choose lvlviz?
//
//   - Deterministic – same input and speed, same frame sequence, every time
//   - Renderer-agnostic – frames go to sinks: terminal, WebSocket, recorder
//   - Honest cancellation – stop lands within one step, never mid-mutation
//   - Pure engine core – no JSON, no I/O, no clocks inside the algorithms
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/      — render model: Elements, Nodes, Edges, the ordered Graph
//	step/      — pacing timers, cancellation tokens, publish sinks
//	sorting/   — the five sorting engines over a shared board
//	traverse/  — the four traversal engines over a shared board
//	parse/     — adjacency-list and matrix readers
//	randgraph/ — seeded random connected graphs
//	run/       — sessions: one active run, outcomes, metrics
//	tui/       — ANSI terminal renderer
//	internal/  — config, logging, HTTP + WebSocket surface
//
// Quick ASCII example:
//
//	    [5 3 8 1]          A───B
//	     ▲ ▲               │   │
//	   compare             C───D
//	   publish → wait → mutate
//
// Start with sorting.NewBoard or traverse.NewBoard, attach a sink,
// pick a speed, and run. The cmd/lvlviz binary wraps the same engines
// behind a CLI and an HTTP/WebSocket server.
//
//	go get github.com/katalvlaran/lvlviz
package lvlviz
