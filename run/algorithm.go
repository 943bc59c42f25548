package run

import (
	"github.com/katalvlaran/lvlviz/sorting"
	"github.com/katalvlaran/lvlviz/traverse"
)

// Algorithm identifies one runnable engine.
type Algorithm string

// Algorithm ids, stable across the HTTP surface and the CLI.
const (
	AlgoBubble      Algorithm = "bubble"
	AlgoSelection   Algorithm = "selection"
	AlgoInsertion   Algorithm = "insertion"
	AlgoMerge       Algorithm = "merge"
	AlgoQuick       Algorithm = "quick"
	AlgoBFS         Algorithm = "bfs"
	AlgoDFS         Algorithm = "dfs"
	AlgoDijkstra    Algorithm = "dijkstra"
	AlgoBellmanFord Algorithm = "bellman-ford"
)

// Kind distinguishes the two engine families.
type Kind string

const (
	KindSort  Kind = "sort"
	KindGraph Kind = "graph"
)

type sortEngine func(*sorting.Board, ...sorting.Option) error

type graphEngine func(*traverse.Board, string, ...traverse.Option) (*traverse.Result, error)

var sortEngines = map[Algorithm]sortEngine{
	AlgoBubble:    sorting.Bubble,
	AlgoSelection: sorting.Selection,
	AlgoInsertion: sorting.Insertion,
	AlgoMerge:     sorting.Merge,
	AlgoQuick:     sorting.Quick,
}

var graphEngines = map[Algorithm]graphEngine{
	AlgoBFS:         traverse.BFS,
	AlgoDFS:         traverse.DFS,
	AlgoDijkstra:    traverse.Dijkstra,
	AlgoBellmanFord: traverse.BellmanFord,
}

// Kind reports the family of a, or "" for an unknown id.
func (a Algorithm) Kind() Kind {
	if _, ok := sortEngines[a]; ok {
		return KindSort
	}
	if _, ok := graphEngines[a]; ok {
		return KindGraph
	}
	return ""
}

// Catalog lists every runnable algorithm in presentation order.
func Catalog() []Algorithm {
	return []Algorithm{
		AlgoBubble, AlgoSelection, AlgoInsertion, AlgoMerge, AlgoQuick,
		AlgoBFS, AlgoDFS, AlgoDijkstra, AlgoBellmanFord,
	}
}
