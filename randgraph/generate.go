// SPDX-License-Identifier: MIT

// Package randgraph: the Generate constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices insert in index order 0..n-1, so the model's vertex
//     order is the ID order regardless of the backbone permutation.
//   - Backbone edges emit along a shuffled permutation, perm[i] →
//     perm[(i+1)%n]; the ring makes the graph connected (strongly, when
//     directed).
//   - Extra edges sample uniform vertex pairs until the density target
//     is met or the attempt budget runs out; existing arcs and loops
//     are skipped.
//
// Determinism: fixed seed ⇒ fixed permutation, pairs and weights.
// Complexity: O(n + extra) time beyond the sampling retries, O(n) space.

package randgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlviz/core"
)

// ErrTooFewVertices is returned when n cannot form a cycle backbone.
var ErrTooFewVertices = errors.New("randgraph: need at least 2 vertices")

const (
	minVertices = 2

	// extraDensity is the share of all vertex pairs targeted as edges,
	// backbone included.
	extraDensity = 0.25

	// attemptsPerExtra bounds the sampling retries for one extra edge.
	attemptsPerExtra = 16

	// minWeight and maxWeight bound random weights on weighted graphs.
	minWeight = 1
	maxWeight = 9

	// layoutCenter and layoutRadius place vertices on the default
	// 100×100 canvas.
	layoutCenter = 50
	layoutRadius = 40
)

// Generate builds a connected random graph with n vertices plus a
// circle layout for its vertices.
func Generate(n int, opts ...Option) (*core.Graph, map[string]core.Position, error) {
	if n < minVertices {
		return nil, nil, fmt.Errorf("n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := gatherConfig(opts)
	g := core.NewGraph(cfg.graphOpts...)

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, nil, fmt.Errorf("vertex %q: %w", ids[i], err)
		}
	}

	weighted := g.Weighted()
	weight := func() int64 {
		if !weighted {
			return 0
		}
		return int64(cfg.rng.Intn(maxWeight-minWeight+1) + minWeight)
	}

	// Backbone ring over a shuffled permutation.
	perm := cfg.rng.Perm(n)
	for i := 0; i < n; i++ {
		u, v := ids[perm[i]], ids[perm[(i+1)%n]]
		if i == n-1 && n == minVertices && !g.Directed() {
			// The two-vertex ring closes over the arc it opened with.
			break
		}
		if err := g.AddEdge(u, v, weight()); err != nil {
			return nil, nil, fmt.Errorf("backbone %s→%s: %w", u, v, err)
		}
	}

	// Extra edges toward the density target.
	extra := int(float64(n*(n-1)/2)*extraDensity) - n
	for placed, attempts := 0, 0; placed < extra && attempts < extra*attemptsPerExtra; attempts++ {
		u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
		if u == v || g.HasEdge(ids[u], ids[v]) {
			continue
		}
		if err := g.AddEdge(ids[u], ids[v], weight()); err != nil {
			return nil, nil, fmt.Errorf("extra %s→%s: %w", ids[u], ids[v], err)
		}
		placed++
	}

	return g, core.CircleLayout(ids, layoutCenter, layoutCenter, layoutRadius), nil
}
