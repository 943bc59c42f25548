// Package core_test locks in the model contracts every engine builds on:
// insertion-ordered iteration, idempotent vertex insertion, weight rules,
// undirected mirroring and deep-copy independence.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlviz/core"
)

func TestGraph_AddVertex_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 1, g.VertexCount())

	// Duplicate insertion is a no-op, not an error.
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_VertexOrder_IsInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	// No sorting: first-seen order survives.
	assert.Equal(t, []string{"C", "A", "B"}, g.Vertices())
}

func TestGraph_NeighborOrder_IsInsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "C", 0))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("A", "D", 0))

	assert.Equal(t, []string{"C", "B", "D"}, g.Neighbors("A"))
	// Implicit endpoints registered in first-seen order too.
	assert.Equal(t, []string{"A", "C", "B", "D"}, g.Vertices())
}

func TestGraph_AddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddEdge("", "B", 0), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "", 0), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "A", 0), core.ErrLoopNotAllowed)
	// Unweighted graphs accept only the neutral 0/1.
	assert.ErrorIs(t, g.AddEdge("A", "B", 7), core.ErrBadWeight)
}

func TestGraph_Unweighted_StoresDefaultWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))

	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, core.DefaultWeight, w)
}

func TestGraph_Undirected_MirrorsArcs(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 4))

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	wBA, ok := g.Weight("B", "A")
	require.True(t, ok)
	assert.Equal(t, int64(4), wBA)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_Directed_DoesNotMirror(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 4))

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_ReAddEdge_UpdatesWeightKeepsOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("A", "B", 9))

	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, int64(9), w)
	// Re-adding must not duplicate or reorder the neighbor entry.
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_NegativeWeights_AllowedWhenWeighted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", -3))

	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, int64(-3), w)
}

func TestGraph_Edges_DeterministicOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("B", "A", 1))
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("B", "C", 3))

	want := []core.Edge{
		{From: "B", To: "A", Weight: 1},
		{From: "B", To: "C", Weight: 3},
		{From: "A", To: "C", Weight: 2},
	}
	assert.Equal(t, want, g.Edges())
}

func TestGraph_Neighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))

	nbrs := g.Neighbors("A")
	nbrs[0] = "Z"
	assert.Equal(t, []string{"B"}, g.Neighbors("A"))
}

func TestGraph_Clone_Independence(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge("A", "C", 2))
	require.NoError(t, c.AddEdge("A", "B", 5))

	// Original untouched by clone mutation.
	assert.False(t, g.HasVertex("C"))
	w, _ := g.Weight("A", "B")
	assert.Equal(t, int64(1), w)

	assert.True(t, c.Directed())
	assert.Equal(t, []string{"B", "C"}, c.Neighbors("A"))
}

func TestGraph_UnknownVertexQueries(t *testing.T) {
	g := core.NewGraph()

	assert.False(t, g.HasVertex("missing"))
	assert.False(t, g.HasEdge("missing", "also"))
	assert.Nil(t, g.Neighbors("missing"))
	_, ok := g.Weight("missing", "also")
	assert.False(t, ok)
}
