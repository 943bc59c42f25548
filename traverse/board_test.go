package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/step"
	"github.com/katalvlaran/lvlviz/traverse"
)

func TestNewBoard_NilGraph(t *testing.T) {
	_, err := traverse.NewBoard(nil, step.NopSink{})
	require.ErrorIs(t, err, traverse.ErrGraphNil)
}

func TestNewBoard_InitialState(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	b, err := traverse.NewBoard(g, step.NopSink{})
	require.NoError(t, err)

	assert.Equal(t, 3, b.VertexCount())
	assert.Equal(t, []string{"A", "B", "C"}, b.VertexOrder())
	assert.Equal(t, []string{"A", "C"}, b.Neighbors("B"))

	s := b.Snapshot()
	require.Len(t, s.Nodes, 3)
	for _, n := range s.Nodes {
		assert.Equal(t, core.Unreached, n.Dist)
		assert.False(t, n.Current || n.InQueue || n.Visited)
	}
	// Undirected arcs materialize in both directions.
	assert.Len(t, s.Edges, 4)
	assert.Empty(t, s.Order)
}

func TestBoard_DetachedFromSourceGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))

	b, err := traverse.NewBoard(g, step.NopSink{})
	require.NoError(t, err)

	require.NoError(t, g.AddEdge("B", "C", 0))
	assert.Equal(t, 2, b.VertexCount(), "later graph mutations stay invisible")
	assert.False(t, b.HasVertex("C"))
}

func TestBoard_CurrentIsExclusive(t *testing.T) {
	b, _ := recordedBoard(t, sixVertexGraph(t))
	b.SetCurrent("A")
	b.SetCurrent("B")

	s := b.Snapshot()
	assert.False(t, nodeIn(t, s, "A").Current)
	assert.True(t, nodeIn(t, s, "B").Current)

	b.ClearCurrent()
	assert.False(t, nodeIn(t, b.Snapshot(), "B").Current)
}

func TestBoard_MarkVisitedDropsQueueFlag(t *testing.T) {
	b, _ := recordedBoard(t, sixVertexGraph(t))
	b.MarkInQueue("A")
	require.True(t, b.IsInQueue("A"))

	b.MarkVisited("A")
	assert.True(t, b.IsVisited("A"))
	assert.False(t, b.IsInQueue("A"))
}

func TestBoard_HighlightMirrorsUndirected(t *testing.T) {
	b, _ := recordedBoard(t, sixVertexGraph(t))
	b.HighlightEdge("A", "B")

	s := b.Snapshot()
	assert.True(t, edgeLit(s, "A", "B"))
	assert.True(t, edgeLit(s, "B", "A"))
	assert.False(t, edgeLit(s, "A", "C"))

	b.ClearHighlights()
	s = b.Snapshot()
	assert.False(t, edgeLit(s, "A", "B"))
	assert.False(t, edgeLit(s, "B", "A"))
}

func TestBoard_HighlightDirectedSingleArc(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "A", 0))

	b, err := traverse.NewBoard(g, step.NopSink{})
	require.NoError(t, err)

	b.HighlightEdge("A", "B")
	s := b.Snapshot()
	assert.True(t, edgeLit(s, "A", "B"))
	assert.False(t, edgeLit(s, "B", "A"), "the reverse arc keeps its own state")
}

func TestBoard_ClearTransientKeepsProgress(t *testing.T) {
	b, _ := recordedBoard(t, sixVertexGraph(t))
	b.SetCurrent("A")
	b.MarkVisited("A")
	b.MarkInQueue("B")
	b.SetDist("A", 0)
	b.HighlightEdge("A", "B")
	b.AppendOrder("A")

	b.ClearTransient()

	s := b.Snapshot()
	a := nodeIn(t, s, "A")
	assert.False(t, a.Current)
	assert.True(t, a.Visited)
	assert.Equal(t, int64(0), a.Dist)
	assert.False(t, nodeIn(t, s, "B").InQueue)
	assert.False(t, edgeLit(s, "A", "B"))
	assert.Equal(t, []string{"A"}, s.Order)
}

func TestBoard_SnapshotIsolation(t *testing.T) {
	b, _ := recordedBoard(t, sixVertexGraph(t))
	before := b.Snapshot()

	b.MarkVisited("A")
	b.HighlightEdge("A", "B")
	b.AppendOrder("A")

	assert.False(t, nodeIn(t, before, "A").Visited, "snapshots never track later mutations")
	assert.False(t, edgeLit(before, "A", "B"))
	assert.Empty(t, before.Order)
}

func TestBoard_PublishSendsSnapshot(t *testing.T) {
	b, rec := recordedBoard(t, sixVertexGraph(t))
	b.MarkVisited("A")
	b.Publish()

	frames := rec.Graphs()
	require.Len(t, frames, 1)
	assert.Equal(t, b.Snapshot(), frames[0])
}

func TestBoard_WithPositions(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))

	pos := core.CircleLayout([]string{"A", "B"}, 50, 50, 40)
	b, err := traverse.NewBoard(g, step.NopSink{}, traverse.WithPositions(pos))
	require.NoError(t, err)

	s := b.Snapshot()
	a := nodeIn(t, s, "A")
	assert.InDelta(t, pos["A"].X, a.X, 1e-9)
	assert.InDelta(t, pos["A"].Y, a.Y, 1e-9)
}

func TestBoard_OrderAppendsOnce(t *testing.T) {
	b, _ := recordedBoard(t, sixVertexGraph(t))
	b.AppendOrder("A")
	b.AppendOrder("B")
	b.AppendOrder("A")

	assert.Equal(t, []string{"A", "B"}, b.Order())
}

func TestBoard_WeightOf(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 7))

	b, err := traverse.NewBoard(g, step.NopSink{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), b.WeightOf("A", "B"))
}
