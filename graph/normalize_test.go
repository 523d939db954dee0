package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddsMirrors(t *testing.T) {
	g := New(3, true)
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 1, 1)

	stats := g.Normalize()
	assert.Equal(t, 1, stats.Mirrors) // 1->0 only; 2->1 and 1->2 already pair up.
	assert.Equal(t, 0, stats.Aggregates)
	assert.True(t, g.Normalized())
	assert.Equal(t, 3, g.NumOriginEdges())
	require.Equal(t, 4, g.NumEdges())

	mirror := g.Edge(3)
	assert.Equal(t, uint32(1), mirror.Src)
	assert.Equal(t, uint32(0), mirror.Dst)
	assert.Equal(t, int64(0), mirror.Capacity)
	assert.False(t, mirror.Origin)

	// Synthetic edges do not count towards out-degree.
	assert.Equal(t, uint32(1), g.Vertex(0).OutDegree())
	assert.Equal(t, uint32(1), g.Vertex(1).OutDegree())
	assert.Equal(t, 2, g.SlotCount(1))
}

func TestNormalizeSymmetry(t *testing.T) {
	g := New(5, true)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 2)
	g.AddEdge(2, 3, 3)
	g.AddEdge(3, 4, 4)
	g.AddEdge(4, 0, 5)
	g.AddEdge(1, 1, 6)
	g.Normalize()

	for u := range g.Vertices {
		for slot, v := range g.Vertices[u].Neighbors {
			w, ms := g.MirrorSlot(uint32(u), uint32(slot))
			assert.Equal(t, v, w)
			assert.Equal(t, uint32(u), g.Neighbor(w, ms), "mirror of %d/%d", u, slot)
		}
	}
}

func TestNormalizeAggregates(t *testing.T) {
	g := New(3, true)
	a := g.AddEdge(0, 1, 3)
	g.AddEdge(1, 2, 5)
	b := g.AddEdge(0, 1, 4)

	stats := g.Normalize()
	assert.Equal(t, 1, stats.Aggregates)

	s := g.Slot(0, 0)
	assert.Equal(t, AggregatedEdges, s.Kind)
	assert.Equal(t, []uint32{a, b}, s.Members)
	agg := g.Edge(s.Active())
	assert.False(t, agg.Origin)
	assert.Equal(t, int64(7), agg.Capacity)
	assert.Equal(t, int64(7), g.Residual(0, 0))

	assert.Equal(t, SingleEdge, g.Slot(1, 1).Kind)
}

func TestNormalizeIdempotent(t *testing.T) {
	g := New(4, true)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 3, 1)
	g.AddEdge(2, 3, 1)

	first := g.Normalize()
	edges := g.NumEdges()
	second := g.Normalize()

	assert.NotZero(t, first.Mirrors)
	assert.NotZero(t, first.Aggregates)
	assert.Equal(t, NormalizeStats{}, second)
	assert.Equal(t, edges, g.NumEdges())
}

func TestNormalizeUndirected(t *testing.T) {
	g := New(3, false)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 0, 3)
	g.AddEdge(1, 2, 1)

	stats := g.Normalize()
	assert.Equal(t, 0, stats.Mirrors)
	assert.Equal(t, 2, stats.Aggregates) // 0->1 and 1->0 each carry two members.
	assert.Equal(t, int64(5), g.ActiveEdge(0, 0).Capacity)
}

func TestAddEdgeAfterNormalize(t *testing.T) {
	g := New(2, true)
	g.AddEdge(0, 1, 1)
	g.Normalize()

	iv := requireViolation(t, func() { g.AddEdge(1, 0, 1) })
	assert.Contains(t, iv.Msg, "normalized")
}
