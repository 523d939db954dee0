package maxflow

import (
	"math/rand"
	"testing"

	"github.com/ScottSallinen/mincut/enforce"
	"github.com/ScottSallinen/mincut/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prepare(g *graph.Graph, source, target uint32, options Options) *PushRelabel {
	g.Normalize()
	g.ResetRun()
	pr := newPushRelabel(g, source, target, options)
	pr.initialize()
	return pr
}

func expectViolation(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		_, ok := r.(enforce.InvariantViolation)
		assert.True(t, ok, "expected an invariant violation, got %v", r)
	}()
	f()
}

// step performs one operation the way Run does. Returns false once nothing applies.
func step(pr *PushRelabel) bool {
	if arc, ok := pr.admissible.Front(); ok {
		pr.Push(pr.arcSlot(arc))
		return true
	} else if u, ok := pr.relabelable.Front(); ok {
		pr.Relabel(u)
		return true
	}
	return false
}

// candidates snapshots both sets as plain membership.
func candidates(pr *PushRelabel) (admissible map[uint32]bool, relabelable map[uint32]bool) {
	admissible, relabelable = map[uint32]bool{}, map[uint32]bool{}
	for arc, in := range pr.admissible.member {
		if in {
			admissible[uint32(arc)] = true
		}
	}
	for u, in := range pr.relabelable.member {
		if in {
			relabelable[uint32(u)] = true
		}
	}
	return admissible, relabelable
}

// validLabeling reports whether label(u) <= label(v)+1 holds on every residual arc the solver considers.
func (pr *PushRelabel) validLabeling() bool {
	g := pr.g
	for u := range g.Vertices {
		for s, v := range g.Vertices[u].Neighbors {
			if !pr.usable(uint32(u), v) || g.Residual(uint32(u), uint32(s)) <= 0 {
				continue
			}
			if g.Vertices[u].Label > g.Vertices[v].Label+1 {
				return false
			}
		}
	}
	return true
}

func TestInitialize(t *testing.T) {
	g := buildGraph(4, true, []testEdge{{0, 1, 5}, {0, 3, 2}, {1, 2, 3}})
	pr := prepare(g, 0, 2, Options{})

	assert.True(t, g.Vertices[3].Leaf)
	assert.False(t, g.Vertices[2].Leaf)
	assert.Equal(t, uint32(4), g.Vertices[0].Label)

	// The leaf is skipped, vertex 1 is saturated.
	assert.Equal(t, int64(5), g.Vertices[1].Excess)
	assert.Equal(t, int64(0), g.Vertices[3].Excess)
	assert.Equal(t, int64(0), g.Vertices[0].Excess)

	admissible, relabelable := candidates(pr)
	assert.Empty(t, admissible)
	assert.Equal(t, map[uint32]bool{1: true}, relabelable)
	assert.True(t, pr.validLabeling())
}

func TestPushRequiresAdmissible(t *testing.T) {
	g := buildGraph(3, true, []testEdge{{0, 1, 5}, {1, 2, 3}})
	pr := prepare(g, 0, 2, Options{})

	// Vertex 1 sits at label 0, same as the target.
	expectViolation(t, func() { pr.Push(1, 0) })
	// The source is never relabeled.
	expectViolation(t, func() { pr.Relabel(0) })

	pr.Relabel(1)
	assert.Equal(t, uint32(1), g.Vertices[1].Label)
	expectViolation(t, func() { pr.Relabel(1) })

	pr.Push(1, g.Vertices[1].NbrMap[2])
	assert.Equal(t, int64(3), g.Vertices[2].Excess)
	assert.Equal(t, int64(2), g.Vertices[1].Excess)
	assert.Equal(t, uint64(1), pr.stats.Pushes)
	assert.Equal(t, uint64(1), pr.stats.Relabels)
}

func TestIncrementalMatchesFullScan(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		g := randomGraph(r, i%2 == 0)
		n := g.NumVertices()
		source, target := uint32(r.Intn(n)), uint32(r.Intn(n))
		if source == target || g.Vertex(source).OutDegree() == 0 {
			continue
		}
		pr := prepare(g, source, target, Options{})
		for ops := 0; ; ops++ {
			require.Less(t, ops, 4*n*n*g.NumEdges()+100, "graph %d did not terminate", i)
			require.True(t, pr.validLabeling(), "graph %d op %d", i, ops)

			// The maintained sets must agree with a fresh scan.
			admissible, relabelable := candidates(pr)
			pr.recompute()
			freshAdmissible, freshRelabelable := candidates(pr)
			require.Equal(t, freshAdmissible, admissible, "graph %d op %d", i, ops)
			require.Equal(t, freshRelabelable, relabelable, "graph %d op %d", i, ops)

			if !step(pr) {
				break
			}
		}
		for u := range g.Vertices {
			if pr.active(uint32(u)) {
				assert.Zero(t, g.Vertices[u].Excess)
			}
			assert.Less(t, int(g.Vertices[u].Label), 2*n)
		}
	}
}

func TestFlowWithinCapacity(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		g := randomGraph(r, true)
		n := g.NumVertices()
		source, target := uint32(r.Intn(n)), uint32(r.Intn(n))
		if source == target || g.Vertex(source).OutDegree() == 0 {
			continue
		}
		pr := prepare(g, source, target, Options{})
		for step(pr) {
			for eidx := range g.Edges {
				e := &g.Edges[eidx]
				require.True(t, e.Flow >= 0 && e.Flow <= e.Capacity, "graph %d edge %v", i, e)
			}
		}
	}
}

func TestRunStats(t *testing.T) {
	g := buildGraph(4, true, []testEdge{{0, 1, 10}, {0, 2, 10}, {1, 3, 4}, {2, 3, 6}})
	g.Normalize()
	pr := newPushRelabel(g, 0, 3, Options{})

	value, err := pr.Run()
	require.NoError(t, err)
	assert.Equal(t, int64(10), value)
	assert.NotZero(t, pr.stats.Pushes)
	assert.NotZero(t, pr.stats.Relabels)
	assert.Less(t, int(pr.stats.MaxLabel), 2*g.NumVertices())
	// What could not reach the target went back to the source.
	assert.Equal(t, int64(10), g.Vertices[0].Excess)
}
