package graph

import (
	"github.com/ScottSallinen/mincut/enforce"
	"github.com/rs/zerolog/log"
)

type NormalizeStats struct {
	Mirrors    int // Synthetic mirror edges added.
	Aggregates int // Synthetic aggregate edges added.
}

// Normalize puts the graph in the symmetric, consolidated form the solver needs:
// every arc u->v has a mirror slot v->u (a zero capacity synthetic edge if the caller gave none),
// and every slot with parallel edges gets an aggregate edge carrying their summed capacity.
// Running it again on a normalized graph adds nothing.
func (g *Graph) Normalize() (stats NormalizeStats) {
	if g.Directed {
		stats.Mirrors = g.addMirrors()
	}
	stats.Aggregates = g.consolidate()
	g.buildMirrorTable()
	g.normalized = true

	log.Trace().Int("mirrors", stats.Mirrors).Int("aggregates", stats.Aggregates).Msg("Normalized graph")
	return stats
}

func (g *Graph) addMirrors() (added int) {
	// Only scan the edges present before we begin; mirrors never need mirrors.
	n := len(g.Edges)
	for eidx := 0; eidx < n; eidx++ {
		e := g.Edges[eidx]
		if e.Src == e.Dst {
			continue
		}
		if _, ok := g.Vertices[e.Dst].NbrMap[e.Src]; !ok {
			g.appendEdge(e.Dst, e.Src, 0, false)
			added++
		}
	}
	return added
}

func (g *Graph) consolidate() (added int) {
	for u := range g.Vertices {
		vtx := &g.Vertices[u]
		for i := range vtx.OutEdges {
			s := &vtx.OutEdges[i]
			if s.Kind == AggregatedEdges || len(s.Members) < 2 {
				continue
			}
			total := int64(0)
			for _, m := range s.Members {
				total += g.Edges[m].Capacity
			}
			aggIdx := uint32(len(g.Edges))
			g.Edges = append(g.Edges, Edge{Src: uint32(u), Dst: vtx.Neighbors[i], Capacity: total})
			s.Kind = AggregatedEdges
			s.Aggregate = aggIdx
			added++
		}
	}
	return added
}

func (g *Graph) buildMirrorTable() {
	g.mirror = make([][]uint32, len(g.Vertices))
	for u := range g.Vertices {
		vtx := &g.Vertices[u]
		g.mirror[u] = make([]uint32, len(vtx.Neighbors))
		for i, v := range vtx.Neighbors {
			ms, ok := g.Vertices[v].NbrMap[uint32(u)]
			enforce.ENFORCE(ok, "vertex ", v, " has no slot for neighbour ", u, "; undirected graphs must be symmetric")
			g.mirror[u][i] = ms
		}
	}
}
