package maxflow

import (
	"github.com/ScottSallinen/mincut/enforce"
	"github.com/ScottSallinen/mincut/graph"
	"github.com/ScottSallinen/mincut/utils"
)

// reconcileFlows spreads each aggregate's flow over its member edges, in declaration order,
// filling each member to capacity before moving on. Returns the flow of every original edge.
func reconcileFlows(g *graph.Graph) map[uint32]int64 {
	for u := range g.Vertices {
		g.ForEachSlot(uint32(u), func(_ uint32, v uint32, s *graph.Slot) {
			if s.Kind != graph.AggregatedEdges {
				return
			}
			remaining := g.Edges[s.Aggregate].Flow
			for _, m := range s.Members {
				e := &g.Edges[m]
				e.Flow = utils.Min(e.Capacity, remaining)
				remaining -= e.Flow
			}
			enforce.ENFORCE(remaining == 0, "aggregate ", u, "->", v, " kept ", remaining, " unassigned flow")
		})
	}

	flows := make(map[uint32]int64, g.NumOriginEdges())
	for eidx := range g.Edges {
		if g.Edges[eidx].Origin {
			flows[uint32(eidx)] = g.Edges[eidx].Flow
		}
	}
	return flows
}
