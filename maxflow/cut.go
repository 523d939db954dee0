package maxflow

import (
	"github.com/ScottSallinen/mincut/enforce"
	"github.com/ScottSallinen/mincut/graph"
	"github.com/ScottSallinen/mincut/utils"
	"golang.org/x/exp/slices"
)

// residualReach marks every vertex reachable from source through arcs with positive residual.
func residualReach(g *graph.Graph, source uint32) utils.Bitmap {
	reached := utils.NewBitmap(g.NumVertices())
	reached.Set(source)

	queue := utils.Deque[uint32]{}
	queue.PushBack(source)
	for queue.Len() > 0 {
		u, _ := queue.PopFront()
		g.ForEachSlot(u, func(slot uint32, v uint32, _ *graph.Slot) {
			if reached.IsSet(v) || g.Residual(u, slot) <= 0 {
				return
			}
			reached.Set(v)
			queue.PushBack(v)
		})
	}
	return reached
}

// extractCut returns the source side of the residual graph and the original edges leaving it.
// Every such edge has zero residual; aggregates are reported through their members.
func extractCut(g *graph.Graph, source uint32) (sourceComp []uint32, cutEdges []uint32) {
	reached := residualReach(g, source)
	sourceComp = reached.Members()
	cutEdges = make([]uint32, 0)

	for _, u := range sourceComp {
		g.ForEachSlot(u, func(slot uint32, v uint32, s *graph.Slot) {
			if reached.IsSet(v) {
				return
			}
			enforce.ENFORCE(g.Residual(u, slot) == 0, "arc ", u, "->", v, " leaves the source side with residual")
			for _, m := range s.Members {
				if g.Edges[m].Origin {
					cutEdges = append(cutEdges, m)
				}
			}
		})
	}
	slices.Sort(cutEdges)
	return sourceComp, cutEdges
}
