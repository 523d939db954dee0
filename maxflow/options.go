package maxflow

import (
	"time"

	"github.com/ScottSallinen/mincut/graph"
)

type Options struct {
	FullRecompute    bool   // Rebuild the candidate sets with a full scan after every push/relabel, instead of updating them incrementally. Slow; for differential testing.
	MaxOperations    uint64 // If non-zero, give up with ErrOperationLimit after this many push and relabel operations.
	CheckCorrectness bool   // If true, verify the result (feasibility, conservation, duality, cut validity) before returning. A failure is fatal.
}

type Stats struct {
	Pushes     uint64
	Relabels   uint64
	MaxLabel   uint32
	Normalize  graph.NormalizeStats
	Degenerate bool // Short-circuited: source equals target, or source is a leaf.

	NormalizeTime time.Duration
	SolveTime     time.Duration
	ExtractTime   time.Duration
	CheckTime     time.Duration // Only with Options.CheckCorrectness; excluded from the other timings.
}

func (s *Stats) Operations() uint64 {
	return s.Pushes + s.Relabels
}

// Result of a max-flow / min-cut computation. Indices refer to the caller's graph:
// edge indices are the ones returned by AddEdge, synthetic edges never appear.
type Result struct {
	Value      int64            // Value of the maximum flow.
	Flow       map[uint32]int64 // Original edge -> assigned flow. Every original edge is present.
	CutEdges   []uint32         // Original edges crossing from the source side, ascending.
	SourceComp []uint32         // Vertices on the source side of the cut, ascending.
	Stats      Stats
}

// CutCapacity is the summed capacity of the cut edges.
func (r *Result) CutCapacity(g *graph.Graph) (total int64) {
	for _, e := range r.CutEdges {
		total += g.Edge(e).Capacity
	}
	return total
}
