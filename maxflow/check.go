package maxflow

import (
	"github.com/ScottSallinen/mincut/graph"
	"github.com/ScottSallinen/mincut/utils"
	"github.com/pkg/errors"
)

// CheckResult verifies a result against the original edges of g:
// capacity constraints, conservation away from source and target, flow value,
// cut validity and max-flow / min-cut duality.
func CheckResult(g *graph.Graph, source, target uint32, res *Result) error {
	if err := validate(g, source, target); err != nil {
		return err
	}
	if len(res.Flow) != g.NumOriginEdges() {
		return errors.Errorf("flow covers %d edges, graph has %d original edges", len(res.Flow), g.NumOriginEdges())
	}

	net := make([]int64, g.NumVertices()) // inflow - outflow
	for eidx, f := range res.Flow {
		if int(eidx) >= g.NumEdges() || !g.Edges[eidx].Origin {
			return errors.Errorf("flow reported on non-original edge %d", eidx)
		}
		e := &g.Edges[eidx]
		if f < 0 || f > e.Capacity {
			return errors.Errorf("edge %d (%d->%d) flow %d outside [0, %d]", eidx, e.Src, e.Dst, f, e.Capacity)
		}
		net[e.Src] -= f
		net[e.Dst] += f
	}
	for v := range net {
		if uint32(v) != source && uint32(v) != target && net[v] != 0 {
			return errors.Errorf("conservation violated at vertex %d: net inflow %d", v, net[v])
		}
	}
	if source != target {
		if net[target] != res.Value {
			return errors.Errorf("target receives %d, reported value is %d", net[target], res.Value)
		}
		if -net[source] != res.Value {
			return errors.Errorf("source emits %d, reported value is %d", -net[source], res.Value)
		}
	}

	side := utils.NewBitmap(g.NumVertices())
	for _, v := range res.SourceComp {
		if int(v) >= g.NumVertices() {
			return errors.Errorf("source side lists unknown vertex %d", v)
		}
		side.Set(v)
	}
	if !side.IsSet(source) {
		return errors.New("source is not on the source side")
	}
	if source != target && side.IsSet(target) && reachable(g, source, target) {
		return errors.New("target is reachable but on the source side")
	}
	for _, eidx := range res.CutEdges {
		if int(eidx) >= g.NumEdges() || !g.Edges[eidx].Origin {
			return errors.Errorf("cut lists non-original edge %d", eidx)
		}
		e := &g.Edges[eidx]
		if !side.IsSet(e.Src) || side.IsSet(e.Dst) {
			return errors.Errorf("cut edge %d (%d->%d) does not cross the partition", eidx, e.Src, e.Dst)
		}
	}
	if c := res.CutCapacity(g); c != res.Value {
		return errors.Errorf("cut capacity %d differs from flow value %d", c, res.Value)
	}
	return nil
}

// reachable reports whether target can be reached from source over original positive-capacity edges.
func reachable(g *graph.Graph, source, target uint32) bool {
	adj := make([][]uint32, g.NumVertices())
	for eidx := 0; eidx < g.NumEdges(); eidx++ {
		if e := &g.Edges[eidx]; e.Origin && e.Capacity > 0 {
			adj[e.Src] = append(adj[e.Src], e.Dst)
		}
	}
	seen := utils.NewBitmap(g.NumVertices())
	seen.Set(source)
	queue := utils.Deque[uint32]{}
	queue.PushBack(source)
	for queue.Len() > 0 {
		u, _ := queue.PopFront()
		if u == target {
			return true
		}
		for _, v := range adj[u] {
			if !seen.IsSet(v) {
				seen.Set(v)
				queue.PushBack(v)
			}
		}
	}
	return false
}
