package maxflow

import (
	"math"

	"github.com/ScottSallinen/mincut/enforce"
	"github.com/ScottSallinen/mincut/graph"
	"github.com/ScottSallinen/mincut/utils"
	"github.com/rs/zerolog/log"
)

// PushRelabel runs the preflow-push algorithm on a normalized graph.
//
// Candidates are kept in two insertion-ordered sets: admissible arcs, keyed by (vertex, slot),
// and relabelable vertices. The oldest admissible arc is always pushed before any relabel,
// so a run on a given graph is fully deterministic.
type PushRelabel struct {
	g       *graph.Graph
	source  uint32
	target  uint32
	options Options

	arcBase  []uint32 // First arc id of each vertex; arc id = arcBase[u] + slot.
	arcOwner []uint32 // Arc id -> vertex.

	admissible  orderedSet // Arc ids.
	relabelable orderedSet // Vertex ids.
	admCount    []uint32   // Live admissible arcs per vertex.

	stats Stats
}

func newPushRelabel(g *graph.Graph, source, target uint32, options Options) *PushRelabel {
	enforce.ENFORCE(g.Normalized(), "push-relabel needs a normalized graph")
	pr := &PushRelabel{
		g:        g,
		source:   source,
		target:   target,
		options:  options,
		arcBase:  make([]uint32, g.NumVertices()),
		admCount: make([]uint32, g.NumVertices()),
	}
	arcs := uint32(0)
	for u := range g.Vertices {
		pr.arcBase[u] = arcs
		arcs += uint32(len(g.Vertices[u].Neighbors))
	}
	pr.arcOwner = make([]uint32, arcs)
	for u := range g.Vertices {
		for s := range g.Vertices[u].Neighbors {
			pr.arcOwner[pr.arcBase[u]+uint32(s)] = uint32(u)
		}
	}
	pr.admissible = newOrderedSet(int(arcs))
	pr.relabelable = newOrderedSet(g.NumVertices())
	return pr
}

func (pr *PushRelabel) arc(u, slot uint32) uint32 {
	return pr.arcBase[u] + slot
}

func (pr *PushRelabel) arcSlot(arc uint32) (u, slot uint32) {
	u = pr.arcOwner[arc]
	return u, arc - pr.arcBase[u]
}

// active vertices are the ones allowed to hold and discharge excess.
func (pr *PushRelabel) active(u uint32) bool {
	return u != pr.source && u != pr.target && !pr.g.Vertices[u].Leaf
}

// usable arcs are the ones the solver may push along or relabel against.
// Leaves cannot reach the target, so arcs into them are ignored.
func (pr *PushRelabel) usable(u, v uint32) bool {
	return u != v && !pr.g.Vertices[v].Leaf
}

func (pr *PushRelabel) isAdmissible(u, slot uint32) bool {
	vtx := &pr.g.Vertices[u]
	if vtx.Excess <= 0 || !pr.active(u) {
		return false
	}
	v := vtx.Neighbors[slot]
	if !pr.usable(u, v) {
		return false
	}
	return vtx.Label == pr.g.Vertices[v].Label+1 && pr.g.Residual(u, slot) > 0
}

func (pr *PushRelabel) insertAdmissible(u, slot uint32) {
	if pr.admissible.Insert(pr.arc(u, slot)) {
		pr.admCount[u]++
	}
}

func (pr *PushRelabel) removeAdmissible(u, slot uint32) {
	if pr.admissible.Remove(pr.arc(u, slot)) {
		pr.admCount[u]--
	}
}

// scanVertex inserts every admissible arc of u, then files u as relabelable if it found none.
func (pr *PushRelabel) scanVertex(u uint32) {
	vtx := &pr.g.Vertices[u]
	for s := range vtx.Neighbors {
		if pr.isAdmissible(u, uint32(s)) {
			pr.insertAdmissible(u, uint32(s))
		}
	}
	pr.updateRelabelable(u)
}

func (pr *PushRelabel) updateRelabelable(u uint32) {
	if pr.admCount[u] == 0 && pr.active(u) && pr.g.Vertices[u].Excess > 0 {
		pr.relabelable.Insert(u)
	} else {
		pr.relabelable.Remove(u)
	}
}

// moveFlow sends delta along (u, slot), cancelling flow on the mirror edge first.
func (pr *PushRelabel) moveFlow(u, slot uint32, delta int64) {
	v, ms := pr.g.MirrorSlot(u, slot)
	fwd := pr.g.ActiveEdge(u, slot)
	rev := pr.g.ActiveEdge(v, ms)
	cancel := utils.Min(delta, rev.Flow)
	rev.Flow -= cancel
	fwd.Flow += delta - cancel
	enforce.ENFORCE(fwd.Flow <= fwd.Capacity, "flow exceeds capacity on ", u, "->", v)
	pr.g.Vertices[u].Excess -= delta
	pr.g.Vertices[v].Excess += delta
}

func (pr *PushRelabel) initialize() {
	g := pr.g
	n := uint32(g.NumVertices())
	for u := range g.Vertices {
		vtx := &g.Vertices[u]
		vtx.Leaf = vtx.OutDegree() == 0 && uint32(u) != pr.target
	}
	g.Vertices[pr.source].Label = n

	// Saturate the source. Its own excess is not charged; it only counts flow that comes back.
	g.ForEachSlot(pr.source, func(slot uint32, v uint32, _ *graph.Slot) {
		if !pr.usable(pr.source, v) {
			return
		}
		if amount := g.Residual(pr.source, slot); amount > 0 {
			g.Vertices[pr.source].Excess += amount
			pr.moveFlow(pr.source, slot, amount)
		}
	})
	pr.recompute()
}

// recompute rebuilds both candidate sets by scanning every vertex in index order.
func (pr *PushRelabel) recompute() {
	pr.admissible.Clear()
	pr.relabelable.Clear()
	for u := range pr.admCount {
		pr.admCount[u] = 0
	}
	for u := range pr.g.Vertices {
		pr.scanVertex(uint32(u))
	}
}

// Push along an admissible arc.
func (pr *PushRelabel) Push(u, slot uint32) {
	g := pr.g
	enforce.ENFORCE(pr.admissible.Has(pr.arc(u, slot)) && pr.isAdmissible(u, slot), "push on non-admissible arc ", u, "/", slot)

	v := g.Vertices[u].Neighbors[slot]
	delta := utils.Min(g.Vertices[u].Excess, g.Residual(u, slot))
	vWasIdle := g.Vertices[v].Excess == 0
	pr.moveFlow(u, slot, delta)
	pr.stats.Pushes++
	log.Trace().Uint32("u", u).Uint32("v", v).Int64("delta", delta).Msg("push")

	if g.Vertices[u].Excess == 0 {
		for s := range g.Vertices[u].Neighbors {
			pr.removeAdmissible(u, uint32(s))
		}
		pr.relabelable.Remove(u)
	} else {
		// The arc is saturated.
		pr.removeAdmissible(u, slot)
		pr.updateRelabelable(u)
	}

	// The mirror arc v->u goes uphill, so only a newly active v can gain candidates.
	if vWasIdle && pr.active(v) {
		pr.scanVertex(v)
	}
}

// Relabel lifts u to one above its lowest residual neighbour.
func (pr *PushRelabel) Relabel(u uint32) {
	g := pr.g
	vtx := &g.Vertices[u]
	enforce.ENFORCE(pr.relabelable.Has(u) && pr.admCount[u] == 0 && vtx.Excess > 0 && pr.active(u), "relabel on non-relabelable vertex ", u)

	minLabel := uint32(math.MaxUint32)
	for s, v := range vtx.Neighbors {
		if pr.usable(u, v) && g.Residual(u, uint32(s)) > 0 {
			minLabel = utils.Min(minLabel, g.Vertices[v].Label)
		}
	}
	enforce.ENFORCE(minLabel != math.MaxUint32, "vertex ", u, " holds excess without a residual arc")
	newLabel := minLabel + 1
	enforce.ENFORCE(newLabel > vtx.Label, "relabel of ", u, " did not increase its label")
	enforce.ENFORCE(int(newLabel) < 2*g.NumVertices(), "label of ", u, " exceeds 2n-1")

	log.Trace().Uint32("u", u).Uint32("from", vtx.Label).Uint32("to", newLabel).Msg("relabel")
	vtx.Label = newLabel
	pr.stats.Relabels++
	pr.stats.MaxLabel = utils.Max(pr.stats.MaxLabel, newLabel)

	pr.relabelable.Remove(u)
	pr.scanVertex(u)

	// Arcs w->u that were admissible now point level or uphill.
	for s := range vtx.Neighbors {
		w, ws := g.MirrorSlot(u, uint32(s))
		if pr.admissible.Has(pr.arc(w, ws)) && !pr.isAdmissible(w, ws) {
			pr.removeAdmissible(w, ws)
			pr.updateRelabelable(w)
		}
	}
}

// Run discharges the preflow until no push or relabel applies. The flow value is then the target's excess.
func (pr *PushRelabel) Run() (value int64, err error) {
	pr.initialize()

	for {
		if arc, ok := pr.admissible.Front(); ok {
			pr.Push(pr.arcSlot(arc))
		} else if u, ok := pr.relabelable.Front(); ok {
			pr.Relabel(u)
		} else {
			break
		}
		if pr.options.MaxOperations > 0 && pr.stats.Operations() >= pr.options.MaxOperations && pr.hasWork() {
			return pr.g.Vertices[pr.target].Excess, ErrOperationLimit
		}
		if pr.options.FullRecompute {
			pr.recompute()
		}
	}

	for u := range pr.g.Vertices {
		if pr.active(uint32(u)) {
			enforce.ENFORCE(pr.g.Vertices[u].Excess == 0, "vertex ", u, " kept excess ", pr.g.Vertices[u].Excess)
		}
	}
	return pr.g.Vertices[pr.target].Excess, nil
}

func (pr *PushRelabel) hasWork() bool {
	_, ok := pr.admissible.Front()
	return ok || pr.relabelable.Len() > 0
}
