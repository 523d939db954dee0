package graph

import (
	"strconv"

	"github.com/ScottSallinen/mincut/enforce"
	"github.com/ScottSallinen/mincut/utils"
)

// SlotKind tags the two shapes an adjacency slot can take.
type SlotKind uint8

const (
	SingleEdge      SlotKind = 0
	AggregatedEdges SlotKind = 1
)

func (k SlotKind) String() string {
	switch k {
	case SingleEdge:
		return "Single"
	case AggregatedEdges:
		return "Aggregated"
	default:
		return "SlotKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Slot holds every edge from a vertex to one distinct neighbour.
// Members are in declaration order. For a SingleEdge slot, Aggregate is Members[0].
type Slot struct {
	Kind      SlotKind
	Members   []uint32
	Aggregate uint32
}

// Active is the edge the solver operates on.
func (s *Slot) Active() uint32 {
	if s.Kind == AggregatedEdges {
		return s.Aggregate
	}
	return s.Members[0]
}

// Edge: Capacity and Flow are kept within 0 <= Flow <= Capacity.
// Origin is false for mirror and aggregate edges synthesized during normalization.
type Edge struct {
	Src      uint32
	Dst      uint32
	Capacity int64
	Flow     int64
	Origin   bool
}

func (e *Edge) Residual() int64 {
	return e.Capacity - e.Flow
}

func (e Edge) String() string {
	return "{" + utils.V(e.Src) + "->" + utils.V(e.Dst) + " cap: " + utils.V(e.Capacity) +
		", flow: " + utils.V(e.Flow) + ", origin: " + utils.V(e.Origin) + "}"
}

type Vertex struct {
	Neighbors []uint32          // One entry per distinct neighbour, in order of first appearance.
	OutEdges  []Slot            // Parallel to Neighbors.
	NbrMap    map[uint32]uint32 // Neighbour -> slot.
	Excess    int64
	Label     uint32
	Leaf      bool

	outDegree uint32 // Original outgoing edges.
}

func (v *Vertex) String() string {
	return "{excess: " + utils.V(v.Excess) + ", label: " + utils.V(v.Label) + ", leaf: " + utils.V(v.Leaf) +
		", nbrs: " + utils.V(v.Neighbors) + "}"
}

// OutDegree is the number of outgoing edges the caller declared for this vertex.
func (v *Vertex) OutDegree() uint32 {
	return v.outDegree
}

// Graph is an arena of vertices and edges addressed by dense indices.
type Graph struct {
	Vertices []Vertex
	Edges    []Edge
	Directed bool

	numOrigin  uint32
	normalized bool
	mirror     [][]uint32 // mirror[u][slot] = slot of u in Neighbors[slot], filled by Normalize.
}

func New(numVertices uint32, directed bool) *Graph {
	g := &Graph{
		Vertices: make([]Vertex, numVertices),
		Directed: directed,
	}
	for i := range g.Vertices {
		g.Vertices[i].NbrMap = make(map[uint32]uint32)
	}
	return g
}

func (g *Graph) NumVertices() int {
	return len(g.Vertices)
}

func (g *Graph) NumEdges() int {
	return len(g.Edges)
}

// NumOriginEdges counts caller edges. Their indices are [0, NumOriginEdges).
func (g *Graph) NumOriginEdges() int {
	return int(g.numOrigin)
}

func (g *Graph) Normalized() bool {
	return g.normalized
}

func (g *Graph) Vertex(u uint32) *Vertex {
	enforce.InRange(u, len(g.Vertices), "vertex")
	return &g.Vertices[u]
}

func (g *Graph) Edge(e uint32) *Edge {
	enforce.InRange(e, len(g.Edges), "edge")
	return &g.Edges[e]
}

// AddEdge declares an edge u->v. On an undirected graph the opposing arc v->u is
// stored as a second origin edge right after it. Returns the index of the u->v edge.
func (g *Graph) AddEdge(u, v uint32, capacity int64) uint32 {
	enforce.ENFORCE(!g.normalized, "cannot add edges to a normalized graph")
	enforce.InRange(u, len(g.Vertices), "vertex")
	enforce.InRange(v, len(g.Vertices), "vertex")
	enforce.ENFORCE(capacity >= 0, "negative capacity ", capacity, " on ", u, "->", v)

	eidx := g.appendEdge(u, v, capacity, true)
	g.Vertices[u].outDegree++
	if !g.Directed && u != v {
		g.appendEdge(v, u, capacity, true)
		g.Vertices[v].outDegree++
	}
	return eidx
}

func (g *Graph) appendEdge(u, v uint32, capacity int64, origin bool) uint32 {
	eidx := uint32(len(g.Edges))
	g.Edges = append(g.Edges, Edge{Src: u, Dst: v, Capacity: capacity, Origin: origin})
	if origin {
		g.numOrigin++
	}
	vtx := &g.Vertices[u]
	slot, ok := vtx.NbrMap[v]
	if !ok {
		slot = uint32(len(vtx.Neighbors))
		vtx.NbrMap[v] = slot
		vtx.Neighbors = append(vtx.Neighbors, v)
		vtx.OutEdges = append(vtx.OutEdges, Slot{Kind: SingleEdge, Aggregate: eidx})
	}
	vtx.OutEdges[slot].Members = append(vtx.OutEdges[slot].Members, eidx)
	return eidx
}

func (g *Graph) SlotCount(u uint32) int {
	return len(g.Vertex(u).Neighbors)
}

func (g *Graph) Neighbor(u uint32, slot uint32) uint32 {
	vtx := g.Vertex(u)
	enforce.InRange(slot, len(vtx.Neighbors), "slot")
	return vtx.Neighbors[slot]
}

func (g *Graph) Slot(u uint32, slot uint32) *Slot {
	vtx := g.Vertex(u)
	enforce.InRange(slot, len(vtx.OutEdges), "slot")
	return &vtx.OutEdges[slot]
}

// ActiveEdge is the edge the solver pushes on for (u, slot).
func (g *Graph) ActiveEdge(u uint32, slot uint32) *Edge {
	return &g.Edges[g.Slot(u, slot).Active()]
}

// MirrorSlot returns the neighbour v behind (u, slot) and the slot of u within v.
// Every slot has a mirror once the graph is normalized.
func (g *Graph) MirrorSlot(u uint32, slot uint32) (v uint32, slotOfUInV uint32) {
	v = g.Neighbor(u, slot)
	if g.normalized {
		return v, g.mirror[u][slot]
	}
	slotOfUInV, ok := g.Vertices[v].NbrMap[u]
	enforce.ENFORCE(ok, "no mirror slot for ", u, "->", v)
	return v, slotOfUInV
}

// Residual of the arc (u, slot): room left on its active edge plus flow on the mirror that can be cancelled.
func (g *Graph) Residual(u uint32, slot uint32) int64 {
	v, ms := g.MirrorSlot(u, slot)
	return g.ActiveEdge(u, slot).Residual() + g.ActiveEdge(v, ms).Flow
}

// ForEachSlot calls f for every slot of u, in slot order.
func (g *Graph) ForEachSlot(u uint32, f func(slot uint32, v uint32, s *Slot)) {
	vtx := g.Vertex(u)
	for i := range vtx.OutEdges {
		f(uint32(i), vtx.Neighbors[i], &vtx.OutEdges[i])
	}
}

// ResetRun clears all per-run state (excess, labels, leaves, flows).
func (g *Graph) ResetRun() {
	for i := range g.Vertices {
		g.Vertices[i].Excess = 0
		g.Vertices[i].Label = 0
		g.Vertices[i].Leaf = false
	}
	for i := range g.Edges {
		g.Edges[i].Flow = 0
	}
}
