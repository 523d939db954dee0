package graph

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/ScottSallinen/mincut/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// RawType is the identifier a vertex has in the input file.
type RawType uint64

const DEFAULT_CAPACITY = 1

type RawEdge struct {
	SrcRaw   RawType
	DstRaw   RawType
	Capacity int64
}

// VertexMap translates between raw identifiers and dense internal indices.
type VertexMap struct {
	ToInternal map[RawType]uint32
	ToRaw      []RawType
}

func NewVertexMap() *VertexMap {
	return &VertexMap{ToInternal: make(map[RawType]uint32)}
}

// Insert returns the internal index of raw, assigning the next one if unseen.
func (vm *VertexMap) Insert(raw RawType) uint32 {
	if idx, ok := vm.ToInternal[raw]; ok {
		return idx
	}
	idx := uint32(len(vm.ToRaw))
	vm.ToInternal[raw] = idx
	vm.ToRaw = append(vm.ToRaw, raw)
	return idx
}

func (vm *VertexMap) Internal(raw RawType) (uint32, bool) {
	idx, ok := vm.ToInternal[raw]
	return idx, ok
}

// ParseEdgeLine parses "src dst [capacity]". Returns ok == false for blank or comment lines.
func ParseEdgeLine(line string) (re RawEdge, ok bool, err error) {
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
		return re, false, nil
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return re, false, nil
	}
	if len(fields) < 2 || len(fields) > 3 {
		return re, false, errors.Errorf("expected 2 or 3 fields, got %d", len(fields))
	}
	src, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return re, false, errors.Wrap(err, "parsing source")
	}
	dst, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return re, false, errors.Wrap(err, "parsing destination")
	}
	re = RawEdge{SrcRaw: RawType(src), DstRaw: RawType(dst), Capacity: DEFAULT_CAPACITY}
	if len(fields) == 3 {
		if re.Capacity, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
			return re, false, errors.Wrap(err, "parsing capacity")
		}
		if re.Capacity < 0 {
			return re, false, errors.Errorf("negative capacity %d", re.Capacity)
		}
	}
	return re, true, nil
}

// ReadEdgeList builds a graph from an edge list. Vertices are numbered in order of first appearance.
func ReadEdgeList(r io.Reader, directed bool) (*Graph, *VertexMap, error) {
	return readEdgeList(r, directed, false)
}

func readEdgeList(r io.Reader, directed bool, transpose bool) (*Graph, *VertexMap, error) {
	vm := NewVertexMap()
	var edges []RawEdge

	scanner := bufio.NewScanner(r)
	lines := 0
	for scanner.Scan() {
		lines++
		re, ok, err := ParseEdgeLine(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "line %d", lines)
		} else if !ok {
			continue
		}
		if transpose {
			re.SrcRaw, re.DstRaw = re.DstRaw, re.SrcRaw
		}
		vm.Insert(re.SrcRaw)
		vm.Insert(re.DstRaw)
		edges = append(edges, re)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading edge list")
	}

	g := New(uint32(len(vm.ToRaw)), directed)
	for _, re := range edges {
		g.AddEdge(vm.ToInternal[re.SrcRaw], vm.ToInternal[re.DstRaw], re.Capacity)
	}
	return g, vm, nil
}

// LoadGraph reads the graph file named by the options.
func LoadGraph(options GraphOptions) (*Graph, *VertexMap, error) {
	return loadEdgeList(options.Name, !options.Undirected, options.Transpose)
}

func loadEdgeList(path string, directed bool, transpose bool) (*Graph, *VertexMap, error) {
	file, err := utils.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	watch := utils.Watch{}
	watch.Start()
	g, vm, err := readEdgeList(file, directed, transpose)
	if err != nil {
		return nil, nil, errors.WithMessagef(err, "loading %s", path)
	}
	log.Debug().Msg("Read " + utils.V(g.NumOriginEdges()) + " edges over " + utils.V(g.NumVertices()) +
		" vertices in (ms) " + utils.V(watch.Elapsed().Milliseconds()))
	return g, vm, nil
}
