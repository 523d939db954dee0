package common

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ScottSallinen/mincut/graph"
	"github.com/ScottSallinen/mincut/maxflow"
	"github.com/ScottSallinen/mincut/utils"
	"github.com/pkg/errors"
)

func ExtractGraphName(graphFilename string) (graphName string) {
	gNameMainT := strings.Split(graphFilename, "/")
	gNameMain := gNameMainT[len(gNameMainT)-1]
	gNameMainTD := strings.Split(gNameMain, ".")
	if len(gNameMainTD) > 1 {
		return gNameMainTD[len(gNameMainTD)-2]
	} else {
		return gNameMainTD[0]
	}
}

func ResultFilename(graphName string) string {
	return "results/" + graphName + "-mincut.txt"
}

// WriteResult writes the flow value, the source side and every original edge as
// "src dst capacity flow [cut]", with vertices given by their raw identifiers.
func WriteResult(filename string, g *graph.Graph, vm *graph.VertexMap, res *maxflow.Result) error {
	f, err := utils.CreateFile(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	cut := make(map[uint32]bool, len(res.CutEdges))
	for _, e := range res.CutEdges {
		cut[e] = true
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# value %d\n", res.Value)
	fmt.Fprintf(w, "# source side")
	for _, v := range res.SourceComp {
		fmt.Fprintf(w, " %d", vm.ToRaw[v])
	}
	fmt.Fprintln(w)

	for eidx := 0; eidx < g.NumEdges(); eidx++ {
		e := g.Edge(uint32(eidx))
		if !e.Origin {
			continue
		}
		fmt.Fprintf(w, "%d %d %d %d", vm.ToRaw[e.Src], vm.ToRaw[e.Dst], e.Capacity, res.Flow[uint32(eidx)])
		if cut[uint32(eidx)] {
			fmt.Fprint(w, " cut")
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	return nil
}
