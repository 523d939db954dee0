package graph

import (
	"flag"
	"os"

	"github.com/ScottSallinen/mincut/utils"
	"github.com/rs/zerolog/log"
)

type GraphOptions struct {
	Name             string // Name of the input graph.
	DebugLevel       uint8  // If non-zero, will print extra debug information. 1 for debug, 2 adds per-operation traces.
	Undirected       bool   // Declares if the graph should be treated as undirected (every line adds a pair of opposing arcs).
	Transpose        bool   // Declares if the graph should transposed during construction (reverses src/dst of edges).
	CheckCorrectness bool   // If true, the result is verified (feasibility, conservation, duality, cut validity) before reporting.
	WriteResult      bool   // If true, will write the flow and the cut to disk at the end.
}

// Declare your own flags before you call this function.
func FlagsToOptions() (graphOptions GraphOptions) {
	graphPtr := flag.String("g", "", "Graph file. One edge per line: src dst [capacity]. Lines starting with # or % are ignored.")
	undirectedPtr := flag.Bool("u", false, "Interpret the input graph as undirected (each line is an edge usable in both directions).")
	transposePtr := flag.Bool("tr", false, "Interpret the input graph edges in reverse (flip src and dst). This transposes the resultant graph.")
	checkPtr := flag.Bool("c", false, "Check correctness of the flow and the cut after execution.")
	propPtr := flag.Bool("p", false, "Save the flow of every edge and the cut to disk at the end.")
	debugPtr := flag.Int("debug", 0, "Adds extra debug output. Level 0 for info, 1 for debug, 2 adds per push/relabel traces.")
	colourPtr := flag.Bool("nc", false, "Removes the colouring from the log output.")
	flag.Parse()

	if *colourPtr {
		utils.SetLoggerConsole(true)
	}
	utils.SetLevel(*debugPtr)

	if *graphPtr == "" {
		flag.Usage()
		os.Exit(1)
	}
	if *debugPtr < 0 {
		log.Panic().Msg("Invalid debug level.")
	}

	graphOptions = GraphOptions{
		Name:             *graphPtr,
		DebugLevel:       uint8(*debugPtr),
		Undirected:       *undirectedPtr,
		Transpose:        *transposePtr,
		CheckCorrectness: *checkPtr,
		WriteResult:      *propPtr,
	}
	return graphOptions
}
