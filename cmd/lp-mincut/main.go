package main

import (
	"flag"

	"github.com/ScottSallinen/mincut/cmd/common"
	"github.com/ScottSallinen/mincut/graph"
	"github.com/ScottSallinen/mincut/maxflow"
	"github.com/ScottSallinen/mincut/utils"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

func main() {
	sourceId := flag.Int64("S", -1, "Source vertex (raw id).")
	sinkId := flag.Int64("T", -1, "Sink vertex (raw id).")
	fullPtr := flag.Bool("full", false, "Rebuild the candidate sets with a full scan after every operation (slow; for comparison).")
	capPtr := flag.Uint64("cap", 0, "Give up after this many push and relabel operations. 0 is unbounded.")
	graphOptions := graph.FlagsToOptions()

	if *sourceId < 0 || *sinkId < 0 {
		log.Fatal().Msg("Both -S and -T must be given.")
	}

	g, vm, err := graph.LoadGraph(graphOptions)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load graph")
	}
	source, ok := vm.Internal(graph.RawType(*sourceId))
	if !ok {
		log.Fatal().Int64("S", *sourceId).Msg("Source vertex does not appear in the graph")
	}
	sink, ok := vm.Internal(graph.RawType(*sinkId))
	if !ok {
		log.Fatal().Int64("T", *sinkId).Msg("Sink vertex does not appear in the graph")
	}
	log.Info().Msg("Loaded " + humanize.Comma(int64(g.NumVertices())) + " vertices, " +
		humanize.Comma(int64(g.NumOriginEdges())) + " edges")

	options := maxflow.Options{
		FullRecompute:    *fullPtr,
		MaxOperations:    *capPtr,
		CheckCorrectness: graphOptions.CheckCorrectness,
	}
	res, err := maxflow.Run(g, source, sink, options)
	if err != nil {
		log.Fatal().Err(err).Msg("Max flow failed")
	}

	log.Info().Msg("Maximum flow is " + humanize.Comma(res.Value))
	log.Info().Msg("Minimum cut has " + humanize.Comma(int64(len(res.CutEdges))) + " edges, source side has " +
		humanize.Comma(int64(len(res.SourceComp))) + " vertices")
	log.Info().Msg("Pushes " + humanize.Comma(int64(res.Stats.Pushes)) + ", relabels " +
		humanize.Comma(int64(res.Stats.Relabels)) + ", solve time (ms) " + utils.V(res.Stats.SolveTime.Milliseconds()))
	if graphOptions.CheckCorrectness {
		log.Info().Msg("Result checked: capacity, conservation and cut duality hold")
	}
	if graphOptions.DebugLevel > 0 {
		utils.MemoryStats()
	}

	if graphOptions.WriteResult {
		filename := common.ResultFilename(common.ExtractGraphName(graphOptions.Name))
		if err := common.WriteResult(filename, g, vm, res); err != nil {
			log.Fatal().Err(err).Msg("Failed to write result")
		}
		log.Info().Msg("Wrote " + filename)
	}
}
