// Package maxflow computes a maximum flow and a minimum s-t cut with the push-relabel algorithm.
//
// A run normalizes the caller's graph in place (mirror arcs, aggregated parallel edges), discharges
// a preflow, reassigns aggregate flow to the original parallel edges, and extracts the source side
// of the residual graph. Runs are single threaded; the graph must not be shared while Run executes.
package maxflow

import (
	"github.com/ScottSallinen/mincut/enforce"
	"github.com/ScottSallinen/mincut/graph"
	"github.com/ScottSallinen/mincut/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Run computes the maximum flow from source to target and a corresponding minimum cut.
// An out of range source or target gives a *ValidationError, before anything is mutated.
// Source equal to target, or a source without outgoing edges, gives a zero flow with an empty cut.
func Run(g *graph.Graph, source, target uint32, options Options) (*Result, error) {
	if err := validate(g, source, target); err != nil {
		recordRun(outcomeInvalid, nil)
		return nil, err
	}

	res := &Result{}
	watch := utils.Watch{}
	watch.Start()

	if !g.Normalized() {
		res.Stats.Normalize = g.Normalize()
	}
	g.ResetRun()
	res.Stats.NormalizeTime = watch.Lap()

	if source == target || g.Vertex(source).OutDegree() == 0 {
		res.Stats.Degenerate = true
		res.Flow = reconcileFlows(g)
		res.SourceComp = []uint32{source}
		res.CutEdges = []uint32{}
		recordRun(outcomeDegenerate, &res.Stats)
		log.Debug().Uint32("source", source).Uint32("target", target).Msg("Degenerate input, zero flow")
		return res, nil
	}

	pr := newPushRelabel(g, source, target, options)
	value, err := pr.Run()
	res.Stats = mergeSolveStats(res.Stats, pr.stats)
	res.Stats.SolveTime = watch.Lap()
	if err != nil {
		recordRun(outcomeLimit, &res.Stats)
		return nil, errors.Wrapf(err, "after %d operations (flow so far %d)", res.Stats.Operations(), value)
	}

	res.Value = value
	res.Flow = reconcileFlows(g)
	res.SourceComp, res.CutEdges = extractCut(g, source)
	res.Stats.ExtractTime = watch.Lap()

	if options.CheckCorrectness {
		watch.Pause()
		enforce.ENFORCE(CheckResult(g, source, target, res), "result failed its correctness check")
		watch.UnPause()
		active := watch.Elapsed()
		res.Stats.CheckTime = watch.AbsoluteElapsed() - active
	}

	recordRun(outcomeSolved, &res.Stats)
	log.Debug().Int64("value", res.Value).
		Uint64("pushes", res.Stats.Pushes).Uint64("relabels", res.Stats.Relabels).
		Int("cutEdges", len(res.CutEdges)).Int("sourceSide", len(res.SourceComp)).
		Dur("normalize", res.Stats.NormalizeTime).Dur("solve", res.Stats.SolveTime).Dur("extract", res.Stats.ExtractTime).
		Dur("total", watch.Elapsed()).Dur("check", res.Stats.CheckTime).
		Msg("Max flow computed")
	return res, nil
}

func mergeSolveStats(into Stats, solve Stats) Stats {
	into.Pushes = solve.Pushes
	into.Relabels = solve.Relabels
	into.MaxLabel = solve.MaxLabel
	return into
}
