package maxflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes, used as the "outcome" label of runsTotal.
const (
	outcomeSolved     = "solved"
	outcomeDegenerate = "degenerate"
	outcomeInvalid    = "invalid"
	outcomeLimit      = "limit"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mincut_runs_total",
		Help: "Cumulative number of max-flow / min-cut runs, by outcome.",
	}, []string{"outcome"})
	pushesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mincut_pushes_total",
		Help: "Cumulative number of push operations performed.",
	})
	relabelsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mincut_relabels_total",
		Help: "Cumulative number of relabel operations performed.",
	})
	runSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mincut_run_seconds",
		Help:    "Wall time of a run, from normalization to the extracted cut.",
		Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
	})
)

func recordRun(outcome string, stats *Stats) {
	runsTotal.WithLabelValues(outcome).Inc()
	if stats == nil {
		return
	}
	pushesTotal.Add(float64(stats.Pushes))
	relabelsTotal.Add(float64(stats.Relabels))
	runSeconds.Observe((stats.NormalizeTime + stats.SolveTime + stats.ExtractTime).Seconds())
}
