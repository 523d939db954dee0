package maxflow

import (
	"strconv"

	"github.com/ScottSallinen/mincut/graph"
	"github.com/pkg/errors"
)

// ErrOperationLimit is returned when Options.MaxOperations is reached before the flow is maximal.
var ErrOperationLimit = errors.New("operation limit reached")

// ValidationError reports an out of range source or target. Nothing was mutated; retry with corrected input.
type ValidationError struct {
	Role  string // "source" or "target"
	Index uint32
	Bound int // Number of vertices; valid indices are [0, Bound).
}

func (e *ValidationError) Error() string {
	return e.Role + " index " + strconv.FormatUint(uint64(e.Index), 10) +
		" out of range: valid indices are [0, " + strconv.Itoa(e.Bound) + ")"
}

func validate(g *graph.Graph, source, target uint32) error {
	n := g.NumVertices()
	if int(source) >= n {
		return &ValidationError{Role: "source", Index: source, Bound: n}
	}
	if int(target) >= n {
		return &ValidationError{Role: "target", Index: target, Bound: n}
	}
	return nil
}
