// Package pathdetail partitions a path's edges into maximal contiguous
// runs sharing some attribute (speed, street name, edge id, ...). It
// has no teacher equivalent; it is written in the edge-walk style
// pkg/guidance already uses, with one small Builder policy object per
// detail key instead of pkg/guidance's single state machine, since each
// detail key partitions independently of the others.
package pathdetail

import (
	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/weighting"
)

// PathDetail is one run: value holds over the point range [First,
// Last], Last being the index of the run's final point (the adjacent
// node of its last edge), which is also the First of the run after it,
// matching the guidance package's Instruction.FirstPoint/LastPoint
// convention.
// Value is nil when a Builder cannot assign the run a concrete value,
// which AverageSpeedBuilder does for the leading run of a
// reverse-traversed path (see its doc comment).
type PathDetail struct {
	Value interface{}
	First int
	Last  int
}

// Builder decides, edge by edge, what a run's value is and whether a
// given edge extends the currently open run. Index i is edges[i]'s
// position in the full sequence, letting a Builder look at neighbors
// (the intersection builder needs the previous edge; most don't).
// reverse reports whether edges was produced by walking a path
// backwards from its natural traversal order; only AverageSpeedBuilder
// cares, but every Builder takes it so Accumulate has one signature.
// Value may return nil to mean "undefined for this run" (cur in
// SameRun is then nil too, and must be handled rather than
// type-asserted blindly).
type Builder interface {
	Value(facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) interface{}
	SameRun(cur interface{}, facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, i int, reverse bool) bool
}

// Accumulate walks edges once, producing the runs b's policy implies.
// firstPoint is the point index edges[0] begins at (ordinarily 0).
// reverse must be true when edges has already been reordered to read
// from the end of some originally-computed path back to its start;
// forward callers pass false.
func Accumulate(facade graph.Facade, w weighting.Weighting, edges []graph.DirectedEdgeView, firstPoint int, reverse bool, b Builder) []PathDetail {
	if len(edges) == 0 {
		return nil
	}

	var out []PathDetail
	point := firstPoint
	var run PathDetail
	open := false

	for i, e := range edges {
		next := point + 1 + len(e.Geometry())
		switch {
		case !open:
			run = PathDetail{Value: b.Value(facade, w, edges, i, reverse), First: point, Last: next}
			open = true
		case b.SameRun(run.Value, facade, w, edges, i, reverse):
			run.Last = next
		default:
			out = append(out, run)
			run = PathDetail{Value: b.Value(facade, w, edges, i, reverse), First: point, Last: next}
		}
		point = next
	}
	out = append(out, run)
	return out
}
