package pathdetail_test

import (
	"testing"

	"github.com/kairoute/turnguide/pkg/graph"
	"github.com/kairoute/turnguide/pkg/graphtest"
	"github.com/kairoute/turnguide/pkg/pathdetail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageSpeedBuilderCoalescesEqualSpeeds(t *testing.T) {
	f := graphtest.NewFixture()
	w := graphtest.NewFlatWeighting()
	n0 := f.AddNode(0, 0)
	n1 := f.AddNode(0, 0.01)
	n2 := f.AddNode(0, 0.02)
	n3 := f.AddNode(0, 0.03)
	e0 := f.AddEdge(n0, n1, graphtest.EdgeSpec{Distance: 100, SpeedAB: 50, SpeedBA: 50})
	e1 := f.AddEdge(n1, n2, graphtest.EdgeSpec{Distance: 100, SpeedAB: 50, SpeedBA: 50})
	e2 := f.AddEdge(n2, n3, graphtest.EdgeSpec{Distance: 100, SpeedAB: 30, SpeedBA: 30})

	path := []graph.DirectedEdgeView{
		mustEdge(t, f, e0, n0),
		mustEdge(t, f, e1, n1),
		mustEdge(t, f, e2, n2),
	}

	runs := pathdetail.Accumulate(f, w, path, 0, false, pathdetail.AverageSpeedBuilder{})
	require.Len(t, runs, 2)
	assert.Equal(t, 50.0, runs[0].Value)
	assert.Equal(t, 0, runs[0].First)
	assert.Equal(t, 30.0, runs[1].Value)
}

func TestAverageSpeedBuilderAbsorbsShortEdge(t *testing.T) {
	f := graphtest.NewFixture()
	w := graphtest.NewFlatWeighting()
	n0 := f.AddNode(0, 0)
	n1 := f.AddNode(0, 0.01)
	n2 := f.AddNode(0, 0.0101)
	n3 := f.AddNode(0, 0.03)
	e0 := f.AddEdge(n0, n1, graphtest.EdgeSpec{Distance: 100, SpeedAB: 50, SpeedBA: 50})
	e1 := f.AddEdge(n1, n2, graphtest.EdgeSpec{Distance: 0.5, SpeedAB: 10, SpeedBA: 10})
	e2 := f.AddEdge(n2, n3, graphtest.EdgeSpec{Distance: 100, SpeedAB: 50, SpeedBA: 50})

	path := []graph.DirectedEdgeView{
		mustEdge(t, f, e0, n0),
		mustEdge(t, f, e1, n1),
		mustEdge(t, f, e2, n2),
	}

	runs := pathdetail.Accumulate(f, w, path, 0, false, pathdetail.AverageSpeedBuilder{})
	require.Len(t, runs, 1)
	assert.Equal(t, 50.0, runs[0].Value)
}

func TestAverageSpeedBuilderReversePathHasNullFirstValue(t *testing.T) {
	f := graphtest.NewFixture()
	w := graphtest.NewFlatWeighting()
	n0 := f.AddNode(0, 0)
	n1 := f.AddNode(0, 0.01)
	n2 := f.AddNode(0, 0.02)
	e0 := f.AddEdge(n0, n1, graphtest.EdgeSpec{Distance: 100, SpeedAB: 50, SpeedBA: 50})
	e1 := f.AddEdge(n1, n2, graphtest.EdgeSpec{Distance: 100, SpeedAB: 50, SpeedBA: 50})

	forward := []graph.DirectedEdgeView{mustEdge(t, f, e0, n0), mustEdge(t, f, e1, n1)}
	runs := pathdetail.Accumulate(f, w, forward, 0, false, pathdetail.AverageSpeedBuilder{})
	require.Len(t, runs, 1)
	assert.Equal(t, 50.0, runs[0].Value)

	reverse := []graph.DirectedEdgeView{mustEdge(t, f, e1, n2), mustEdge(t, f, e0, n1)}
	reversedRuns := pathdetail.Accumulate(f, w, reverse, 0, true, pathdetail.AverageSpeedBuilder{})
	require.Len(t, reversedRuns, 2)
	assert.Nil(t, reversedRuns[0].Value)
	assert.Equal(t, 50.0, reversedRuns[1].Value)
}

func TestStreetNameBuilderSplitsOnRename(t *testing.T) {
	f := graphtest.NewFixture()
	w := graphtest.NewFlatWeighting()
	n0 := f.AddNode(0, 0)
	n1 := f.AddNode(0, 0.01)
	n2 := f.AddNode(0, 0.02)
	e0 := f.AddEdge(n0, n1, graphtest.EdgeSpec{Name: "First Ave", Distance: 100, SpeedAB: 50, SpeedBA: 50})
	e1 := f.AddEdge(n1, n2, graphtest.EdgeSpec{Name: "Second Ave", Distance: 100, SpeedAB: 50, SpeedBA: 50})

	path := []graph.DirectedEdgeView{mustEdge(t, f, e0, n0), mustEdge(t, f, e1, n1)}

	runs := pathdetail.Accumulate(f, w, path, 0, false, pathdetail.StreetNameBuilder{})
	require.Len(t, runs, 2)
	assert.Equal(t, "First Ave", runs[0].Value)
	assert.Equal(t, "Second Ave", runs[1].Value)
	assert.Equal(t, runs[0].Last, runs[1].First)
}

func TestEdgeIDBuilderNeverCoalesces(t *testing.T) {
	f := graphtest.NewFixture()
	w := graphtest.NewFlatWeighting()
	n0 := f.AddNode(0, 0)
	n1 := f.AddNode(0, 0.01)
	n2 := f.AddNode(0, 0.02)
	e0 := f.AddEdge(n0, n1, graphtest.EdgeSpec{Distance: 100, SpeedAB: 50, SpeedBA: 50})
	e1 := f.AddEdge(n1, n2, graphtest.EdgeSpec{Distance: 100, SpeedAB: 50, SpeedBA: 50})

	path := []graph.DirectedEdgeView{mustEdge(t, f, e0, n0), mustEdge(t, f, e1, n1)}

	runs := pathdetail.Accumulate(f, w, path, 0, false, pathdetail.EdgeIDBuilder{})
	require.Len(t, runs, 2)
	assert.Equal(t, e0, runs[0].Value)
	assert.Equal(t, e1, runs[1].Value)
}

func TestIntersectionBuilderMarksOutAndInByBearing(t *testing.T) {
	f := graphtest.NewFixture()
	w := graphtest.NewFlatWeighting()

	// A 4-way junction at n1: approach from the west (n0), continue
	// east (n2), a north branch (n3) and a south branch (n4).
	n0 := f.AddNode(0, -0.01)
	n1 := f.AddNode(0, 0)
	n2 := f.AddNode(0, 0.01)
	n3 := f.AddNode(0.01, 0)
	n4 := f.AddNode(-0.01, 0)

	e0 := f.AddEdge(n0, n1, graphtest.EdgeSpec{Name: "Main St", Distance: 100, SpeedAB: 50, SpeedBA: 50})
	eEast := f.AddEdge(n1, n2, graphtest.EdgeSpec{Name: "Main St", Distance: 100, SpeedAB: 50, SpeedBA: 50})
	f.AddEdge(n1, n3, graphtest.EdgeSpec{Name: "North St", Distance: 100, SpeedAB: 50, SpeedBA: 50})
	f.AddEdge(n1, n4, graphtest.EdgeSpec{Name: "South St", Distance: 100, SpeedAB: 50, SpeedBA: 50})

	path := []graph.DirectedEdgeView{mustEdge(t, f, e0, n0), mustEdge(t, f, eEast, n1)}

	runs := pathdetail.Accumulate(f, w, path, 0, false, pathdetail.IntersectionBuilder{})
	require.Len(t, runs, 2)

	first := runs[0].Value.(pathdetail.Intersection)
	assert.False(t, first.HasIn)

	second := runs[1].Value.(pathdetail.Intersection)
	require.True(t, second.HasIn)
	require.Len(t, second.Bearings, 4)
	// bearings ascend from the sort; out/in both point at valid, distinct alternatives.
	assert.GreaterOrEqual(t, second.Out, 0)
	assert.GreaterOrEqual(t, second.In, 0)
	assert.NotEqual(t, second.Out, second.In)
	for i := 1; i < len(second.Bearings); i++ {
		assert.LessOrEqual(t, second.Bearings[i-1], second.Bearings[i])
	}
}

func mustEdge(t *testing.T, f *graphtest.Fixture, id, base int32) graph.DirectedEdgeView {
	t.Helper()
	v, err := f.EdgeByID(id, base)
	require.NoError(t, err)
	return v
}
