package rpgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordonnier/peakgen/geo"
)

func TestAddNodeDedupesByCoordinate(t *testing.T) {
	g := New()
	a := g.AddNode(geo.Coordinate{X: 1, Y: 2})
	b := g.AddNode(geo.Coordinate{X: 1, Y: 2})
	assert.Equal(t, a, b)
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddBidirectionalEdgeLinksSym(t *testing.T) {
	g := New()
	u := g.AddNode(geo.Coordinate{X: 0, Y: 0})
	v := g.AddNode(geo.Coordinate{X: 1, Y: 0})

	fwd, rev := g.AddBidirectionalEdge(u, v)

	require.Equal(t, rev, g.Edge(fwd).Sym)
	require.Equal(t, fwd, g.Edge(rev).Sym)
	assert.Equal(t, u, g.Edge(fwd).From)
	assert.Equal(t, v, g.Edge(fwd).To)
	assert.Equal(t, v, g.Edge(rev).From)
	assert.Equal(t, u, g.Edge(rev).To)

	assert.Contains(t, g.Node(u).Out, fwd)
	assert.Contains(t, g.Node(v).Out, rev)
	assert.Contains(t, g.Node(v).In, u)
	assert.Contains(t, g.Node(u).In, v)
}

func TestOutEdgesSortedByBearing(t *testing.T) {
	g := New()
	center := g.AddNode(geo.Coordinate{X: 0, Y: 0})
	east := g.AddNode(geo.Coordinate{X: 1, Y: 0})
	north := g.AddNode(geo.Coordinate{X: 0, Y: 1})
	west := g.AddNode(geo.Coordinate{X: -1, Y: 0})

	// Insert out of bearing order; adjacency must end up sorted anyway.
	g.AddDirectedEdge(center, north)
	g.AddDirectedEdge(center, west)
	g.AddDirectedEdge(center, east)

	out := g.Node(center).Out
	require.Len(t, out, 3)
	var bearings []float64
	for _, e := range out {
		bearings = append(bearings, g.Edge(e).Bearing)
	}
	assert.IsIncreasing(t, bearings)
}

func TestSinksReportsNodesWithNoOutboundEdges(t *testing.T) {
	g := New()
	a := g.AddNode(geo.Coordinate{X: 0, Y: 0})
	b := g.AddNode(geo.Coordinate{X: 1, Y: 0})
	g.AddDirectedEdge(a, b)

	assert.ElementsMatch(t, []int{b}, g.Sinks())
}

func TestCloneSnapshotsNodesWithoutEdges(t *testing.T) {
	g := New()
	a := g.AddNode(geo.Coordinate{X: 0, Y: 0})
	b := g.AddNode(geo.Coordinate{X: 1, Y: 0})
	g.AddBidirectionalEdge(a, b)
	g.Node(a).Height = 42
	g.Node(a).UpstreamCatchmentArea = 7

	clone := g.Clone()
	assert.Equal(t, g.NodeCount(), clone.NodeCount())
	assert.Equal(t, 0, clone.EdgeCount())
	assert.Equal(t, 42.0, clone.Node(a).Height)
	assert.Equal(t, 0.0, clone.Node(a).UpstreamCatchmentArea)
	assert.Equal(t, NoLake, clone.Node(a).LakeID)
	assert.Empty(t, clone.Node(a).Out)

	idx, ok := clone.Lookup(geo.Coordinate{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, a, idx)
}

func TestReverseEdgeFlipsEndpointsAndAdjacency(t *testing.T) {
	g := New()
	a := g.AddNode(geo.Coordinate{X: 0, Y: 0})
	b := g.AddNode(geo.Coordinate{X: 1, Y: 0})
	edgeIdx := g.AddDirectedEdge(a, b)

	g.ReverseEdge(edgeIdx)

	e := g.Edge(edgeIdx)
	assert.Equal(t, b, e.From)
	assert.Equal(t, a, e.To)
	assert.Contains(t, g.Node(b).Out, edgeIdx)
	assert.NotContains(t, g.Node(a).Out, edgeIdx)
	assert.Contains(t, g.Node(a).In, b)
	assert.NotContains(t, g.Node(b).In, a)
}

func TestClearDropsEverything(t *testing.T) {
	g := New()
	a := g.AddNode(geo.Coordinate{X: 0, Y: 0})
	b := g.AddNode(geo.Coordinate{X: 1, Y: 0})
	g.AddBidirectionalEdge(a, b)

	g.Clear()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	_, ok := g.Lookup(geo.Coordinate{X: 0, Y: 0})
	assert.False(t, ok)
}
