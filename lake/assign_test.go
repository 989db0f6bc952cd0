package lake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordonnier/peakgen/geo"
	"github.com/cordonnier/peakgen/rpgraph"
)

func buildTwoLakeFixture(t *testing.T) (rp, st *rpgraph.Graph, sea, a, b int) {
	t.Helper()
	rp = rpgraph.New()
	sea = rp.AddNode(geo.Coordinate{X: 0, Y: 0, SeaFactor: -1})
	a = rp.AddNode(geo.Coordinate{X: 1, Y: 0, SeaFactor: 1})
	b = rp.AddNode(geo.Coordinate{X: 2, Y: 0, SeaFactor: 1})
	rp.Node(sea).Height = 0
	rp.Node(a).Height = 5
	rp.Node(b).Height = 8
	rp.AddBidirectionalEdge(sea, a)
	rp.AddBidirectionalEdge(a, b)

	st = rp.Clone()
	st.AddDirectedEdge(a, sea)
	// b stays without an outbound edge: a second, land-rooted lake.
	return rp, st, sea, a, b
}

func TestAssignIDsTagsReverseClosure(t *testing.T) {
	rp, st, sea, a, b := buildTwoLakeFixture(t)

	sinkNode := AssignIDs(rp, st)
	require.Len(t, sinkNode, 2)

	assert.Equal(t, 0, rp.Node(sea).LakeID)
	assert.Equal(t, 0, rp.Node(a).LakeID)
	assert.Equal(t, 0, st.Node(a).LakeID)
	assert.Equal(t, 1, rp.Node(b).LakeID)
	assert.Equal(t, sea, sinkNode[0])
	assert.Equal(t, b, sinkNode[1])
}
