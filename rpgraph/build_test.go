package rpgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordonnier/peakgen/delaunay"
	"github.com/cordonnier/peakgen/geo"
	"github.com/cordonnier/peakgen/geology"
	"github.com/cordonnier/peakgen/provider"
)

// landSeaStub marks everything with x < 0 as ocean, x >= 0 as land with
// fixed mid-range factors.
func landSeaStub(size, lod int, seed int64) *provider.Func {
	return provider.NewFunc(size, lod, seed, func(x, y, maxSize float64) geo.Coordinate {
		x, y = provider.ClampCoord(x, y, maxSize)
		if x < 0 {
			return geo.Coordinate{X: x, Y: y, SeaFactor: -1}
		}
		return geo.Coordinate{X: x, Y: y, SeaFactor: 1, UpliftFactor: 0.5, SlopeFactor: 0.5}
	})
}

func TestBuildDiscardsBothSeaEdges(t *testing.T) {
	prov := landSeaStub(40, 10, 1)
	settings := geology.Default()

	pts := []geo.Coordinate{{X: -10, Y: -10}, {X: -10, Y: 10}, {X: -5, Y: 0}}
	tris, edges, err := delaunay.Build(pts, 20)
	require.NoError(t, err)

	g := Build(prov, settings, tris, edges)
	for _, idx := range g.Edges() {
		e := g.Edge(idx)
		from, to := g.Node(e.From), g.Node(e.To)
		assert.False(t, from.IsSea() && to.IsSea())
	}
}

func TestBuildPopulatesLandNodeFields(t *testing.T) {
	prov := landSeaStub(40, 10, 1)
	settings := geology.Default()

	pts := []geo.Coordinate{{X: 5, Y: 5}, {X: 8, Y: 2}, {X: 2, Y: 8}}
	tris, edges, err := delaunay.Build(pts, 20)
	require.NoError(t, err)

	g := Build(prov, settings, tris, edges)
	require.Greater(t, g.NodeCount(), 0)

	found := false
	for _, idx := range g.Nodes() {
		n := g.Node(idx)
		if n.IsSea() {
			continue
		}
		found = true
		assert.Greater(t, n.Uplift, 0.0)
		assert.Greater(t, n.MaxSlope, 0.0)
	}
	assert.True(t, found)
}

func TestBuildZeroesSeaNodeFields(t *testing.T) {
	prov := landSeaStub(40, 10, 1)
	settings := geology.Default()

	pts := []geo.Coordinate{{X: -10, Y: -10}, {X: -10, Y: 10}, {X: -5, Y: 0}, {X: -8, Y: 5}}
	tris, edges, err := delaunay.Build(pts, 20)
	require.NoError(t, err)

	g := Build(prov, settings, tris, edges)
	for _, idx := range g.Nodes() {
		n := g.Node(idx)
		if !n.IsSea() {
			continue
		}
		assert.Zero(t, n.Uplift)
		assert.Zero(t, n.MaxSlope)
		assert.Zero(t, n.LocalCatchmentArea)
	}
}
