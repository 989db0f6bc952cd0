package erosion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordonnier/peakgen/geo"
	"github.com/cordonnier/peakgen/geology"
	"github.com/cordonnier/peakgen/rpgraph"
)

func TestApplyThermalShockHeuristicPredeterminedMatchesScenario(t *testing.T) {
	settings := geology.Default()
	got := ApplyThermalShockHeuristicPredetermined(78.7, 100, 50, 10, 0.5, settings)
	assert.InDelta(t, 56.24869351909327, got, 1e-6)
}

func TestApplyThermalShockHeuristicNoClampWhenAlreadyLower(t *testing.T) {
	settings := geology.Default()
	got := ApplyThermalShockHeuristicPredetermined(78.7, 40, 50, 10, 0.5, settings)
	assert.Equal(t, 40.0, got)
}

// diamondFixture builds four land corners draining into a central sea
// node, mirroring spec.md §8's S1 scenario.
func diamondFixture(t *testing.T) (rp, st *rpgraph.Graph, sea int, corners []int) {
	t.Helper()
	rp = rpgraph.New()
	sea = rp.AddNode(geo.Coordinate{X: 0, Y: 0, SeaFactor: -1})
	coords := []geo.Coordinate{
		{X: 1, Y: 0, SeaFactor: 1, UpliftFactor: 0.5, SlopeFactor: 0.5},
		{X: -1, Y: 0, SeaFactor: 1, UpliftFactor: 0.5, SlopeFactor: 0.5},
		{X: 0, Y: 1, SeaFactor: 1, UpliftFactor: 0.5, SlopeFactor: 0.5},
		{X: 0, Y: -1, SeaFactor: 1, UpliftFactor: 0.5, SlopeFactor: 0.5},
	}
	settings := geology.Default()
	for _, c := range coords {
		idx := rp.AddNode(c)
		rp.Node(idx).Uplift = geo.Lerp(settings.MinUplift, settings.MaxUplift, c.UpliftFactor)
		rp.Node(idx).MaxSlope = geo.Lerp(settings.MinSlopeRad, settings.MaxSlopeRad, c.SlopeFactor)
		rp.Node(idx).LocalCatchmentArea = 1
		rp.AddBidirectionalEdge(idx, sea)
		corners = append(corners, idx)
	}

	st = rp.Clone()
	for _, c := range corners {
		st.AddDirectedEdge(c, sea)
	}
	return rp, st, sea, corners
}

func TestProcessRaisesCornersAndKeepsSeaAtZero(t *testing.T) {
	rp, st, sea, corners := diamondFixture(t)
	settings := geology.Default()

	maxHeight, err := Process(rp, st, settings)
	require.NoError(t, err)

	assert.Zero(t, rp.Node(sea).Height)
	for _, c := range corners {
		assert.Greater(t, rp.Node(c).Height, 0.0)
	}
	assert.Greater(t, maxHeight, 0.0)
}

func TestProcessAccumulatesCatchmentUpstream(t *testing.T) {
	rp, st, sea, corners := diamondFixture(t)
	settings := geology.Default()

	_, err := Process(rp, st, settings)
	require.NoError(t, err)

	var sum float64
	for _, c := range corners {
		sum += rp.Node(c).LocalCatchmentArea
	}
	assert.InDelta(t, sum, rp.Node(sea).TotalCatchmentArea(), 1e-9)
}

func TestProcessFailsWhenStreamTreeNodeLacksUniqueDownstream(t *testing.T) {
	rp := rpgraph.New()
	land := rp.AddNode(geo.Coordinate{X: 0, Y: 0, SeaFactor: 1})
	other := rp.AddNode(geo.Coordinate{X: 1, Y: 0, SeaFactor: 1})
	rp.AddBidirectionalEdge(land, other)
	st := rp.Clone()
	// Neither node gets a stream-tree edge; both are sinks but land is
	// not sea, violating the single-downstream-edge invariant.

	_, err := Process(rp, st, geology.Default())
	assert.ErrorIs(t, err, ErrNotSingleDownstream)
}
