package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordonnier/peakgen/geo"
	"github.com/cordonnier/peakgen/geology"
	"github.com/cordonnier/peakgen/provider"
)

// islandStub reproduces spec.md §8's S3 land/sea layout: a channel and
// a border ring of ocean separating a small island from the mainland.
func islandStub(seed int64) *provider.Func {
	return provider.NewFunc(40, 20, seed, func(x, y, maxSize float64) geo.Coordinate {
		x, y = provider.ClampCoord(x, y, maxSize)
		sea := (x > 10 && x < 15) || (y > -5 && y < 0) || x <= -20 || x >= 20 || y <= -20 || y >= 20
		if sea {
			return geo.Coordinate{X: x, Y: y, SeaFactor: -1}
		}
		return geo.Coordinate{X: x, Y: y, SeaFactor: 1, UpliftFactor: 0.5, SlopeFactor: 0.3}
	})
}

func TestStepRaisesLandAndKeepsSeaAtZero(t *testing.T) {
	prov := islandStub(1)
	gen, err := New(prov, geology.Default())
	require.NoError(t, err)

	_, err = gen.Step()
	require.NoError(t, err)

	rp := gen.RPGraph()
	for _, idx := range rp.Nodes() {
		n := rp.Node(idx)
		if n.IsSea() {
			assert.Zero(t, n.Height)
		} else {
			assert.Greater(t, n.Height, 0.0)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	settings := geology.Default()

	run := func(seed int64) []float64 {
		prov := islandStub(seed)
		gen, err := New(prov, settings)
		require.NoError(t, err)
		err = gen.Generate(func(step int, _ float64) bool { return step >= 3 })
		require.NoError(t, err)

		rp := gen.RPGraph()
		heights := make([]float64, rp.NodeCount())
		for _, idx := range rp.Nodes() {
			heights[idx] = rp.Node(idx).Height
		}
		return heights
	}

	a := run(99)
	b := run(99)
	assert.Equal(t, a, b)
}
