package sample

import (
	"math"
	"math/rand"

	"github.com/cordonnier/peakgen/geo"
	"github.com/cordonnier/peakgen/provider"
)

// Distribute implements spec.md §4.1: for a provider with half-side
// H = size/2 and target count LOD, let m = round(sqrt(LOD)),
// j = size/m. For each grid cell (i, k) in [0,m)^2, emit a point
// jittered by an independent Poisson(2j) draw per axis, clamped to
// [-H+1, H-1]. Duplicate positions (under geo.Equal) are collapsed,
// first-seen wins. The returned slice has at most m*m points.
func Distribute(p provider.Provider) []geo.Coordinate {
	size := float64(p.Size())
	h := size / 2
	m := int(math.Round(math.Sqrt(float64(p.LOD()))))
	if m < 1 {
		m = 1
	}
	j := size / float64(m)
	rng := p.Random()

	seen := make(map[[2]int64]bool, m*m)
	out := make([]geo.Coordinate, 0, m*m)

	for i := 0; i < m; i++ {
		for k := 0; k < m; k++ {
			px := poissonJitter(rng, j)
			py := poissonJitter(rng, j)

			x := (-h + 1) + float64(i)*j + (px - j)
			y := (-h + 1) + float64(k)*j + (py - j)
			x = geo.Clamp(x, -h+1, h-1)
			y = geo.Clamp(y, -h+1, h-1)

			c := geo.Coordinate{X: x, Y: y}
			key := geo.Key(c)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, c)
		}
	}
	return out
}

// poissonJitter draws from Poisson(2*cellSize) via Knuth's algorithm,
// returning a float64 for direct use in the jitter formula.
func poissonJitter(rng *rand.Rand, cellSize float64) float64 {
	lambda := 2 * cellSize
	return float64(poisson(rng, lambda))
}

// poisson draws a single sample from Poisson(lambda) using Knuth's
// multiplicative algorithm. Adequate for the modest lambda values
// (a few tens to low hundreds of meters) this package calls it with.
func poisson(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	l := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		k++
		p *= rng.Float64()
		if p <= l {
			return k - 1
		}
	}
}
