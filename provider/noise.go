package provider

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/cordonnier/peakgen/geo"
)

// FieldOptions configures one of the three independent noise fields
// (sea, uplift, slope) a NoiseProvider samples, per spec.md §9.
type FieldOptions struct {
	// Persistence is the per-octave amplitude falloff (go-perlin's alpha).
	Persistence float64
	// Scale converts world units into noise-space frequency: noise is
	// sampled at (x/Scale, y/Scale).
	Scale float64
	// Low and High bound the lerp applied to the raw [-1,1] noise value.
	Low, High float64
	// ShiftX and ShiftY translate the sample point before noise lookup,
	// letting independent fields decorrelate from the same seed.
	ShiftX, ShiftY float64
}

// NoiseOptions configures a NoiseProvider in full.
type NoiseOptions struct {
	Sea, Uplift, Slope FieldOptions

	// UpliftFromSea derives the uplift factor from the final sea factor
	// (after the Sea Low/High lerp and LandMaxRadius) instead of sampling
	// an independent uplift field.
	UpliftFromSea bool
	// SlopeFromSea derives the slope factor from the sea field.
	SlopeFromSea bool
	// SlopeFromUplift derives the slope factor from the uplift factor
	// (applied after UpliftFromSea, if both are set).
	SlopeFromUplift bool

	// Octaves is the number of Perlin octaves (go-perlin's n) shared by
	// all three fields.
	Octaves int32

	// LandMaxRadius, if > 0, forces SeaFactor negative for any point
	// farther than this radius from the origin, producing an island.
	LandMaxRadius float64
}

// DefaultNoiseOptions returns a reasonable single-continent parameterization.
func DefaultNoiseOptions() NoiseOptions {
	mk := func(low, high float64) FieldOptions {
		return FieldOptions{Persistence: 0.5, Scale: 512, Low: low, High: high}
	}
	return NoiseOptions{
		Sea:     mk(-1, 1),
		Uplift:  mk(0, 1),
		Slope:   mk(0, 1),
		Octaves: 4,
	}
}

// NoiseProvider implements Provider by sampling independently-seeded
// Perlin noise fields, per spec.md §9.
type NoiseProvider struct {
	size int
	lod  int
	seed int64
	rng  *rand.Rand
	opts NoiseOptions

	sea, uplift, slope *perlin.Perlin
}

// NewNoiseProvider constructs a NoiseProvider. Each field gets its own
// Perlin generator, seeded seed, seed+1, seed+2 respectively so the
// three fields decorrelate even without explicit shifts.
func NewNoiseProvider(size, lod int, seed int64, opts NoiseOptions) *NoiseProvider {
	return &NoiseProvider{
		size:  size,
		lod:   lod,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
		opts:  opts,
		sea:   perlin.NewPerlin(opts.Sea.Persistence, 2, opts.Octaves, seed),
		uplift: perlin.NewPerlin(opts.Uplift.Persistence, 2, opts.Octaves, seed+1),
		slope:  perlin.NewPerlin(opts.Slope.Persistence, 2, opts.Octaves, seed+2),
	}
}

func sampleField(p *perlin.Perlin, f FieldOptions, x, y float64) float64 {
	raw := p.Noise2D((x+f.ShiftX)/f.Scale, (y+f.ShiftY)/f.Scale)
	raw = geo.Clamp(raw, -1, 1)
	t := (raw + 1) / 2
	return geo.Lerp(f.Low, f.High, t)
}

// GetData implements Provider.
func (n *NoiseProvider) GetData(x, y, maxSize float64) geo.Coordinate {
	x, y = ClampCoord(x, y, maxSize)

	seaFactor := sampleField(n.sea, n.opts.Sea, x, y)
	if n.opts.LandMaxRadius > 0 {
		r := geo.Distance(geo.Coordinate{}, geo.Coordinate{X: x, Y: y})
		if r > n.opts.LandMaxRadius {
			seaFactor = -1
		}
	}

	var upliftFactor float64
	if n.opts.UpliftFromSea {
		upliftFactor = geo.Clamp(geo.Lerp(n.opts.Uplift.Low, n.opts.Uplift.High, (seaFactor+1)/2), 0, 1)
	} else {
		upliftFactor = geo.Clamp(sampleField(n.uplift, n.opts.Uplift, x, y), 0, 1)
	}

	var slopeFactor float64
	switch {
	case n.opts.SlopeFromUplift:
		slopeFactor = geo.Clamp(geo.Lerp(n.opts.Slope.Low, n.opts.Slope.High, upliftFactor), 0, 1)
	case n.opts.SlopeFromSea:
		slopeFactor = geo.Clamp(geo.Lerp(n.opts.Slope.Low, n.opts.Slope.High, (seaFactor+1)/2), 0, 1)
	default:
		slopeFactor = geo.Clamp(sampleField(n.slope, n.opts.Slope, x, y), 0, 1)
	}

	return geo.Coordinate{
		X: x, Y: y,
		SeaFactor:    seaFactor,
		UpliftFactor: upliftFactor,
		SlopeFactor:  slopeFactor,
	}
}

func (n *NoiseProvider) Size() int          { return n.size }
func (n *NoiseProvider) LOD() int           { return n.lod }
func (n *NoiseProvider) Random() *rand.Rand { return n.rng }
func (n *NoiseProvider) Seed() int64        { return n.seed }
