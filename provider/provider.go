package provider

import (
	"math/rand"

	"github.com/cordonnier/peakgen/geo"
)

// Provider is the one capability the simulation core depends on for
// terrain input: a per-coordinate factor lookup plus the handful of
// generation parameters every provider carries regardless of its
// concrete source (noise, image, or a test stub).
type Provider interface {
	// GetData returns the factor-annotated coordinate at (x, y). When
	// maxSize > 0, x and y are clamped to [-maxSize, +maxSize] before
	// lookup.
	GetData(x, y float64, maxSize float64) geo.Coordinate
	// Size is the full terrain side length in meters; the half-side is
	// H = size/2, per spec.md §4.1.
	Size() int
	// LOD is the target sample count driving §4.1's grid resolution.
	LOD() int
	// Random returns the RNG owned by this provider's settings.
	Random() *rand.Rand
	// Seed returns the seed the RNG was constructed from.
	Seed() int64
}

// Func adapts a plain callback into a Provider, for tests and for the
// degenerate-scenario stubs spec.md §8 describes (S1, S3). Size/LOD/Seed
// are fixed at construction; Random is shared so callers can assert on
// RNG draws across a full run.
type Func struct {
	GetDataFn func(x, y, maxSize float64) geo.Coordinate
	SizeVal   int
	LODVal    int
	Rng       *rand.Rand
	SeedVal   int64
}

// NewFunc builds a Func provider seeded deterministically from seed.
func NewFunc(size, lod int, seed int64, getData func(x, y, maxSize float64) geo.Coordinate) *Func {
	return &Func{
		GetDataFn: getData,
		SizeVal:   size,
		LODVal:    lod,
		Rng:       rand.New(rand.NewSource(seed)),
		SeedVal:   seed,
	}
}

func (f *Func) GetData(x, y, maxSize float64) geo.Coordinate { return f.GetDataFn(x, y, maxSize) }
func (f *Func) Size() int                                    { return f.SizeVal }
func (f *Func) LOD() int                                     { return f.LODVal }
func (f *Func) Random() *rand.Rand                           { return f.Rng }
func (f *Func) Seed() int64                                  { return f.SeedVal }

// ClampCoord applies the maxSize clamp rule shared by every Provider
// implementation.
func ClampCoord(x, y, maxSize float64) (float64, float64) {
	if maxSize <= 0 {
		return x, y
	}
	return geo.Clamp(x, -maxSize, maxSize), geo.Clamp(y, -maxSize, maxSize)
}
