package geo

import "math"

// Epsilon is the fixed absolute tolerance used for every coordinate
// equality, ordering and hashing comparison in the simulation core.
const Epsilon = 1e-6

// Coordinate is an immutable 2D point plus the three factors the input
// provider attaches to it. SeaFactor <= 0 marks the point as ocean;
// UpliftFactor and SlopeFactor are normalized in [0,1].
type Coordinate struct {
	X, Y         float64
	SeaFactor    float64
	UpliftFactor float64
	SlopeFactor  float64
}

// IsSea reports whether c sits in the ocean.
func (c Coordinate) IsSea() bool {
	return c.SeaFactor <= 0
}

// Equal reports whether a and b are the same point under Epsilon,
// comparing only the positional (X, Y) components — factors are derived
// data and never participate in identity.
func Equal(a, b Coordinate) bool {
	return math.Abs(a.X-b.X) < Epsilon && math.Abs(a.Y-b.Y) < Epsilon
}

// Less defines a total order over positions: lexicographic on (X, Y)
// under the same Epsilon used by Equal. It is consistent with Equal in
// the sense that neither Less(a,b) nor Less(b,a) holds when Equal(a,b).
func Less(a, b Coordinate) bool {
	if math.Abs(a.X-b.X) >= Epsilon {
		return a.X < b.X
	}
	if math.Abs(a.Y-b.Y) >= Epsilon {
		return a.Y < b.Y
	}
	return false
}

// Key canonicalizes a position onto the epsilon grid so it can be used
// as a map key with identity consistent with Equal: two positions within
// Epsilon of each other round to the same grid cell except pathologically
// near a cell boundary, which the simulation never relies on (sample
// points are always spaced far wider than Epsilon).
func Key(c Coordinate) [2]int64 {
	return [2]int64{
		int64(math.Round(c.X / Epsilon)),
		int64(math.Round(c.Y / Epsilon)),
	}
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b Coordinate) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Bearing returns atan2(dy, dx) in [-pi, pi], the value outbound edges
// are sorted by in every adjacency list in this module.
func Bearing(from, to Coordinate) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Lerp linearly interpolates between lo and hi by t in [0,1] (not
// clamped; callers pass pre-clamped t where the spec requires it).
func Lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
