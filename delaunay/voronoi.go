package delaunay

import (
	"math"
	"sort"

	"github.com/cordonnier/peakgen/geo"
)

// largeGapRadians is the angular gap between consecutive circumcenters,
// sorted around a site, above which the site's own incident-triangle fan
// is treated as "open" (a hull vertex) rather than a full 360-degree
// ring. Such sites get their own position spliced into the polygon
// before clipping, per the Voronoi-boundary decision in DESIGN.md.
const largeGapRadians = 150 * math.Pi / 180

// CellAreas computes the Voronoi cell area of every vertex appearing in
// triangles, clipped to the [-half,half]^2 bounding square, keyed by
// geo.Key so callers can look areas up by coordinate (spec.md §4.2).
func CellAreas(triangles []Triangle, half float64) map[[2]int64]float64 {
	type site struct {
		coord geo.Coordinate
		ccs   []geo.Coordinate
	}
	sites := make(map[[2]int64]*site)

	for _, t := range triangles {
		cc := circumcenter(t.A, t.B, t.C)
		for _, v := range t.Vertices() {
			k := geo.Key(v)
			s, ok := sites[k]
			if !ok {
				s = &site{coord: v}
				sites[k] = s
			}
			s.ccs = append(s.ccs, cc)
		}
	}

	areas := make(map[[2]int64]float64, len(sites))
	for k, s := range sites {
		poly := orderAndClose(s.coord, s.ccs)
		poly = clipToSquare(poly, half)
		areas[k] = polygonArea(poly)
	}
	return areas
}

// AreaAt looks up the cell area for c's canonical key, returning 0 if c
// has no recorded cell (e.g. it was never a triangulation vertex).
func AreaAt(areas map[[2]int64]float64, c geo.Coordinate) float64 {
	return areas[geo.Key(c)]
}

func orderAndClose(site geo.Coordinate, ccs []geo.Coordinate) []geo.Coordinate {
	sort.Slice(ccs, func(i, j int) bool {
		return geo.Bearing(site, ccs[i]) < geo.Bearing(site, ccs[j])
	})

	if len(ccs) < 2 {
		return ccs
	}

	maxGap, maxAt := -1.0, -1
	for i := range ccs {
		next := (i + 1) % len(ccs)
		gap := geo.Bearing(site, ccs[next]) - geo.Bearing(site, ccs[i])
		if gap < 0 {
			gap += 2 * math.Pi
		}
		if gap > maxGap {
			maxGap, maxAt = gap, i
		}
	}
	if maxGap < largeGapRadians {
		return ccs
	}

	out := make([]geo.Coordinate, 0, len(ccs)+1)
	out = append(out, ccs[:maxAt+1]...)
	out = append(out, site)
	out = append(out, ccs[maxAt+1:]...)
	return out
}

// clipToSquare clips the (possibly non-convex) polygon poly against the
// convex [-half,half]^2 square via Sutherland-Hodgman.
func clipToSquare(poly []geo.Coordinate, half float64) []geo.Coordinate {
	edges := []struct{ inside func(geo.Coordinate) bool }{
		{func(p geo.Coordinate) bool { return p.X >= -half }},
		{func(p geo.Coordinate) bool { return p.X <= half }},
		{func(p geo.Coordinate) bool { return p.Y >= -half }},
		{func(p geo.Coordinate) bool { return p.Y <= half }},
	}
	bounds := []float64{-half, half, -half, half}
	axes := []int{0, 0, 1, 1} // 0=x, 1=y

	out := poly
	for ei, e := range edges {
		if len(out) == 0 {
			break
		}
		out = clipAgainstHalfPlane(out, e.inside, axes[ei], bounds[ei])
	}
	return out
}

func clipAgainstHalfPlane(poly []geo.Coordinate, inside func(geo.Coordinate) bool, axis int, bound float64) []geo.Coordinate {
	if len(poly) == 0 {
		return poly
	}
	out := make([]geo.Coordinate, 0, len(poly)+2)
	prev := poly[len(poly)-1]
	prevIn := inside(prev)
	for _, cur := range poly {
		curIn := inside(cur)
		if curIn {
			if !prevIn {
				out = append(out, intersectAxis(prev, cur, axis, bound))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersectAxis(prev, cur, axis, bound))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

func intersectAxis(a, b geo.Coordinate, axis int, bound float64) geo.Coordinate {
	var av, bv float64
	if axis == 0 {
		av, bv = a.X, b.X
	} else {
		av, bv = a.Y, b.Y
	}
	t := (bound - av) / (bv - av)
	return geo.Coordinate{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// polygonArea returns the unsigned area of a simple polygon via the
// shoelace formula.
func polygonArea(poly []geo.Coordinate) float64 {
	if len(poly) < 3 {
		return 0
	}
	sum := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(sum) / 2
}
