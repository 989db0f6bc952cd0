package delaunay

import "github.com/cordonnier/peakgen/geo"

type directedEdge struct{ u, v int }

func normalizeEdge(u, v int) [2]int {
	if u > v {
		return [2]int{v, u}
	}
	return [2]int{u, v}
}

// Build triangulates points, first inserting the four corners of the
// [-half,half]^2 bounding square as extra sites so the resulting
// triangulation always covers that square (spec.md §4.2's "constrained
// bounding quad"). It returns the triangle list and the deduplicated
// undirected edge list (as coordinate pairs) of the triangulation.
func Build(points []geo.Coordinate, half float64) ([]Triangle, [][2]geo.Coordinate, error) {
	sites := dedupeWithCorners(points, half)
	if len(sites) < 3 {
		return nil, nil, ErrTooFewPoints
	}

	sa, sb, sc := superTriangle(sites, half)
	pts := make([]geo.Coordinate, 0, len(sites)+3)
	pts = append(pts, sites...)
	superStart := len(pts)
	pts = append(pts, sa, sb, sc)

	tris := [][3]int{orientedTriangle(pts, superStart, superStart+1, superStart+2)}

	for i := 0; i < superStart; i++ {
		tris = insertPoint(tris, pts, i)
	}

	final := make([][3]int, 0, len(tris))
	for _, t := range tris {
		if t[0] >= superStart || t[1] >= superStart || t[2] >= superStart {
			continue
		}
		final = append(final, t)
	}
	if len(final) == 0 {
		return nil, nil, ErrDegenerate
	}

	triangles := make([]Triangle, len(final))
	for i, t := range final {
		triangles[i] = Triangle{A: pts[t[0]], B: pts[t[1]], C: pts[t[2]]}
	}
	return triangles, uniqueEdges(final, pts), nil
}

// dedupeWithCorners merges points with the square's four corners,
// collapsing exact (under geo.Equal) duplicates, first-seen wins.
func dedupeWithCorners(points []geo.Coordinate, half float64) []geo.Coordinate {
	corners := []geo.Coordinate{
		{X: -half, Y: -half}, {X: half, Y: -half},
		{X: half, Y: half}, {X: -half, Y: half},
	}
	seen := make(map[[2]int64]bool, len(points)+4)
	out := make([]geo.Coordinate, 0, len(points)+4)
	for _, c := range points {
		k := geo.Key(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	for _, c := range corners {
		k := geo.Key(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	return out
}

// superTriangle returns a triangle comfortably enclosing every site and
// the bounding square, margin-scaled so Bowyer-Watson insertion never has
// to special-case boundary sites.
func superTriangle(sites []geo.Coordinate, half float64) (a, b, c geo.Coordinate) {
	maxR := half
	for _, s := range sites {
		if d := geo.Distance(geo.Coordinate{}, s); d > maxR {
			maxR = d
		}
	}
	r := maxR*4 + 10
	return geo.Coordinate{X: -r, Y: -r},
		geo.Coordinate{X: 3 * r, Y: -r},
		geo.Coordinate{X: -r, Y: 3 * r}
}

func orientedTriangle(pts []geo.Coordinate, i, j, k int) [3]int {
	if orient2D(pts[i], pts[j], pts[k]) < 0 {
		return [3]int{i, k, j}
	}
	return [3]int{i, j, k}
}

// insertPoint runs one Bowyer-Watson incremental insertion step, adding
// site index pi to the triangulation tris.
func insertPoint(tris [][3]int, pts []geo.Coordinate, pi int) [][3]int {
	p := pts[pi]
	bad := make([]bool, len(tris))
	anyBad := false
	for i, t := range tris {
		if inCircumcircle(pts[t[0]], pts[t[1]], pts[t[2]], p) {
			bad[i] = true
			anyBad = true
		}
	}
	if !anyBad {
		return tris
	}

	directed := make(map[directedEdge]bool)
	for i, t := range tris {
		if !bad[i] {
			continue
		}
		directed[directedEdge{t[0], t[1]}] = true
		directed[directedEdge{t[1], t[2]}] = true
		directed[directedEdge{t[2], t[0]}] = true
	}

	var boundary []directedEdge
	for e := range directed {
		if !directed[directedEdge{e.v, e.u}] {
			boundary = append(boundary, e)
		}
	}

	next := make([][3]int, 0, len(tris))
	for i, t := range tris {
		if !bad[i] {
			next = append(next, t)
		}
	}
	for _, e := range boundary {
		next = append(next, [3]int{e.u, e.v, pi})
	}
	return next
}

// uniqueEdges extracts the deduplicated undirected edge set of a
// triangle list as coordinate pairs.
func uniqueEdges(tris [][3]int, pts []geo.Coordinate) [][2]geo.Coordinate {
	seen := make(map[[2]int]bool, len(tris)*3)
	out := make([][2]geo.Coordinate, 0, len(tris)*3)
	add := func(u, v int) {
		k := normalizeEdge(u, v)
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, [2]geo.Coordinate{pts[k[0]], pts[k[1]]})
	}
	for _, t := range tris {
		add(t[0], t[1])
		add(t[1], t[2])
		add(t[2], t[0])
	}
	return out
}
