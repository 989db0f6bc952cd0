package delaunay

import "github.com/cordonnier/peakgen/geo"

// Triangle is one face of a triangulation, vertices wound
// counter-clockwise.
type Triangle struct {
	A, B, C geo.Coordinate
}

// Vertices returns the triangle's three corners as a slice, for
// iteration convenience.
func (t Triangle) Vertices() [3]geo.Coordinate {
	return [3]geo.Coordinate{t.A, t.B, t.C}
}

// orient2D returns twice the signed area of (a, b, c): positive when
// a→b→c turns counter-clockwise, negative when clockwise, zero when
// collinear.
func orient2D(a, b, c geo.Coordinate) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// inCircumcircle reports whether d lies strictly inside the circumcircle
// of a, b, c. Precondition: a, b, c are wound counter-clockwise.
func inCircumcircle(a, b, c, d geo.Coordinate) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	ad := ax*ax + ay*ay
	bd := bx*bx + by*by
	cd := cx*cx + cy*cy

	det := ax*(by*cd-bd*cy) - ay*(bx*cd-bd*cx) + ad*(bx*cy-by*cx)
	return det > 1e-9
}

// circumcenter returns the center of the circle through a, b, c.
func circumcenter(a, b, c geo.Coordinate) geo.Coordinate {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		// Degenerate (collinear); fall back to centroid so callers still
		// get a finite point rather than NaN/Inf.
		return geo.Coordinate{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
	}
	aSq := a.X*a.X + a.Y*a.Y
	bSq := b.X*b.X + b.Y*b.Y
	cSq := c.X*c.X + c.Y*c.Y

	ux := (aSq*(b.Y-c.Y) + bSq*(c.Y-a.Y) + cSq*(a.Y-b.Y)) / d
	uy := (aSq*(c.X-b.X) + bSq*(a.X-c.X) + cSq*(b.X-a.X)) / d
	return geo.Coordinate{X: ux, Y: uy}
}
