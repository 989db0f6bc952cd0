package delaunay

import "errors"

// ErrTooFewPoints indicates fewer than 3 distinct sites were supplied;
// no triangulation can be formed.
var ErrTooFewPoints = errors.New("delaunay: need at least 3 points")

// ErrDegenerate indicates every supplied point was collinear, so no
// non-degenerate triangle could be seeded.
var ErrDegenerate = errors.New("delaunay: all points are collinear")
