// Package delaunay builds the Delaunay triangulation of a sample set
// (spec.md §4.2) via incremental Bowyer-Watson insertion, constrained to
// a square bounding box by inserting its four corners as extra sites,
// and derives per-vertex Voronoi cell areas from the triangulation's
// dual. No complete, fetchable corpus module implements constrained
// planar Delaunay triangulation (see DESIGN.md); this package is a
// bespoke implementation on the standard library only, styled after the
// staged, options-driven Build entry point of the retrieved
// iceisfun/gomesh/cdt reference file.
package delaunay
