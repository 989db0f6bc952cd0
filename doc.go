// Package peakgen implements the tectonic-uplift and fluvial-erosion
// terrain simulation described by Cordonnier et al. (2016): a planar
// graph of terrain samples is repeatedly drained into a steepest-descent
// forest, its lakes resolved onto outlet saddles, and its heights
// updated by an implicit stream-power law with thermal-shock slope
// clamping.
//
// The pipeline is organized as:
//
//	sample/     — jittered grid sampling of the input provider
//	delaunay/   — Bowyer-Watson triangulation and Voronoi cell areas
//	rpgraph/    — the arena-indexed planar graph and its construction
//	streamtree/ — per-step steepest-descent forest
//	lake/       — lake grouping, saddle detection and spanning tree
//	erosion/    — drainage accumulation, uplift, thermal shock
//	sim/        — the Generator driving one step at a time
//	extract/    — mesh and stream-polyline extraction for renderers
//
// geo/, geology/ and provider/ hold the shared coordinate, parameter,
// and terrain-input types every stage above depends on.
package peakgen
