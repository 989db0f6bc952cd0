// Package rpgraph implements the random planar graph (rpGraph) data
// model of spec.md §3: arena-indexed nodes and directed edges keyed by
// coordinate, with bidirectional `sym` linking and bearing-sorted
// adjacency. It also implements rpGraph construction from a
// triangulation and a Provider (spec.md §4.3).
//
// Node and edge storage is index-based rather than pointer-based
// (spec.md §9: "use arena storage for nodes and edges keyed by integer
// handles"), adapted from the teacher's graph/core package, which keyed
// a string-vertex adjacency list of *Edge pointers; here vertices are
// coordinates and adjacency is a slice of edge-arena indices sorted by
// bearing instead of insertion order.
package rpgraph
