// Package geo defines the 2D coordinate type shared by every downstream
// package (sample, delaunay, rpgraph, lake, extract) along with the fixed
// epsilon used to canonicalize coordinate equality, ordering and hashing.
package geo
