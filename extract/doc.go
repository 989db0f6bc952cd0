// Package extract implements spec.md §4.10: turning the current
// triangulation and streamTreeGraph into renderable geometry — an
// indexed triangle mesh with per-vertex height, and the set of stream
// segments currently carrying flow.
package extract
