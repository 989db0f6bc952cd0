// Package sim is the driver of spec.md §4.9: it owns the persistent
// rpGraph and the triangulation it was built from, and runs
// streamtree -> lake -> erosion in order once per Step, exposing
// Generate for looping until a caller-supplied predicate is satisfied.
package sim
