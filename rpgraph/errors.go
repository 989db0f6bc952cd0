package rpgraph

import "errors"

// ErrNodeNotFound indicates a lookup by coordinate found no node.
var ErrNodeNotFound = errors.New("rpgraph: node not found")

// ErrEdgeNotFound indicates a lookup by index found no edge (e.g. a
// stale or out-of-range handle).
var ErrEdgeNotFound = errors.New("rpgraph: edge not found")
