package lake

import "errors"

// ErrDegenerateTopology indicates the lake graph has no node at all to
// promote to sea (spec.md §7's DegenerateTopology, in the edge case
// where even the fallback promotion has nothing to draw from).
var ErrDegenerateTopology = errors.New("lake: no sea root and nothing to promote")
