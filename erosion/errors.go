package erosion

import "errors"

// ErrNotSingleDownstream is the ConsistencyViolation of spec.md §7: a
// non-sea stream-tree node must have exactly one outbound edge (its
// chosen downstream neighbor) by the time erosion runs.
var ErrNotSingleDownstream = errors.New("erosion: non-sea node lacks a unique downstream neighbor")
