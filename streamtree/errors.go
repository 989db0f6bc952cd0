package streamtree

import "errors"

// ErrNoOutboundEdge is the InvalidInput error of spec.md §7: a non-sea
// rpGraph node has zero outbound edges, so no downhill choice can be
// made for it.
var ErrNoOutboundEdge = errors.New("streamtree: non-sea node has no outbound edges")
