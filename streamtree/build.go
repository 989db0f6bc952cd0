package streamtree

import (
	"fmt"
	"math"

	"github.com/cordonnier/peakgen/rpgraph"
)

// Build implements spec.md §4.4: clone every rpGraph node into a fresh
// graph, then for each non-sea node pick the outbound neighbor with
// the lowest current height (ties broken by Out's existing
// bearing-sorted order, i.e. first-seen) and add that edge if it is
// strictly downhill. Nodes left without an outbound edge are either
// sea or local minima — both valid forest roots.
func Build(rp *rpgraph.Graph) (*rpgraph.Graph, error) {
	st := rp.Clone()

	for i := 0; i < rp.NodeCount(); i++ {
		n := rp.Node(i)
		if n.IsSea() {
			continue
		}
		if len(n.Out) == 0 {
			return nil, fmt.Errorf("node at %v: %w", n.Coord, ErrNoOutboundEdge)
		}

		best, bestHeight := -1, math.Inf(1)
		for _, edgeIdx := range n.Out {
			to := rp.Edge(edgeIdx).To
			h := rp.Node(to).Height
			if h < bestHeight {
				bestHeight, best = h, to
			}
		}

		if bestHeight < n.Height {
			st.AddDirectedEdge(i, best)
		}
	}

	return st, nil
}
