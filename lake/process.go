package lake

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/cordonnier/peakgen/rpgraph"
)

// Process runs spec.md §4.5-§4.7 against the freshly built
// streamTreeGraph st, using rp for node data (uplift, height) and rng
// for the degenerate-promotion fallback. On return, st has every
// chosen saddle attached and is ready for §4.8.
func Process(rp, st *rpgraph.Graph, rng *rand.Rand, logger zerolog.Logger) error {
	sinkNode := AssignIDs(rp, st)
	lg := BuildGraph(rp, sinkNode)

	tree, err := SpanningTree(lg, rp, st, sinkNode, rng, logger)
	if err != nil {
		return err
	}

	Attach(st, lg, tree)
	lg.Clear()
	return nil
}
