package erosion

import (
	"fmt"
	"math"

	"github.com/cordonnier/peakgen/geo"
	"github.com/cordonnier/peakgen/geology"
	"github.com/cordonnier/peakgen/rpgraph"
)

// Process implements spec.md §4.8 over every stream-tree root: a
// reverse-BFS pass accumulates upstreamCatchmentArea from children to
// parent, then a forward-BFS pass updates rp node heights via the
// implicit stream-power formula with thermal-shock clamping. Heights
// are read from and written to rp; st supplies only the tree topology
// (the queue/parent-map BFS shape, run twice over the same forest).
// Returns the highest height reached by any node this step.
func Process(rp, st *rpgraph.Graph, settings geology.Settings) (float64, error) {
	maxHeight := 0.0

	for _, root := range st.Sinks() {
		order := bfsOrder(st, root)

		for i := len(order) - 1; i >= 0; i-- {
			n := order[i]
			sum := 0.0
			for _, child := range st.Node(n).In {
				sum += rp.Node(child).TotalCatchmentArea()
			}
			rp.Node(n).UpstreamCatchmentArea = sum
		}

		for _, n := range order {
			nRP := rp.Node(n)
			if nRP.IsSea() {
				continue
			}
			out := st.Node(n).Out
			if len(out) != 1 {
				return maxHeight, fmt.Errorf("node at %v has %d downstream edges: %w", nRP.Coord, len(out), ErrNotSingleDownstream)
			}
			d := st.Edge(out[0]).To
			dRP := rp.Node(d)

			newHeight := stepHeight(nRP, dRP, settings)
			newHeight = clampThermalShock(rp, n, newHeight, settings)

			nRP.Height = newHeight
			if newHeight > maxHeight {
				maxHeight = newHeight
			}
		}
	}

	return maxHeight, nil
}

// bfsOrder returns every node reachable from root via st's In adjacency
// (i.e. upstream children), root first, in breadth-first order.
func bfsOrder(st *rpgraph.Graph, root int) []int {
	order := []int{root}
	queue := []int{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		children := st.Node(n).In
		order = append(order, children...)
		queue = append(queue, children...)
	}
	return order
}

// stepHeight computes the new height for nRP via the implicit
// stream-power update (spec.md §4.8 step 3).
func stepHeight(nRP, dRP *rpgraph.Node, settings geology.Settings) float64 {
	a := nRP.TotalCatchmentArea()
	l := geo.Distance(nRP.Coord, dRP.Coord)
	if l == 0 {
		l = 1.0
	}
	kPrime := settings.K * math.Pow(a, settings.M) / l
	return (nRP.Height + settings.DeltaT*(nRP.Uplift+kPrime*dRP.Height)) / (1 + settings.DeltaT*kPrime)
}

// clampThermalShock implements spec.md §4.8 step 4: find n's lowest
// rpGraph neighbor by height and clamp newHeight so the slope to it
// never exceeds n's maxSlope.
func clampThermalShock(rp *rpgraph.Graph, n int, newHeight float64, settings geology.Settings) float64 {
	nRP := rp.Node(n)

	lowIdx, lowHeight := -1, math.Inf(1)
	for _, neighbor := range nRP.In {
		h := rp.Node(neighbor).Height
		if h < lowHeight {
			lowHeight, lowIdx = h, neighbor
		}
	}
	if lowIdx == -1 {
		return newHeight
	}
	nLow := rp.Node(lowIdx)

	lPrime := geo.Distance(nRP.Coord, nLow.Coord)
	if nLow.IsSea() {
		lPrime = 1.0
	}

	angle := math.Atan2(newHeight-nLow.Height, lPrime)
	thetaMax := geo.Lerp(settings.MinSlopeRad, settings.MaxSlopeRad, nRP.Coord.SlopeFactor)
	return clampAngle(angle, newHeight, nLow.Height, lPrime, thetaMax)
}

// clampAngle is the shared clamp decision of spec.md §4.8 step 4: if
// height is already at or below downstreamHeight, no clamp applies;
// otherwise the slope to downstreamHeight over length is capped at
// thetaMax.
func clampAngle(angleRad, height, downstreamHeight, length, thetaMax float64) float64 {
	if height <= downstreamHeight {
		return height
	}
	if angleRad > thetaMax {
		return downstreamHeight + length*math.Tan(thetaMax)
	}
	return height
}

// ApplyThermalShockHeuristicPredetermined applies the clamp decision
// with a precomputed angle in degrees rather than one derived from
// actual node heights, for direct unit testing against spec.md §8's S2
// scenario.
func ApplyThermalShockHeuristicPredetermined(angleDeg, height, downstreamHeight, length, slopeNoise float64, settings geology.Settings) float64 {
	thetaMax := geo.Lerp(settings.MinSlopeRad, settings.MaxSlopeRad, slopeNoise)
	return clampAngle(angleDeg*math.Pi/180, height, downstreamHeight, length, thetaMax)
}
