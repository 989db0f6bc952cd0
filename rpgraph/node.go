package rpgraph

import "github.com/cordonnier/peakgen/geo"

// NoLake is the default LakeID for a node not yet assigned to a lake.
const NoLake = -1

// Node is one vertex of the planar graph, per spec.md §3. Height is
// mutated by the erosion step; everything else but
// UpstreamCatchmentArea and LakeID is fixed at construction.
type Node struct {
	Coord geo.Coordinate

	Height                float64 // meters; always 0 for sea nodes
	Uplift                float64 // m/yr; 0 if sea
	MaxSlope              float64 // radians; 0 if sea
	LocalCatchmentArea    float64 // m^2; 0 if sea
	UpstreamCatchmentArea float64 // m^2; mutated per erosion step
	LakeID                int

	// Out holds outbound edge indices, kept sorted by edge bearing.
	Out []int
	// In holds indices (into the owning Graph's node arena) of nodes
	// with an outbound edge targeting this node.
	In []int
}

// IsSea reports whether the node's underlying coordinate is ocean.
func (n *Node) IsSea() bool {
	return n.Coord.IsSea()
}

// IsSink reports whether n has no outbound edges.
func (n *Node) IsSink() bool {
	return len(n.Out) == 0
}

// TotalCatchmentArea is localCatchmentArea + upstreamCatchmentArea, the
// drainage term the stream-power formula calls A (spec.md §4.8).
func (n *Node) TotalCatchmentArea() float64 {
	return n.LocalCatchmentArea + n.UpstreamCatchmentArea
}
