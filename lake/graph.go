package lake

import (
	"math"
	"sort"

	"github.com/cordonnier/peakgen/rpgraph"
)

type saddle struct {
	lakeA, lakeB int
	nodeA, nodeB int // rp node indices
	passHeight   float64
}

// BuildGraph implements the second half of spec.md §4.5: for every rp
// edge crossing between two different lakes, track the lowest-passHeight
// candidate per unordered lake pair (skipping pairs where both lakes are
// sea), then materialize one bidirectional lake-graph edge per
// surviving pair with symmetric saddle fields. sinkNode is AssignIDs's
// return value; the returned lake-graph node index for lake id i is i
// (lake nodes are added in id order from distinct sink coordinates, so
// no AddNode dedupe collision can renumber them).
func BuildGraph(rp *rpgraph.Graph, sinkNode []int) *rpgraph.Graph {
	lg := rpgraph.New()
	lakeIsSea := make([]bool, len(sinkNode))
	for lakeID, s := range sinkNode {
		lg.AddNode(rp.Node(s).Coord)
		lakeIsSea[lakeID] = rp.Node(s).IsSea()
	}

	best := make(map[[2]int]*saddle)
	for i := 0; i < rp.NodeCount(); i++ {
		n := rp.Node(i)
		for _, edgeIdx := range n.Out {
			e := rp.Edge(edgeIdx)
			m := rp.Node(e.To)
			if m.LakeID == n.LakeID {
				continue
			}
			if lakeIsSea[n.LakeID] && lakeIsSea[m.LakeID] {
				continue
			}
			key := normKey(n.LakeID, m.LakeID)
			ph := math.Max(n.Height, m.Height)
			if cur, ok := best[key]; !ok || ph < cur.passHeight {
				best[key] = &saddle{lakeA: n.LakeID, lakeB: m.LakeID, nodeA: i, nodeB: e.To, passHeight: ph}
			}
		}
	}

	keys := make([][2]int, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	for _, k := range keys {
		s := best[k]
		fwd, rev := lg.AddBidirectionalEdge(s.lakeA, s.lakeB)
		fe, re := lg.Edge(fwd), lg.Edge(rev)
		fe.PassHeight, re.PassHeight = s.passHeight, s.passHeight
		fe.SaddleFrom, fe.SaddleTo = s.nodeA, s.nodeB
		re.SaddleFrom, re.SaddleTo = s.nodeB, s.nodeA
	}

	return lg
}

func normKey(a, b int) [2]int {
	if a > b {
		return [2]int{b, a}
	}
	return [2]int{a, b}
}
