package lake

import "github.com/cordonnier/peakgen/rpgraph"

// AssignIDs implements spec.md §4.5's lake-id assignment: for each
// stream-tree sink, assign a fresh id and tag its entire inbound
// closure (BFS over the reverse stream tree, using st's In adjacency,
// which already holds exactly the upstream-neighbor relation) with
// that id on both st and rp (node indices align between the two
// graphs since st is built as a clone of rp). Returns, indexed by lake
// id, the rp/st node index of the lake's defining sink.
func AssignIDs(rp, st *rpgraph.Graph) []int {
	var sinkNode []int
	for _, sink := range st.Sinks() {
		if st.Node(sink).LakeID != rpgraph.NoLake {
			continue
		}
		lakeID := len(sinkNode)
		sinkNode = append(sinkNode, sink)
		tagClosure(rp, st, sink, lakeID)
	}
	return sinkNode
}

func tagClosure(rp, st *rpgraph.Graph, root, lakeID int) {
	queue := []int{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		st.Node(n).LakeID = lakeID
		rp.Node(n).LakeID = lakeID
		queue = append(queue, st.Node(n).In...)
	}
}
