package lake

import "github.com/cordonnier/peakgen/rpgraph"

// Attach implements spec.md §4.7: for every accepted lake-tree edge,
// first drain the lake's interior so its pit empties out through the
// chosen saddle, then add the saddle as a directed stream-tree edge
// linking that lake's drainage into its accepted neighbor.
func Attach(st *rpgraph.Graph, lg *rpgraph.Graph, tree []int) {
	for _, edgeIdx := range tree {
		e := lg.Edge(edgeIdx)
		drainInterior(st, e.SaddleFrom)
		st.AddDirectedEdge(e.SaddleFrom, e.SaddleTo)
	}
}

// drainInterior reverses the streamTreeGraph path from from's lake pit
// up to from, so flow that used to collect at the pit now runs out
// through from instead. from is already the pit itself (no path to
// reverse) whenever its lake is a single node, since the pit and the
// saddle's own boundary node are then the same node.
func drainInterior(st *rpgraph.Graph, from int) {
	var path []int
	for n := from; len(st.Node(n).Out) > 0; {
		edgeIdx := st.Node(n).Out[0]
		path = append(path, edgeIdx)
		n = st.Edge(edgeIdx).To
	}
	for _, edgeIdx := range path {
		st.ReverseEdge(edgeIdx)
	}
}
