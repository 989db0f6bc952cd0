package rpgraph

import (
	"sort"

	"github.com/cordonnier/peakgen/geo"
)

// Graph is the arena-indexed planar graph of spec.md §3: nodes and
// edges are stored in flat slices and referenced by index, with a
// coordinate -> index map for lookup. The zero value is not usable; use
// New.
type Graph struct {
	nodes []Node
	edges []DirectedEdge
	index map[[2]int64]int
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{index: make(map[[2]int64]int)}
}

// NodeCount returns the number of nodes in the arena.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of directed edges in the arena.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns a pointer to the node at idx. The pointer is valid until
// the next AddNode call (slice growth may reallocate); callers that
// retain references across insertions should re-resolve by index.
func (g *Graph) Node(idx int) *Node { return &g.nodes[idx] }

// Edge returns a pointer to the edge at idx, with the same aliasing
// caveat as Node.
func (g *Graph) Edge(idx int) *DirectedEdge { return &g.edges[idx] }

// Nodes returns every node index in arena order.
func (g *Graph) Nodes() []int {
	out := make([]int, len(g.nodes))
	for i := range out {
		out[i] = i
	}
	return out
}

// Edges returns every directed edge index in arena order.
func (g *Graph) Edges() []int {
	out := make([]int, len(g.edges))
	for i := range out {
		out[i] = i
	}
	return out
}

// Lookup returns the node index for coordinate c, if present.
func (g *Graph) Lookup(c geo.Coordinate) (int, bool) {
	idx, ok := g.index[geo.Key(c)]
	return idx, ok
}

// AddNode inserts a new node for c if absent, returning its index
// either way (existing index if c was already present).
func (g *Graph) AddNode(c geo.Coordinate) int {
	if idx, ok := g.Lookup(c); ok {
		return idx
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, Node{Coord: c, LakeID: NoLake})
	g.index[geo.Key(c)] = idx
	return idx
}

// Sinks returns the indices of every node with no outbound edges.
func (g *Graph) Sinks() []int {
	var out []int
	for i := range g.nodes {
		if g.nodes[i].IsSink() {
			out = append(out, i)
		}
	}
	return out
}

// AddDirectedEdge appends a single directed edge from -> to, keeping
// From's Out slice sorted by bearing and To's In slice updated. It does
// not set Sym; use AddBidirectionalEdge for the common mirrored case.
func (g *Graph) AddDirectedEdge(from, to int) int {
	e := DirectedEdge{
		From: from, To: to,
		Bearing: geo.Bearing(g.nodes[from].Coord, g.nodes[to].Coord),
		Sym:     NoEdge,
	}
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.insertSortedByBearing(from, idx)
	g.nodes[to].In = append(g.nodes[to].In, from)
	return idx
}

// AddBidirectionalEdge adds directed edges u->v and v->u, linking each
// as the other's Sym (spec.md §4.3: "adding a bidirectional edge
// creates two DirectedEdges linking their sym fields").
func (g *Graph) AddBidirectionalEdge(u, v int) (fwd, rev int) {
	fwd = g.AddDirectedEdge(u, v)
	rev = g.AddDirectedEdge(v, u)
	g.edges[fwd].Sym = rev
	g.edges[rev].Sym = fwd
	return fwd, rev
}

func (g *Graph) insertSortedByBearing(nodeIdx, edgeIdx int) {
	n := &g.nodes[nodeIdx]
	bearing := g.edges[edgeIdx].Bearing
	pos := sort.Search(len(n.Out), func(i int) bool {
		return g.edges[n.Out[i]].Bearing >= bearing
	})
	n.Out = append(n.Out, 0)
	copy(n.Out[pos+1:], n.Out[pos:])
	n.Out[pos] = edgeIdx
}

// ReverseEdge flips an existing directed edge in place: it is removed
// from its old From's Out and old To's In, then re-threaded as
// To->From (bearing recomputed, Out kept sorted). Used by lake
// attachment (spec.md §4.7) to drain a multi-node lake's interior path
// out through its chosen saddle instead of into its former pit. Not
// meant for edges with a live Sym link (lakeGraph/rpGraph); the
// streamTreeGraph edges it is used on never set Sym.
func (g *Graph) ReverseEdge(edgeIdx int) {
	e := &g.edges[edgeIdx]
	oldFrom, oldTo := e.From, e.To

	g.removeOut(oldFrom, edgeIdx)
	g.removeIn(oldTo, oldFrom)

	e.From, e.To = oldTo, oldFrom
	e.Bearing = geo.Bearing(g.nodes[e.From].Coord, g.nodes[e.To].Coord)

	g.insertSortedByBearing(e.From, edgeIdx)
	g.nodes[e.To].In = append(g.nodes[e.To].In, e.From)
}

func (g *Graph) removeOut(node, edgeIdx int) {
	out := g.nodes[node].Out
	for i, idx := range out {
		if idx == edgeIdx {
			g.nodes[node].Out = append(out[:i], out[i+1:]...)
			return
		}
	}
}

func (g *Graph) removeIn(node, fromNode int) {
	in := g.nodes[node].In
	for i, idx := range in {
		if idx == fromNode {
			g.nodes[node].In = append(in[:i], in[i+1:]...)
			return
		}
	}
}

// Clone returns a new Graph with one node per node of g (coordinate,
// Height, Uplift, MaxSlope, LocalCatchmentArea copied as a snapshot;
// UpstreamCatchmentArea/LakeID reset) and no edges — the shape
// streamTreeGraph construction needs every step (spec.md §4.4: "Insert a
// clone of n into streamTreeGraph").
func (g *Graph) Clone() *Graph {
	out := New()
	out.nodes = make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		out.nodes[i] = Node{
			Coord:                 n.Coord,
			Height:                n.Height,
			Uplift:                n.Uplift,
			MaxSlope:              n.MaxSlope,
			LocalCatchmentArea:    n.LocalCatchmentArea,
			UpstreamCatchmentArea: 0,
			LakeID:                NoLake,
		}
		out.index[geo.Key(n.Coord)] = i
	}
	return out
}

// Clear empties the graph in place, dropping every node and edge
// reference (spec.md §5: "Clearing a graph invalidates all external
// references to its edges/nodes").
func (g *Graph) Clear() {
	g.nodes = nil
	g.edges = nil
	g.index = make(map[[2]int64]int)
}
