package lake

import (
	"container/heap"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/cordonnier/peakgen/rpgraph"
)

// candidate is one entry in the spanning-tree priority queue: a
// lake-graph edge plus the composite sort key of spec.md §4.6.
type candidate struct {
	edgeIdx              int
	passHeight           float64
	upliftTo, upliftFrom float64
	insertOrder          int
}

// candidateQueue implements container/heap.Interface over candidate,
// ordered ascending by (passHeight, uplift(to), uplift(from),
// insertOrder) — the same min-heap-of-edges shape as the teacher's
// Prim, generalized from scalar edge weight to this composite key.
type candidateQueue []candidate

func (q candidateQueue) Len() int { return len(q) }
func (q candidateQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.passHeight != b.passHeight {
		return a.passHeight < b.passHeight
	}
	if a.upliftTo != b.upliftTo {
		return a.upliftTo < b.upliftTo
	}
	if a.upliftFrom != b.upliftFrom {
		return a.upliftFrom < b.upliftFrom
	}
	return a.insertOrder < b.insertOrder
}
func (q candidateQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *candidateQueue) Push(x any)        { *q = append(*q, x.(candidate)) }
func (q *candidateQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// SpanningTree implements spec.md §4.6: starting from every sea lake
// (promoting one random lake to sea first if none exist), grow a
// frontier of candidate saddles with Prim's algorithm generalized to
// the composite order above, accepting at most one outgoing edge per
// lake. Returns the accepted lake-graph edge indices in acceptance
// order. Each accepted edge is the least candidate on the frontier when
// it is popped; candidates pushed after an acceptance can rank below
// edges already accepted, so the returned sequence is not necessarily
// non-decreasing under the composite order.
func SpanningTree(lg, rp, st *rpgraph.Graph, sinkNode []int, rng *rand.Rand, logger zerolog.Logger) ([]int, error) {
	roots := seaRoots(lg)
	if len(roots) == 0 {
		if lg.NodeCount() == 0 {
			return nil, ErrDegenerateTopology
		}
		promoted := 0
		if lg.NodeCount() > 1 {
			promoted = rng.Intn(lg.NodeCount() - 1)
		}
		logger.Warn().Int("lakeNode", promoted).Msg("no sea lake root in lake graph; promoting one lake to sea")
		promoteToSea(lg, rp, st, sinkNode, promoted)
		roots = []int{promoted}
	}

	visited := make([]bool, lg.NodeCount())
	for _, r := range roots {
		visited[r] = true
	}

	pq := &candidateQueue{}
	heap.Init(pq)
	insertOrder := 0
	push := func(lakeIdx, exclude int) {
		for _, out := range lg.Node(lakeIdx).Out {
			if out == exclude {
				continue
			}
			sym := lg.Edge(out).Sym
			if sym == rpgraph.NoEdge {
				continue
			}
			neighbor := lg.Edge(sym).From
			if lg.Node(neighbor).IsSea() {
				continue
			}
			e := lg.Edge(sym)
			heap.Push(pq, candidate{
				edgeIdx:     sym,
				passHeight:  e.PassHeight,
				upliftTo:    rp.Node(e.SaddleTo).Uplift,
				upliftFrom:  rp.Node(e.SaddleFrom).Uplift,
				insertOrder: insertOrder,
			})
			insertOrder++
		}
	}

	for _, r := range roots {
		push(r, rpgraph.NoEdge)
	}

	var tree []int
	for pq.Len() > 0 {
		c := heap.Pop(pq).(candidate)
		from := lg.Edge(c.edgeIdx).From
		if visited[from] {
			continue
		}
		visited[from] = true
		tree = append(tree, c.edgeIdx)
		push(from, c.edgeIdx)
	}

	return tree, nil
}

func seaRoots(lg *rpgraph.Graph) []int {
	var out []int
	for _, idx := range lg.Nodes() {
		if lg.Node(idx).IsSea() {
			out = append(out, idx)
		}
	}
	return out
}

// promoteToSea implements spec.md §4.6 step 1's fallback: convert the
// chosen lake's sink to sea on the lake graph and on the corresponding
// rp/streamTree node (seaFactor to 0, height to 0).
func promoteToSea(lg, rp, st *rpgraph.Graph, sinkNode []int, lakeIdx int) {
	lg.Node(lakeIdx).Coord.SeaFactor = 0
	lg.Node(lakeIdx).Height = 0

	rpIdx := sinkNode[lakeIdx]
	rp.Node(rpIdx).Coord.SeaFactor = 0
	rp.Node(rpIdx).Height = 0
	st.Node(rpIdx).Coord.SeaFactor = 0
	st.Node(rpIdx).Height = 0
}
