package extract

import "github.com/cordonnier/peakgen/rpgraph"

// Segment is one 3D stream polyline segment.
type Segment struct {
	From, To Vertex
}

// BuildStreams implements spec.md §4.10's stream-polyline extraction:
// one segment per current streamTreeGraph edge, using each endpoint's
// height as stored on st (the rpGraph snapshot taken when st was built;
// later rpGraph updates are not reflected).
func BuildStreams(st *rpgraph.Graph) []Segment {
	segments := make([]Segment, 0, st.EdgeCount())
	for _, idx := range st.Edges() {
		e := st.Edge(idx)
		from, to := st.Node(e.From), st.Node(e.To)
		segments = append(segments, Segment{
			From: Vertex{X: from.Coord.X, Y: from.Coord.Y, Z: from.Height},
			To:   Vertex{X: to.Coord.X, Y: to.Coord.Y, Z: to.Height},
		})
	}
	return segments
}
