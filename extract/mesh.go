package extract

import (
	"math"

	"github.com/cordonnier/peakgen/delaunay"
	"github.com/cordonnier/peakgen/geo"
	"github.com/cordonnier/peakgen/provider"
	"github.com/cordonnier/peakgen/rpgraph"
)

// seaFloorDepth is the height assigned to a triangulation vertex with
// no rpGraph node (spec.md §4.10: "lerp(0, -1500, |seaFactor|)").
const seaFloorDepth = -1500

// Vertex is one 3D point of the extracted mesh or stream polyline.
type Vertex struct {
	X, Y, Z float64
}

// Mesh is an indexed triangle mesh: Triangles holds index triples into
// Vertices, so vertices shared across triangles appear once.
type Mesh struct {
	Vertices  []Vertex
	Triangles [][3]int
}

// BuildMesh implements spec.md §4.10's triangular-mesh extraction:
// every triangulation vertex is looked up in rp by 2D position; found
// vertices take their rpGraph height, unfound ones (border vertices
// culled out of the rpGraph) fall back to the sea-floor lerp using the
// provider's own factor lookup. Vertices are deduplicated by coordinate
// key as they're resolved.
func BuildMesh(prov provider.Provider, rp *rpgraph.Graph, triangles []delaunay.Triangle) Mesh {
	half := float64(prov.Size()) / 2
	index := make(map[[2]int64]int)
	var mesh Mesh

	resolve := func(c geo.Coordinate) int {
		key := geo.Key(c)
		if idx, ok := index[key]; ok {
			return idx
		}
		v := resolveVertex(prov, rp, half, c)
		idx := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, v)
		index[key] = idx
		return idx
	}

	for _, t := range triangles {
		mesh.Triangles = append(mesh.Triangles, [3]int{resolve(t.A), resolve(t.B), resolve(t.C)})
	}
	return mesh
}

func resolveVertex(prov provider.Provider, rp *rpgraph.Graph, half float64, c geo.Coordinate) Vertex {
	if idx, ok := rp.Lookup(c); ok {
		n := rp.Node(idx)
		return Vertex{X: n.Coord.X, Y: n.Coord.Y, Z: n.Height}
	}
	full := prov.GetData(c.X, c.Y, half)
	z := geo.Lerp(0, seaFloorDepth, math.Abs(full.SeaFactor))
	return Vertex{X: c.X, Y: c.Y, Z: z}
}
