package rpgraph

import (
	"math"

	"github.com/cordonnier/peakgen/delaunay"
	"github.com/cordonnier/peakgen/geo"
	"github.com/cordonnier/peakgen/geology"
	"github.com/cordonnier/peakgen/provider"
)

// Build implements spec.md §4.3: for every vertex of the triangulation,
// fetch factor data from prov and insert a node with initial height 0,
// uplift/maxSlope/catchment zeroed for sea; for every triangulation edge,
// discard both-sea, keep one-sea-one-land as-is, and sample both-land
// edges at interior points to decide whether they cross open water.
func Build(prov provider.Provider, settings geology.Settings, triangles []delaunay.Triangle, edges [][2]geo.Coordinate) *Graph {
	half := float64(prov.Size()) / 2
	cellAreas := delaunay.CellAreas(triangles, half)

	g := New()
	resolved := make(map[[2]int64]geo.Coordinate)

	resolve := func(c geo.Coordinate) geo.Coordinate {
		k := geo.Key(c)
		if r, ok := resolved[k]; ok {
			return r
		}
		r := prov.GetData(c.X, c.Y, half)
		resolved[k] = r
		return r
	}

	addVertex := func(c geo.Coordinate) int {
		full := resolve(c)
		idx := g.AddNode(full)
		populate(g.Node(idx), settings, cellAreas, full)
		return idx
	}

	for _, t := range triangles {
		for _, v := range t.Vertices() {
			addVertex(v)
		}
	}

	for _, e := range edges {
		a, b := resolve(e[0]), resolve(e[1])
		switch {
		case a.IsSea() && b.IsSea():
			continue
		case a.IsSea() != b.IsSea():
			g.AddBidirectionalEdge(addVertex(e[0]), addVertex(e[1]))
		default:
			if crossesSea(prov, half, e[0], e[1]) {
				continue
			}
			g.AddBidirectionalEdge(addVertex(e[0]), addVertex(e[1]))
		}
	}

	return g
}

// populate fills in the derived per-node fields from settings and the
// Voronoi cell-area table, leaving sea nodes zeroed per spec.md §4.3.
func populate(n *Node, settings geology.Settings, cellAreas map[[2]int64]float64, full geo.Coordinate) {
	if full.IsSea() {
		n.Uplift = 0
		n.MaxSlope = 0
		n.LocalCatchmentArea = 0
		return
	}
	n.Uplift = geo.Lerp(settings.MinUplift, settings.MaxUplift, full.UpliftFactor)
	n.MaxSlope = geo.Lerp(settings.MinSlopeRad, settings.MaxSlopeRad, full.SlopeFactor)
	n.LocalCatchmentArea = delaunay.AreaAt(cellAreas, full)
}

// crossesSea samples N = clamp(floor(length), 2, 50) interior points of
// segment a-b via prov and reports whether any of them is ocean.
func crossesSea(prov provider.Provider, half float64, a, b geo.Coordinate) bool {
	length := geo.Distance(a, b)
	n := int(math.Floor(length))
	if n < 2 {
		n = 2
	}
	if n > 50 {
		n = 50
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n+1)
		x := a.X + t*(b.X-a.X)
		y := a.Y + t*(b.Y-a.Y)
		if prov.GetData(x, y, half).IsSea() {
			return true
		}
	}
	return false
}
