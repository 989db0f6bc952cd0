package sim

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/cordonnier/peakgen/delaunay"
	"github.com/cordonnier/peakgen/erosion"
	"github.com/cordonnier/peakgen/geology"
	"github.com/cordonnier/peakgen/lake"
	"github.com/cordonnier/peakgen/provider"
	"github.com/cordonnier/peakgen/rpgraph"
	"github.com/cordonnier/peakgen/sample"
	"github.com/cordonnier/peakgen/streamtree"
)

// Generator owns the persistent rpGraph and the triangulation it was
// built from, and drives one simulation step at a time (spec.md §4.9).
type Generator struct {
	rp        *rpgraph.Graph
	triangles []delaunay.Triangle
	settings  geology.Settings
	rng       *rand.Rand

	logger zerolog.Logger

	step      int
	maxHeight float64
}

// New samples the terrain, triangulates it, and builds the initial
// rpGraph from prov (spec.md §4.1-§4.3).
func New(prov provider.Provider, settings geology.Settings, opts ...Option) (*Generator, error) {
	half := float64(prov.Size()) / 2
	points := sample.Distribute(prov)
	triangles, edges, err := delaunay.Build(points, half)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		rp:        rpgraph.Build(prov, settings, triangles, edges),
		triangles: triangles,
		settings:  settings,
		rng:       prov.Random(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// RPGraph returns the generator's current rpGraph, for extraction.
func (g *Generator) RPGraph() *rpgraph.Graph { return g.rp }

// Triangles returns the triangulation the rpGraph was built from, for
// mesh extraction.
func (g *Generator) Triangles() []delaunay.Triangle { return g.triangles }

// StepCount returns the number of completed steps.
func (g *Generator) StepCount() int { return g.step }

// MaxHeight returns the highest node height reached so far.
func (g *Generator) MaxHeight() float64 { return g.maxHeight }

// Step runs one iteration of spec.md §4.4 -> §4.5 -> §4.6 -> §4.7 ->
// §4.8: build the stream tree, resolve lakes onto it, then erode.
func (g *Generator) Step() (*rpgraph.Graph, error) {
	st, err := streamtree.Build(g.rp)
	if err != nil {
		return nil, err
	}
	if err := lake.Process(g.rp, st, g.rng, g.logger); err != nil {
		return nil, err
	}
	maxHeight, err := erosion.Process(g.rp, st, g.settings)
	if err != nil {
		return nil, err
	}

	g.step++
	if maxHeight > g.maxHeight {
		g.maxHeight = maxHeight
	}
	return st, nil
}

// Generate loops Step until stop reports true, given the step count and
// current max height reached so far.
func (g *Generator) Generate(stop func(step int, maxHeight float64) bool) error {
	for {
		if _, err := g.Step(); err != nil {
			return err
		}
		if stop(g.step, g.maxHeight) {
			return nil
		}
	}
}
