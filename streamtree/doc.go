// Package streamtree builds the per-step steepest-descent forest of
// spec.md §4.4: a clone of every rpGraph node, each linked to at most
// one downhill neighbor. Roots are sea nodes and terrestrial local
// minima.
package streamtree
