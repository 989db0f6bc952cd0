// Package sample produces the jittered-grid point set spec.md §4.1 feeds
// into triangulation: a near-regular grid whose cells are each jittered
// by an independent Poisson draw, using the provider's seeded RNG.
package sample
