// Package provider defines the narrow input-provider capability the
// simulation core depends on (spec.md §6, §9) and two concrete
// implementations: a Perlin-noise generator and a color-keyed image
// decoder. The core only ever depends on the Provider interface.
package provider
