// Package erosion implements spec.md §4.8: drainage-area accumulation
// over the stream-tree forest, the implicit stream-power height update,
// and thermal-shock slope clamping, applied once per simulation step.
package erosion
