// Package geology holds the physical constants governing uplift and
// erosion (spec.md §6). Settings is a plain, externally-constructible
// aggregate — the simulation core never reaches for package-level
// defaults implicitly, it is always handed a Settings value.
package geology
