// Package glass holds the dispersion model registry and the Sellmeier
// refractive index evaluator.
//
// The registry is a fixed read-only table built at init; it is never
// mutated afterwards, so concurrent lookups need no locking. Name
// matching is case-insensitive and tolerant of hyphen/underscore/space
// separators and the "N-" catalog prefix ("BK7", "N-BK7", "nbk7" all
// resolve to the same model), but never fuzzy: an unknown name yields
// no model rather than a default coefficient set.
package glass
