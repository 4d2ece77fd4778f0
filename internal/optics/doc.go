// Package optics defines the shared domain model for the dispersion
// engine: optical elements, stacks, evaluation results, and the
// physical constants the rest of the codebase agrees on.
//
// Everything here is a plain value type. A [Stack] is mutable and
// small, so results are recomputed per query rather than cached.
package optics
