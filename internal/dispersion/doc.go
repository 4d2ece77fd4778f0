// Package dispersion derives group delay dispersion (GDD, fs²), third
// order dispersion (TOD, fs³), and predicted Gaussian pulse broadening
// for stacks of optical elements.
//
// The pipeline per element is:
//
//	glass.Lookup -> Index -> D2Index/D3Index -> GDD/TOD -> running totals
//
// and [Aggregate] drives it across a whole stack, handing the totals to
// [Broaden] for the exit pulse prediction. Derivatives use central
// finite differences with a fixed 0.5 nm step; the third order term is
// a layered derivative-of-a-derivative rather than a single five-point
// stencil. A closed-form symbolic derivative of the Sellmeier sum
// would be more accurate, but it changes output values slightly, so
// the numerical form is kept and the baselines are locked against it.
//
// Every function here is pure: no state, no I/O, safe for concurrent
// use across independent stacks and wavelengths.
package dispersion
