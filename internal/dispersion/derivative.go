package dispersion

import "github.com/rvasa/dispersim/internal/glass"

// StepNm is the finite-difference step in nanometers. It balances
// truncation error against floating-point cancellation for the visible
// to NIR band; do not change it casually, downstream regression
// baselines are locked against it.
const StepNm = 0.5

// D2Index estimates d²n/dλ² at lambdaNm in 1/nm² using the symmetric
// three-point stencil on the Sellmeier index.
func D2Index(c glass.Coefficients, lambdaNm float64) float64 {
	h := StepNm
	return (c.Index(lambdaNm+h) - 2*c.Index(lambdaNm) + c.Index(lambdaNm-h)) / (h * h)
}

// D3Index estimates d³n/dλ³ at lambdaNm in 1/nm³ as the symmetric
// two-point difference of D2Index at λ±step. The layered composition
// (a derivative of the second-derivative estimate, not a five-point
// stencil on n) is deliberate: it keeps numerical agreement with the
// locked baselines.
func D3Index(c glass.Coefficients, lambdaNm float64) float64 {
	h := StepNm
	return (D2Index(c, lambdaNm+h) - D2Index(c, lambdaNm-h)) / (2 * h)
}
