package glass

import "math"

// Coefficients holds the three Sellmeier (B, C) pairs of a glass:
//
//	n²(λ) = 1 + Σ Bᵢλ²/(λ² − Cᵢ),  λ in µm, Cᵢ in µm².
type Coefficients struct {
	B [3]float64
	C [3]float64
}

// Index evaluates the refractive index at the given wavelength in
// nanometers. Coefficients are tabulated in micrometers, so the
// wavelength is converted before evaluation. If the three-term sum
// drives n² below 1 (extrapolation outside the fitted band), the value
// is clamped to 1 so the result is never below 1 or imaginary.
func (c Coefficients) Index(lambdaNm float64) float64 {
	um := lambdaNm / 1000.0
	l2 := um * um

	n2 := 1.0
	for i := 0; i < 3; i++ {
		n2 += c.B[i] * l2 / (l2 - c.C[i])
	}
	if n2 < 1 {
		n2 = 1
	}
	return math.Sqrt(n2)
}

// poleTolUm2 bounds, in µm², how close λ² may come to a resonance
// term before evaluation is considered degenerate.
const poleTolUm2 = 1e-9

// NearPole reports whether the wavelength sits on (or numerically at)
// one of the model's resonances, where the Sellmeier sum diverges.
// Index does not detect this itself; callers that want rejection
// rather than raw arithmetic check here first.
func (c Coefficients) NearPole(lambdaNm float64) bool {
	um := lambdaNm / 1000.0
	l2 := um * um
	for i := 0; i < 3; i++ {
		if math.Abs(l2-c.C[i]) < poleTolUm2 {
			return true
		}
	}
	return false
}
