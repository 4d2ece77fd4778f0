package dispersion

import "math"

var fourLn2 = 4 * math.Ln2

// Broaden predicts the exit duration of a transform-limited Gaussian
// pulse after accumulating the given GDD and TOD:
//
//	τ_out² ≈ τ_in² + (4ln2)²·GDD²/τ_in² + (4ln2)³·TOD²/τ_in⁴
//
// tauInFs must be positive: a zero duration divides by zero and the
// result is not finite. Aggregate rejects such pulses before calling
// here. The floor at zero absorbs rounding in the sum.
// Broaden(τ, 0, 0) returns τ exactly.
func Broaden(tauInFs, gddFs2, todFs3 float64) float64 {
	t2 := tauInFs * tauInFs
	out2 := t2 +
		fourLn2*fourLn2*gddFs2*gddFs2/t2 +
		fourLn2*fourLn2*fourLn2*todFs3*todFs3/(t2*t2)
	return math.Sqrt(math.Max(out2, 0))
}
