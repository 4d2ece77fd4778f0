package dispersion

import (
	"math"

	"github.com/rvasa/dispersim/internal/optics"
)

// Unit conversion factors. This file is the only place unit
// normalization happens; the formulas are dimensionally unforgiving
// and an off-by-one exponent produces plausible-looking nonsense.
const (
	nmToM      = 1e-9  // wavelength nm -> m
	mmToM      = 1e-3  // path length mm -> m
	perNm2ToM2 = 1e18  // d²n/dλ² 1/nm² -> 1/m²
	perNm3ToM3 = 1e27  // d³n/dλ³ 1/nm³ -> 1/m³
	s2ToFs2    = 1e30  // s² -> fs²
	s3ToFs3    = 1e45  // s³ -> fs³
)

// GDD returns the group delay dispersion in fs² for a single pass
// through thicknessMM of material, given d²n/dλ² in 1/nm²:
//
//	GDD = L·λ³·n″ / (2π²c²)
//
// evaluated on a consistent SI basis and rescaled to fs² at the end.
func GDD(lambdaNm, d2PerNm2, thicknessMM float64) float64 {
	lam := lambdaNm * nmToM
	length := thicknessMM * mmToM
	d2 := d2PerNm2 * perNm2ToM2

	c := optics.SpeedOfLight
	gddS2 := length * lam * lam * lam * d2 / (2 * math.Pi * math.Pi * c * c)
	return gddS2 * s2ToFs2
}

// TOD returns the third order dispersion in fs³ for a single pass
// through thicknessMM of material:
//
//	TOD = L·λ⁴·(λ·n‴ − 2·n″) / (4π³c³)
//
// with the same SI unit basis discipline as GDD.
func TOD(lambdaNm, d2PerNm2, d3PerNm3, thicknessMM float64) float64 {
	lam := lambdaNm * nmToM
	length := thicknessMM * mmToM
	d2 := d2PerNm2 * perNm2ToM2
	d3 := d3PerNm3 * perNm3ToM3

	c := optics.SpeedOfLight
	pi3 := math.Pi * math.Pi * math.Pi
	todS3 := length * lam * lam * lam * lam * (lam*d3 - 2*d2) / (4 * pi3 * c * c * c)
	return todS3 * s3ToFs3
}
